package commands

import (
	"context"

	"perfume-order-api/internal/domain/cart"
	"perfume-order-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// CartStore reconciles the in-memory cart with the per-line cart storage.
type CartStore struct{}

func NewCartStore() *CartStore {
	return &CartStore{}
}

// Load returns the stored lines joined with live product names. No rows is an empty cart.
func (s *CartStore) Load(ctx context.Context, tx shared.Tx, customerID uuid.UUID) (*cart.Cart, error) {
	lines, err := tx.Reads().CartLines(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return cart.Reconstruct(customerID, lines)
}

// Save replaces every stored line with the cart's current lines.
func (s *CartStore) Save(ctx context.Context, tx shared.Tx, c *cart.Cart) error {
	return tx.CartLines().ReplaceLines(ctx, tx.DB(), c.CustomerID(), c.Lines())
}
