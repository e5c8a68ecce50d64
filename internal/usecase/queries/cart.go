package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=cart.go -destination=../../../tests/mock/queries/cart.go -package=queriesmock

type CartReadStore interface {
	ListLines(ctx context.Context, customerID uuid.UUID) ([]CartLineView, error)
}

type CartQueries interface {
	View(ctx context.Context, customerID uuid.UUID) (*CartView, error)
}

type cartQueriesImpl struct {
	store CartReadStore
}

func NewCartQueries(store CartReadStore) CartQueries {
	return &cartQueriesImpl{store: store}
}

func (q *cartQueriesImpl) View(ctx context.Context, customerID uuid.UUID) (*CartView, error) {
	lines, err := q.store.ListLines(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if lines == nil {
		lines = []CartLineView{}
	}
	total := lo.Reduce(lines, func(acc decimal.Decimal, l CartLineView, _ int) decimal.Decimal {
		return acc.Add(l.Subtotal())
	}, decimal.Zero)
	return &CartView{
		Items:     lines,
		Total:     total,
		ItemCount: len(lines),
	}, nil
}
