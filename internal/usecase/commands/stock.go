package commands

import (
	"context"

	"perfume-order-api/internal/pkg/errs"
	"perfume-order-api/internal/usecase/shared"

	"github.com/google/uuid"
)

// StockChecker validates requested quantities against live stock. It never reserves
// or decrements anything.
type StockChecker interface {
	Check(ctx context.Context, reads shared.CommandReads, productID uuid.UUID, quantity int) (*shared.ProductSnapshot, error)
}

type productStockChecker struct{}

func NewStockChecker() StockChecker {
	return productStockChecker{}
}

func (productStockChecker) Check(ctx context.Context, reads shared.CommandReads, productID uuid.UUID, quantity int) (*shared.ProductSnapshot, error) {
	product, err := reads.ProductByID(ctx, productID)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.Wrapf(ErrProductNotFound, "product %s", productID)
		}
		return nil, err
	}
	if quantity > product.Stock {
		return nil, &InsufficientStockError{
			ProductID:   product.ID,
			ProductName: product.Name,
			Requested:   quantity,
			Available:   product.Stock,
		}
	}
	return product, nil
}
