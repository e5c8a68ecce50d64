package repository

import (
	"context"

	"perfume-order-api/internal/domain/cart"
	"perfume-order-api/internal/infra"
	sqlc "perfume-order-api/internal/infra/sqlc/generated"
	"perfume-order-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=cart_line.go -destination=../../../tests/mock/repository/cart_line.go -package=repositorymock

type CartLineWriteQueries interface {
	DeleteCartLines(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) error
	InsertCartLine(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertCartLineParams) error
}

type CartLineRepository struct {
	queries CartLineWriteQueries
}

func NewCartLineRepository(queries CartLineWriteQueries) *CartLineRepository {
	return &CartLineRepository{queries: queries}
}

// ReplaceLines deletes every stored line of the customer and inserts lines in order.
// Must run inside a transaction so readers never observe the empty intermediate state.
func (r *CartLineRepository) ReplaceLines(ctx context.Context, tx sqlc.DBTX, customerID uuid.UUID, lines []cart.Line) error {
	if err := r.queries.DeleteCartLines(ctx, tx, customerID); err != nil {
		return infra.WrapRepoErr("failed to clear cart lines", err)
	}
	for i, l := range lines {
		qty, ok := pgconv.Int32FromInt(l.Quantity)
		if !ok {
			return infra.WrapRepoErr("cart line quantity out of range", nil, infra.KindOutOfRange)
		}
		pos, ok := pgconv.Int32FromInt(i)
		if !ok {
			return infra.WrapRepoErr("too many cart lines", nil, infra.KindOutOfRange)
		}
		params := sqlc.InsertCartLineParams{
			CustomerID: customerID,
			ProductID:  l.ProductID,
			Quantity:   qty,
			UnitPrice:  pgconv.DecimalToNumeric(l.UnitPrice),
			Position:   pos,
		}
		if err := r.queries.InsertCartLine(ctx, tx, params); err != nil {
			return infra.WrapRepoErr("failed to insert cart line", err)
		}
	}
	return nil
}
