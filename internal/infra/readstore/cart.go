package readstore

import (
	"context"

	"perfume-order-api/internal/infra"
	sqlc "perfume-order-api/internal/infra/sqlc/generated"
	"perfume-order-api/internal/pkg/pgconv"
	"perfume-order-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

//go:generate mockgen -source=cart.go -destination=../../../tests/mock/readstore/cart.go -package=readstoremock

type CartReadQueries interface {
	ListCartLines(ctx context.Context, db sqlc.DBTX, customerID uuid.UUID) ([]sqlc.ListCartLinesRow, error)
}

type CartReadStore struct {
	queries CartReadQueries
	db      sqlc.DBTX
}

func NewCartReadStore(queries CartReadQueries, db sqlc.DBTX) *CartReadStore {
	return &CartReadStore{
		queries: queries,
		db:      db,
	}
}

// ListLines returns the stored lines in cart order; no rows is an empty slice.
func (r *CartReadStore) ListLines(ctx context.Context, customerID uuid.UUID) ([]queries.CartLineView, error) {
	rows, err := r.queries.ListCartLines(ctx, r.db, customerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart lines", err)
	}
	return lo.Map(rows, func(row sqlc.ListCartLinesRow, _ int) queries.CartLineView {
		return queries.CartLineView{
			ProductID: row.ProductID,
			Name:      row.Name,
			Quantity:  int(row.Quantity),
			UnitPrice: pgconv.DecimalFromNumeric(row.UnitPrice),
		}
	}), nil
}
