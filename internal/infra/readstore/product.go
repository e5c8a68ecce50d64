package readstore

import (
	"context"

	"perfume-order-api/internal/infra"
	sqlc "perfume-order-api/internal/infra/sqlc/generated"
	"perfume-order-api/internal/pkg/pgconv"
	"perfume-order-api/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=product.go -destination=../../../tests/mock/readstore/product.go -package=readstoremock

type ProductReadQueries interface {
	GetProductByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetProductByIDRow, error)
}

type ProductReadStore struct {
	queries ProductReadQueries
	db      sqlc.DBTX
}

func NewProductReadStore(queries ProductReadQueries, db sqlc.DBTX) *ProductReadStore {
	return &ProductReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	row, err := r.queries.GetProductByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get product by id", err)
	}
	return &queries.ProductView{
		ID:    row.ID,
		Name:  row.Name,
		Price: pgconv.DecimalFromNumeric(row.Price),
		Stock: int(row.Stock),
	}, nil
}
