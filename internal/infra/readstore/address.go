package readstore

import (
	"context"

	"perfume-order-api/internal/infra"
	sqlc "perfume-order-api/internal/infra/sqlc/generated"
	"perfume-order-api/internal/pkg/pgconv"
	"perfume-order-api/internal/usecase/queries"

	"github.com/google/uuid"
)

//go:generate mockgen -source=address.go -destination=../../../tests/mock/readstore/address.go -package=readstoremock

type AddressReadQueries interface {
	GetCustomerAddress(ctx context.Context, db sqlc.DBTX, arg sqlc.GetCustomerAddressParams) (sqlc.GetCustomerAddressRow, error)
}

type AddressReadStore struct {
	queries AddressReadQueries
	db      sqlc.DBTX
}

func NewAddressReadStore(queries AddressReadQueries, db sqlc.DBTX) *AddressReadStore {
	return &AddressReadStore{
		queries: queries,
		db:      db,
	}
}

// FindCustomerAddress only matches addresses owned by customerID.
func (r *AddressReadStore) FindCustomerAddress(ctx context.Context, id, customerID uuid.UUID) (*queries.AddressView, error) {
	row, err := r.queries.GetCustomerAddress(ctx, r.db, sqlc.GetCustomerAddressParams{
		ID:         id,
		CustomerID: customerID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("address not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get customer address", err)
	}
	return &queries.AddressView{
		ID:           row.ID,
		CustomerID:   row.CustomerID,
		Province:     row.Province,
		Canton:       row.Canton,
		District:     row.District,
		Neighborhood: pgconv.StringFromPgtype(row.Neighborhood),
		Details:      pgconv.StringFromPgtype(row.Details),
		Reference:    pgconv.StringFromPgtype(row.Reference),
	}, nil
}
