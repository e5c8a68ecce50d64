package readstore

import (
	"context"

	"perfume-order-api/internal/infra"
	sqlc "perfume-order-api/internal/infra/sqlc/generated"
	"perfume-order-api/internal/pkg/pgconv"
	"perfume-order-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/samber/lo"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/readstore/order.go -package=readstoremock

type OrderReadQueries interface {
	GetOrderByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetOrderByIDRow, error)
	ListOrdersByCustomer(ctx context.Context, db sqlc.DBTX, customerID pgtype.UUID) ([]sqlc.ListOrdersByCustomerRow, error)
	ListAllOrders(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListAllOrdersRow, error)
	ListOrderItems(ctx context.Context, db sqlc.DBTX, orderIds []uuid.UUID) ([]sqlc.ListOrderItemsRow, error)
}

type OrderReadStore struct {
	queries OrderReadQueries
	db      sqlc.DBTX
}

func NewOrderReadStore(queries OrderReadQueries, db sqlc.DBTX) *OrderReadStore {
	return &OrderReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row, err := r.queries.GetOrderByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order by id", err)
	}
	views := []*queries.OrderView{orderRowToView(row)}
	if err := r.attachItems(ctx, views); err != nil {
		return nil, err
	}
	return views[0], nil
}

// ListByCustomer returns the customer's orders, most recent first.
func (r *OrderReadStore) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*queries.OrderView, error) {
	rows, err := r.queries.ListOrdersByCustomer(ctx, r.db, pgconv.UUIDToPgtype(customerID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders by customer", err)
	}
	views := lo.Map(rows, func(row sqlc.ListOrdersByCustomerRow, _ int) *queries.OrderView {
		return orderRowToView(sqlc.GetOrderByIDRow(row))
	})
	if err := r.attachItems(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

// ListAll returns every order, most recent first.
func (r *OrderReadStore) ListAll(ctx context.Context) ([]*queries.OrderView, error) {
	rows, err := r.queries.ListAllOrders(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	views := lo.Map(rows, func(row sqlc.ListAllOrdersRow, _ int) *queries.OrderView {
		return orderRowToView(sqlc.GetOrderByIDRow(row))
	})
	if err := r.attachItems(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (r *OrderReadStore) attachItems(ctx context.Context, views []*queries.OrderView) error {
	if len(views) == 0 {
		return nil
	}
	ids := lo.Map(views, func(v *queries.OrderView, _ int) uuid.UUID { return v.ID })
	rows, err := r.queries.ListOrderItems(ctx, r.db, ids)
	if err != nil {
		return infra.WrapRepoErr("failed to list order items", err)
	}
	byOrder := lo.GroupBy(rows, func(row sqlc.ListOrderItemsRow) uuid.UUID { return row.OrderID })
	for _, v := range views {
		v.Items = lo.Map(byOrder[v.ID], func(row sqlc.ListOrderItemsRow, _ int) queries.OrderItemView {
			return queries.OrderItemView{
				ProductID:   row.ProductID,
				ProductName: row.ProductName,
				Quantity:    int(row.Quantity),
				UnitPrice:   pgconv.DecimalFromNumeric(row.UnitPrice),
			}
		})
	}
	return nil
}

func orderRowToView(row sqlc.GetOrderByIDRow) *queries.OrderView {
	v := &queries.OrderView{
		ID:         row.ID,
		CustomerID: pgconv.UUIDPtrFromPgtype(row.CustomerID),
		IsGuest:    row.IsGuest,
		Status:     row.Status,
		Total:      pgconv.DecimalFromNumeric(row.Total),
		Items:      []queries.OrderItemView{},
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	}
	if row.IsGuest {
		v.Guest = &queries.GuestContactView{
			Email:   pgconv.StringFromPgtype(row.GuestEmail),
			Name:    pgconv.StringFromPgtype(row.GuestName),
			Address: pgconv.StringFromPgtype(row.GuestAddress),
		}
		return v
	}
	if row.CustomerEmail.Valid {
		v.Customer = &queries.CustomerContactView{
			FirstName:  pgconv.StringFromPgtype(row.CustomerFirstName),
			LastName:   pgconv.StringFromPgtype(row.CustomerLastName),
			Email:      row.CustomerEmail.String,
			Phone:      pgconv.StringFromPgtype(row.CustomerPhone),
			NationalID: pgconv.StringFromPgtype(row.CustomerNationalID),
		}
	}
	if addrID := pgconv.UUIDPtrFromPgtype(row.AddressID); addrID != nil && row.AddressProvince.Valid {
		v.Address = &queries.AddressView{
			ID:           *addrID,
			Province:     row.AddressProvince.String,
			Canton:       pgconv.StringFromPgtype(row.AddressCanton),
			District:     pgconv.StringFromPgtype(row.AddressDistrict),
			Neighborhood: pgconv.StringFromPgtype(row.AddressNeighborhood),
			Details:      pgconv.StringFromPgtype(row.AddressDetails),
			Reference:    pgconv.StringFromPgtype(row.AddressReference),
		}
		if v.CustomerID != nil {
			v.Address.CustomerID = *v.CustomerID
		}
	}
	return v
}
