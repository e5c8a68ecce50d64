package repository

import (
	"context"

	"perfume-order-api/internal/domain/order"
	"perfume-order-api/internal/infra"
	sqlc "perfume-order-api/internal/infra/sqlc/generated"
	"perfume-order-api/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/repository/order.go -package=repositorymock

type OrderWriteQueries interface {
	CreateOrder(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOrderParams) error
	InsertOrderItem(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOrderItemParams) error
	UpdateOrderStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateOrderStatusParams) (int64, error)
}

type OrderRepository struct {
	queries OrderWriteQueries
}

func NewOrderRepository(queries OrderWriteQueries) *OrderRepository {
	return &OrderRepository{queries: queries}
}

func (r *OrderRepository) Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error {
	if err := r.queries.CreateOrder(ctx, tx, orderToCreateParams(o)); err != nil {
		return infra.WrapRepoErr("failed to create order", err)
	}
	for i, it := range o.Items() {
		qty, ok := pgconv.Int32FromInt(it.Quantity)
		if !ok {
			return infra.WrapRepoErr("order item quantity out of range", nil, infra.KindOutOfRange)
		}
		lineNo, ok := pgconv.Int32FromInt(i + 1)
		if !ok {
			return infra.WrapRepoErr("too many order items", nil, infra.KindOutOfRange)
		}
		params := sqlc.InsertOrderItemParams{
			OrderID:   o.ID(),
			LineNo:    lineNo,
			ProductID: it.ProductID,
			Quantity:  qty,
			UnitPrice: pgconv.DecimalToNumeric(it.UnitPrice),
		}
		if err := r.queries.InsertOrderItem(ctx, tx, params); err != nil {
			return infra.WrapRepoErr("failed to insert order item", err)
		}
	}
	return nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID, status order.Status) error {
	affected, err := r.queries.UpdateOrderStatus(ctx, tx, sqlc.UpdateOrderStatusParams{
		ID:     orderID,
		Status: status.String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update order status", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return nil
}

func orderToCreateParams(o *order.Order) sqlc.CreateOrderParams {
	params := sqlc.CreateOrderParams{
		ID:         o.ID(),
		CustomerID: pgconv.UUIDPtrToPgtype(o.CustomerID()),
		AddressID:  pgconv.UUIDPtrToPgtype(o.AddressID()),
		IsGuest:    o.IsGuest(),
		Status:     o.Status().String(),
		Total:      pgconv.DecimalToNumeric(o.Total()),
		CreatedAt:  pgconv.TimeToPgtype(o.CreatedAt()),
	}
	if g := o.Guest(); g != nil {
		params.GuestEmail = pgconv.StringToPgtype(g.Email)
		params.GuestName = pgconv.StringToPgtype(g.Name)
		params.GuestAddress = pgconv.StringToPgtype(g.Address)
	}
	return params
}
