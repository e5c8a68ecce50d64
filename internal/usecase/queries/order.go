package queries

import (
	"context"

	"perfume-order-api/internal/domain/customer"
	"perfume-order-api/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/queries/order.go -package=queriesmock

var ErrOrderAccess = errs.Categorize("order belongs to another customer", errs.ErrForbidden)

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*OrderView, error)
	ListAll(ctx context.Context) ([]*OrderView, error)
}

type OrderQueries interface {
	// GetByID lets admins read any order; everyone else only their own.
	GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole customer.Role) (*OrderView, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*OrderView, error)
	ListAll(ctx context.Context) ([]*OrderView, error)
}

type orderQueriesImpl struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueriesImpl{store: store}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole customer.Role) (*OrderView, error) {
	o, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actorRole.IsAdmin() && !o.IsOwnedBy(actorID) {
		return nil, ErrOrderAccess
	}
	return o, nil
}

func (q *orderQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*OrderView, error) {
	orders, err := q.store.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []*OrderView{}
	}
	return orders, nil
}

func (q *orderQueriesImpl) ListAll(ctx context.Context) ([]*OrderView, error) {
	orders, err := q.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []*OrderView{}
	}
	return orders, nil
}
