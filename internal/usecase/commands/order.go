package commands

import (
	"context"

	"perfume-order-api/internal/domain/order"
	"perfume-order-api/internal/pkg/clock"
	"perfume-order-api/internal/pkg/errs"
	"perfume-order-api/internal/usecase/queries"
	"perfume-order-api/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=order.go -destination=../../../tests/mock/commands/order.go -package=commandsmock

type CheckoutRequest struct {
	AddressID uuid.UUID
}

type GuestCheckoutRequest struct {
	Guest order.GuestInfo
	Items []order.Item
}

type OrderCommands interface {
	// Checkout turns the customer's cart into a pending order. The cart is left as is.
	Checkout(ctx context.Context, customerID uuid.UUID, req CheckoutRequest) (*queries.OrderView, error)
	GuestCheckout(ctx context.Context, req GuestCheckoutRequest) (*queries.OrderView, error)
	UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) (*queries.OrderView, error)
}

type orderUseCaseImpl struct {
	uow    shared.UnitOfWork
	carts  *CartStore
	stock  StockChecker
	orders queries.OrderReadStore
	clock  clock.Clock
}

func NewOrderCommands(uow shared.UnitOfWork, carts *CartStore, stock StockChecker, orders queries.OrderReadStore, clk clock.Clock) OrderCommands {
	return &orderUseCaseImpl{
		uow:    uow,
		carts:  carts,
		stock:  stock,
		orders: orders,
		clock:  clk,
	}
}

func (uc *orderUseCaseImpl) Checkout(ctx context.Context, customerID uuid.UUID, req CheckoutRequest) (*queries.OrderView, error) {
	var orderID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		c, err := uc.carts.Load(ctx, tx, customerID)
		if err != nil {
			return err
		}
		if c.IsEmpty() {
			return order.ErrEmptyCart
		}

		if _, err := tx.Reads().AddressOfCustomer(ctx, req.AddressID, customerID); err != nil {
			if errs.Is(err, errs.ErrNotFound) {
				return ErrInvalidAddress
			}
			return err
		}

		lines := c.Lines()
		for _, l := range lines {
			if _, err := uc.stock.Check(ctx, tx.Reads(), l.ProductID, l.Quantity); err != nil {
				return err
			}
		}

		o, err := order.NewCustomerOrder(customerID, req.AddressID, lines, uc.clock.Now())
		if err != nil {
			return err
		}
		if err := tx.Orders().Create(ctx, tx.DB(), o); err != nil {
			return err
		}
		orderID = o.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return uc.orders.FindByID(ctx, orderID)
}

func (uc *orderUseCaseImpl) GuestCheckout(ctx context.Context, req GuestCheckoutRequest) (*queries.OrderView, error) {
	o, err := order.NewGuestOrder(req.Guest, req.Items, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, it := range o.Items() {
			if _, err := uc.stock.Check(ctx, tx.Reads(), it.ProductID, it.Quantity); err != nil {
				return err
			}
		}
		return tx.Orders().Create(ctx, tx.DB(), o)
	})
	if err != nil {
		return nil, err
	}
	return uc.orders.FindByID(ctx, o.ID())
}

// UpdateStatus accepts any listed status regardless of the current one.
func (uc *orderUseCaseImpl) UpdateStatus(ctx context.Context, orderID uuid.UUID, status string) (*queries.OrderView, error) {
	next, err := order.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Orders().UpdateStatus(ctx, tx.DB(), orderID, next)
	})
	if err != nil {
		return nil, err
	}
	return uc.orders.FindByID(ctx, orderID)
}
