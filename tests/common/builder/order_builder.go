//go:build unit || e2e

package builder

import (
	"time"

	"perfume-order-api/internal/domain/order"
	reqdto "perfume-order-api/internal/handler/dto/request"
	"perfume-order-api/internal/usecase/queries"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type OrderBuilder struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	Guest      bool
	Status     order.Status
	Items      []queries.OrderItemView
	CreatedAt  time.Time
}

func NewOrderBuilder() *OrderBuilder {
	items := make([]queries.OrderItemView, gofakeit.Number(1, 3))
	for i := range items {
		items[i] = queries.OrderItemView{
			ProductID:   uuid.New(),
			ProductName: gofakeit.ProductName(),
			Quantity:    gofakeit.Number(1, 4),
			UnitPrice:   FakePrice(),
		}
	}
	return &OrderBuilder{
		ID:         uuid.New(),
		CustomerID: uuid.New(),
		Status:     order.StatusPending,
		Items:      items,
		CreatedAt:  time.Now().Truncate(time.Second),
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	total := lo.Reduce(b.Items, func(acc decimal.Decimal, it queries.OrderItemView, _ int) decimal.Decimal {
		return acc.Add(it.Subtotal())
	}, decimal.Zero)

	v := &queries.OrderView{
		ID:        b.ID,
		IsGuest:   b.Guest,
		Status:    b.Status.String(),
		Total:     total,
		Items:     b.Items,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.CreatedAt,
	}
	if b.Guest {
		v.Guest = &queries.GuestContactView{
			Email:   gofakeit.Email(),
			Name:    gofakeit.Name(),
			Address: "San José, Escazú, San Rafael",
		}
		return v
	}

	customerID := b.CustomerID
	v.CustomerID = &customerID
	v.Customer = &queries.CustomerContactView{
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Email:     gofakeit.Email(),
		Phone:     gofakeit.Phone(),
	}
	v.Address = &queries.AddressView{
		ID:         uuid.New(),
		CustomerID: customerID,
		Province:   "San José",
		Canton:     "Escazú",
		District:   "San Rafael",
	}
	return v
}

type GuestCheckoutBuilder struct {
	Email   string
	Name    string
	Address reqdto.GuestAddressRequest
	Items   []reqdto.GuestItemRequest
}

func NewGuestCheckoutBuilder() *GuestCheckoutBuilder {
	return &GuestCheckoutBuilder{
		Email: gofakeit.Email(),
		Name:  gofakeit.Name(),
		Address: reqdto.GuestAddressRequest{
			Province:  "Heredia",
			Canton:    "Belén",
			District:  "La Ribera",
			Details:   gofakeit.Street(),
			Reference: "Casa esquinera",
		},
		Items: []reqdto.GuestItemRequest{
			{ProductID: uuid.New(), Quantity: gofakeit.Number(1, 3), UnitPrice: FakePrice()},
		},
	}
}

func (b *GuestCheckoutBuilder) With(mutate func(*GuestCheckoutBuilder)) *GuestCheckoutBuilder {
	mutate(b)
	return b
}

func (b *GuestCheckoutBuilder) BuildRequestDTO() reqdto.GuestCheckoutRequest {
	addr := b.Address
	return reqdto.GuestCheckoutRequest{
		Email:   b.Email,
		Name:    b.Name,
		Address: &addr,
		Items:   append([]reqdto.GuestItemRequest(nil), b.Items...),
	}
}
