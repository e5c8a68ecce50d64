package order

import (
	"strings"
	"time"

	"perfume-order-api/internal/domain/cart"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Item is an order line. The unit price is copied when the order is placed.
type Item struct {
	ProductID uuid.UUID
	Quantity  int
	UnitPrice decimal.Decimal
}

func (i Item) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func (i Item) validate() error {
	if i.ProductID == uuid.Nil || i.Quantity <= 0 || i.Quantity > cart.MaxQuantity || i.UnitPrice.IsNegative() {
		return ErrInvalidItem
	}
	return nil
}

type Order struct {
	id         uuid.UUID
	customerID *uuid.UUID
	addressID  *uuid.UUID
	guest      *GuestContact
	status     Status
	items      []Item
	total      decimal.Decimal
	createdAt  time.Time
}

// NewCustomerOrder builds a pending order from a cart's lines and one of the customer's addresses.
func NewCustomerOrder(customerID, addressID uuid.UUID, lines []cart.Line, now time.Time) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	items := lo.Map(lines, func(l cart.Line, _ int) Item {
		return Item{ProductID: l.ProductID, Quantity: l.Quantity, UnitPrice: l.UnitPrice}
	})
	return &Order{
		id:         uuid.New(),
		customerID: &customerID,
		addressID:  &addressID,
		status:     StatusPending,
		items:      items,
		total:      cart.Total(lines),
		createdAt:  now,
	}, nil
}

// NewGuestOrder builds a pending order for an anonymous buyer. Unit prices are taken as supplied.
func NewGuestOrder(info GuestInfo, items []Item, now time.Time) (*Order, error) {
	if err := info.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, it := range items {
		if err := it.validate(); err != nil {
			return nil, err
		}
	}
	return &Order{
		id: uuid.New(),
		guest: &GuestContact{
			Email:   strings.TrimSpace(info.Email),
			Name:    strings.TrimSpace(info.Name),
			Address: info.Address.Format(),
		},
		status:    StatusPending,
		items:     append([]Item(nil), items...),
		total:     TotalOf(items),
		createdAt: now,
	}, nil
}

func TotalOf(items []Item) decimal.Decimal {
	return lo.Reduce(items, func(acc decimal.Decimal, it Item, _ int) decimal.Decimal {
		return acc.Add(it.Subtotal())
	}, decimal.Zero)
}

func (o *Order) ID() uuid.UUID          { return o.id }
func (o *Order) CustomerID() *uuid.UUID { return o.customerID }
func (o *Order) AddressID() *uuid.UUID  { return o.addressID }
func (o *Order) Guest() *GuestContact   { return o.guest }
func (o *Order) Status() Status         { return o.status }
func (o *Order) Total() decimal.Decimal { return o.total }
func (o *Order) CreatedAt() time.Time   { return o.createdAt }
func (o *Order) IsGuest() bool          { return o.guest != nil }
func (o *Order) Items() []Item          { return append([]Item(nil), o.items...) }
