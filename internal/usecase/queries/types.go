package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductView is the catalogue data the order flow needs
type ProductView struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Stock int             `json:"stock"`
}

// AddressView represents a customer's saved shipping address
type AddressView struct {
	ID           uuid.UUID `json:"id"`
	CustomerID   uuid.UUID `json:"customer_id"`
	Province     string    `json:"province"`
	Canton       string    `json:"canton"`
	District     string    `json:"district"`
	Neighborhood string    `json:"neighborhood,omitempty"`
	Details      string    `json:"details,omitempty"`
	Reference    string    `json:"reference,omitempty"`
}

// CartLineView represents a stored cart line joined with the live product name
type CartLineView struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

func (v CartLineView) Subtotal() decimal.Decimal {
	return v.UnitPrice.Mul(decimal.NewFromInt(int64(v.Quantity)))
}

// CartView is the customer's cart with its total; ItemCount counts lines
type CartView struct {
	Items     []CartLineView  `json:"items"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
}

type CustomerContactView struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	NationalID string `json:"national_id,omitempty"`
}

type GuestContactView struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type OrderItemView struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

func (v OrderItemView) Subtotal() decimal.Decimal {
	return v.UnitPrice.Mul(decimal.NewFromInt(int64(v.Quantity)))
}

// OrderView is an order with its items; authenticated orders embed customer and address,
// guest orders embed the guest contact instead
type OrderView struct {
	ID         uuid.UUID            `json:"id"`
	CustomerID *uuid.UUID           `json:"customer_id,omitempty"`
	IsGuest    bool                 `json:"is_guest"`
	Customer   *CustomerContactView `json:"customer,omitempty"`
	Address    *AddressView         `json:"address,omitempty"`
	Guest      *GuestContactView    `json:"guest,omitempty"`
	Status     string               `json:"status"`
	Total      decimal.Decimal      `json:"total"`
	Items      []OrderItemView      `json:"items"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

// IsOwnedBy reports whether the order belongs to customerID. Guest orders belong to nobody.
func (v *OrderView) IsOwnedBy(customerID uuid.UUID) bool {
	return v.CustomerID != nil && *v.CustomerID == customerID
}
