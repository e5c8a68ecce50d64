package request

import (
	"perfume-order-api/internal/domain/order"
	"perfume-order-api/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type CheckoutRequest struct {
	AddressID uuid.UUID `json:"address_id" binding:"required"`
}

func (r *CheckoutRequest) ToCommand() commands.CheckoutRequest {
	return commands.CheckoutRequest{AddressID: r.AddressID}
}

type GuestAddressRequest struct {
	Province     string `json:"province" binding:"required"`
	Canton       string `json:"canton" binding:"required"`
	District     string `json:"district" binding:"required"`
	Neighborhood string `json:"neighborhood"`
	Details      string `json:"details"`
	Reference    string `json:"reference"`
}

type GuestItemRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,min=1,max=10000"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string" example:"89.90"`
}

type GuestCheckoutRequest struct {
	Email   string               `json:"email" binding:"required,email"`
	Name    string               `json:"name" binding:"required"`
	Address *GuestAddressRequest `json:"address" binding:"required"`
	Items   []GuestItemRequest   `json:"items" binding:"required,min=1,dive"`
}

func (r *GuestCheckoutRequest) ToCommand() commands.GuestCheckoutRequest {
	var addr *order.GuestAddress
	if r.Address != nil {
		addr = &order.GuestAddress{
			Province:     r.Address.Province,
			Canton:       r.Address.Canton,
			District:     r.Address.District,
			Neighborhood: r.Address.Neighborhood,
			Details:      r.Address.Details,
			Reference:    r.Address.Reference,
		}
	}
	return commands.GuestCheckoutRequest{
		Guest: order.GuestInfo{Email: r.Email, Name: r.Name, Address: addr},
		Items: lo.Map(r.Items, func(it GuestItemRequest, _ int) order.Item {
			return order.Item{ProductID: it.ProductID, Quantity: it.Quantity, UnitPrice: it.UnitPrice}
		}),
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required" example:"Shipped"`
}
