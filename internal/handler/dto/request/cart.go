package request

import (
	"perfume-order-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type AddCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1,max=10000"`
}

func (r *AddCartItemRequest) ToCommand() commands.AddItemRequest {
	return commands.AddItemRequest{ProductID: r.ProductID, Quantity: r.Quantity}
}

// UpdateCartItemRequest sets the absolute quantity of a line already in the cart.
type UpdateCartItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1,max=10000"`
}

func (r *UpdateCartItemRequest) ToCommand() commands.UpdateItemRequest {
	return commands.UpdateItemRequest{ProductID: r.ProductID, Quantity: r.Quantity}
}
