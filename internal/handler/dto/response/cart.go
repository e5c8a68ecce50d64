package response

import (
	"perfume-order-api/internal/domain/cart"
	"perfume-order-api/internal/usecase/queries"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

type CartLineResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price" swaggertype:"string"`
	Subtotal  decimal.Decimal `json:"subtotal" swaggertype:"string"`
}

type CartResponse struct {
	Items     []CartLineResponse `json:"items"`
	Total     decimal.Decimal    `json:"total" swaggertype:"string"`
	ItemCount int                `json:"item_count"`
}

// FromCartLines renders the line list returned by a cart mutation.
func FromCartLines(lines []cart.Line) *CartResponse {
	return &CartResponse{
		Items: lo.Map(lines, func(l cart.Line, _ int) CartLineResponse {
			return CartLineResponse{
				ProductID: l.ProductID.String(),
				Name:      l.Name,
				Quantity:  l.Quantity,
				UnitPrice: l.UnitPrice,
				Subtotal:  l.Subtotal(),
			}
		}),
		Total:     cart.Total(lines),
		ItemCount: len(lines),
	}
}

func FromCartView(v *queries.CartView) *CartResponse {
	return &CartResponse{
		Items: lo.Map(v.Items, func(l queries.CartLineView, _ int) CartLineResponse {
			return CartLineResponse{
				ProductID: l.ProductID.String(),
				Name:      l.Name,
				Quantity:  l.Quantity,
				UnitPrice: l.UnitPrice,
				Subtotal:  l.Subtotal(),
			}
		}),
		Total:     v.Total,
		ItemCount: v.ItemCount,
	}
}
