//go:build unit || e2e

package builder

import (
	"perfume-order-api/internal/domain/cart"
	reqdto "perfume-order-api/internal/handler/dto/request"
	"perfume-order-api/internal/usecase/queries"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartLineBuilder struct {
	ProductID uuid.UUID
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

func NewCartLineBuilder() *CartLineBuilder {
	return &CartLineBuilder{
		ProductID: uuid.New(),
		Name:      gofakeit.ProductName(),
		Quantity:  gofakeit.Number(1, 5),
		UnitPrice: FakePrice(),
	}
}

func (b *CartLineBuilder) With(mutate func(*CartLineBuilder)) *CartLineBuilder {
	mutate(b)
	return b
}

func (b *CartLineBuilder) BuildDomain() cart.Line {
	return cart.Line{ProductID: b.ProductID, Name: b.Name, Quantity: b.Quantity, UnitPrice: b.UnitPrice}
}

func (b *CartLineBuilder) BuildView() queries.CartLineView {
	return queries.CartLineView{ProductID: b.ProductID, Name: b.Name, Quantity: b.Quantity, UnitPrice: b.UnitPrice}
}

func (b *CartLineBuilder) BuildAddRequestDTO() reqdto.AddCartItemRequest {
	return reqdto.AddCartItemRequest{ProductID: b.ProductID, Quantity: b.Quantity}
}

func (b *CartLineBuilder) BuildUpdateRequestDTO() reqdto.UpdateCartItemRequest {
	return reqdto.UpdateCartItemRequest{ProductID: b.ProductID, Quantity: b.Quantity}
}

// FakePrice returns a shelf price between 20.00 and 300.00.
func FakePrice() decimal.Decimal {
	return decimal.NewFromFloat(gofakeit.Price(20, 300)).Round(2)
}
