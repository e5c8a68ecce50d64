package response

import (
	"perfume-order-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type OrderItemResponse struct {
	ProductID   uuid.UUID       `json:"product_id" swaggertype:"string"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price" swaggertype:"string"`
	Subtotal    decimal.Decimal `json:"subtotal" swaggertype:"string"`
}

type CustomerContactResponse struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	NationalID string `json:"national_id,omitempty"`
}

type AddressResponse struct {
	ID           uuid.UUID `json:"id" swaggertype:"string"`
	Province     string    `json:"province"`
	Canton       string    `json:"canton"`
	District     string    `json:"district"`
	Neighborhood string    `json:"neighborhood,omitempty"`
	Details      string    `json:"details,omitempty"`
	Reference    string    `json:"reference,omitempty"`
}

type GuestContactResponse struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type OrderResponse struct {
	ID         string                   `json:"id"`
	CustomerID *string                  `json:"customer_id,omitempty"`
	IsGuest    bool                     `json:"is_guest"`
	Customer   *CustomerContactResponse `json:"customer,omitempty"`
	Address    *AddressResponse         `json:"address,omitempty"`
	Guest      *GuestContactResponse    `json:"guest,omitempty"`
	Status     string                   `json:"status"`
	Total      decimal.Decimal          `json:"total" swaggertype:"string"`
	Items      []OrderItemResponse      `json:"items"`
	CreatedAt  int64                    `json:"created_at"`
	UpdatedAt  int64                    `json:"updated_at"`
}

func FromOrderView(v *queries.OrderView) (*OrderResponse, error) {
	res := &OrderResponse{
		ID:        v.ID.String(),
		IsGuest:   v.IsGuest,
		Status:    v.Status,
		Total:     v.Total,
		Items:     make([]OrderItemResponse, 0, len(v.Items)),
		CreatedAt: v.CreatedAt.Unix(),
		UpdatedAt: v.UpdatedAt.Unix(),
	}
	if v.CustomerID != nil {
		id := v.CustomerID.String()
		res.CustomerID = &id
	}

	if err := copier.Copy(&res.Items, &v.Items); err != nil {
		return nil, err
	}
	if res.Items == nil {
		res.Items = []OrderItemResponse{}
	}
	for i := range res.Items {
		res.Items[i].Subtotal = v.Items[i].Subtotal()
	}

	if v.Customer != nil {
		res.Customer = &CustomerContactResponse{}
		if err := copier.Copy(res.Customer, v.Customer); err != nil {
			return nil, err
		}
	}
	if v.Address != nil {
		res.Address = &AddressResponse{}
		if err := copier.Copy(res.Address, v.Address); err != nil {
			return nil, err
		}
	}
	if v.Guest != nil {
		res.Guest = &GuestContactResponse{}
		if err := copier.Copy(res.Guest, v.Guest); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func FromOrderViews(views []*queries.OrderView) ([]*OrderResponse, error) {
	res := make([]*OrderResponse, 0, len(views))
	for _, v := range views {
		r, err := FromOrderView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}
