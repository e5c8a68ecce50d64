package order

import "perfume-order-api/internal/pkg/errs"

var (
	ErrEmptyCart           = errs.Categorize("cart is empty", errs.ErrValidation)
	ErrEmptyOrder          = errs.Categorize("order has no items", errs.ErrValidation)
	ErrIncompleteGuestInfo = errs.Categorize("incomplete guest information", errs.ErrValidation)
	ErrInvalidStatus       = errs.Categorize("invalid order status", errs.ErrValidation)
	ErrInvalidItem         = errs.Categorize("order item needs a product, a positive quantity and a non-negative price", errs.ErrValidation)
)

type Status string

const (
	StatusPending    Status = "Pending"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
	StatusCancelled  Status = "Cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the order has left the fulfilment flow.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// ParseStatus only checks membership. Any listed status may follow any other.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

func AllStatuses() []Status {
	return []Status{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled}
}
