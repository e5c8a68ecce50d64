package commands

import (
	"fmt"

	"perfume-order-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrProductNotFound = errs.Categorize("product not found", errs.ErrNotFound)
	// ErrInvalidAddress covers both a missing address and one owned by another customer.
	ErrInvalidAddress = errs.Categorize("invalid shipping address", errs.ErrNotFound)
)

// InsufficientStockError names the first product whose stock cannot cover the request.
type InsufficientStockError struct {
	ProductID   uuid.UUID
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d", e.ProductName, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error {
	return errs.ErrInsufficientStock
}
