package cart

import "perfume-order-api/internal/pkg/errs"

var (
	ErrInvalidQuantity  = errs.Categorize("quantity must be greater than zero", errs.ErrValidation)
	ErrQuantityTooLarge = errs.Categorize("quantity exceeds the allowed maximum", errs.ErrValidation)
	ErrNegativePrice    = errs.Categorize("unit price must not be negative", errs.ErrValidation)
	ErrLineNotFound     = errs.Categorize("product is not in the cart", errs.ErrNotFound)
	ErrDuplicateLine    = errs.Categorize("duplicate product line in cart", errs.ErrValidation)
)
