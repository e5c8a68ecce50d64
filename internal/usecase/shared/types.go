package shared

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Write-side snapshots keep commands independent of the read-side view types
type ProductSnapshot struct {
	ID    uuid.UUID
	Name  string
	Price decimal.Decimal
	Stock int
}

type AddressSnapshot struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
}
