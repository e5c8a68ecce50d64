package shared

import (
	"context"

	"perfume-order-api/internal/domain/history"

	"github.com/google/uuid"
)

//go:generate mockgen -source=history.go -destination=../../../tests/mock/shared/history.go -package=sharedmock

// SaveHistoryFunc writes h back as the customer's history.
type SaveHistoryFunc func(h *history.History) error

// HistoryStore owns the undo history of every customer.
//
// Update runs fn with exclusive access to the customer's history, creating an empty
// one on first use. fn gets a private copy and persists changes by calling save, which
// may run inside a database transaction. Nothing is written unless save is called.
type HistoryStore interface {
	Update(ctx context.Context, customerID uuid.UUID, fn func(h *history.History, save SaveHistoryFunc) error) error
}
