package shared

import (
	"context"

	"perfume-order-api/internal/domain/cart"
	"perfume-order-api/internal/domain/order"
	sqlc "perfume-order-api/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	CartLines() CartLineRepository
	Orders() OrderRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	ProductByID(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
	// AddressOfCustomer fails with a not-found error when the address belongs to someone else.
	AddressOfCustomer(ctx context.Context, addressID, customerID uuid.UUID) (*AddressSnapshot, error)
	CartLines(ctx context.Context, customerID uuid.UUID) ([]cart.Line, error)
}

type CartLineRepository interface {
	ReplaceLines(ctx context.Context, tx sqlc.DBTX, customerID uuid.UUID, lines []cart.Line) error
}

type OrderRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, o *order.Order) error
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, orderID uuid.UUID, status order.Status) error
}
