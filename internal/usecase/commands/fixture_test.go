//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"perfume-order-api/internal/domain/cart"
	"perfume-order-api/internal/domain/order"
	"perfume-order-api/internal/infra"
	"perfume-order-api/internal/infra/historystore"
	sqlc "perfume-order-api/internal/infra/sqlc/generated"
	"perfume-order-api/internal/pkg/clock"
	"perfume-order-api/internal/usecase/shared"
	queriesmock "perfume-order-api/tests/mock/queries"
	sharedmock "perfume-order-api/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

// storeFixture backs the unit of work mocks with an in-memory catalogue, cart table and
// order table so use cases can be exercised end to end. Cart writes of a failed
// transaction are rolled back.
type storeFixture struct {
	ctrl       *gomock.Controller
	uow        *sharedmock.MockUnitOfWork
	tx         *sharedmock.MockTx
	reads      *sharedmock.MockCommandReads
	cartLines  *sharedmock.MockCartLineRepository
	orderRepo  *sharedmock.MockOrderRepository
	orderStore *queriesmock.MockOrderReadStore
	history    *historystore.MemoryStore
	clock      *clock.MockClock

	products      map[uuid.UUID]*shared.ProductSnapshot
	addresses     map[uuid.UUID]uuid.UUID
	carts         map[uuid.UUID][]cart.Line
	orders        []*order.Order
	statuses      map[uuid.UUID]order.Status
	productReads  int
	failSave      error
	failCommit    error
	saveCallCount int
}

func newStoreFixture(t *testing.T) *storeFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	clk := clock.NewMockClock(time.Date(2025, 4, 10, 14, 0, 0, 0, time.UTC))
	f := &storeFixture{
		ctrl:       ctrl,
		uow:        sharedmock.NewMockUnitOfWork(ctrl),
		tx:         sharedmock.NewMockTx(ctrl),
		reads:      sharedmock.NewMockCommandReads(ctrl),
		cartLines:  sharedmock.NewMockCartLineRepository(ctrl),
		orderRepo:  sharedmock.NewMockOrderRepository(ctrl),
		orderStore: queriesmock.NewMockOrderReadStore(ctrl),
		history:    historystore.NewMemoryStore(time.Hour, 50, clk),
		clock:      clk,
		products:   map[uuid.UUID]*shared.ProductSnapshot{},
		addresses:  map[uuid.UUID]uuid.UUID{},
		carts:      map[uuid.UUID][]cart.Line{},
		statuses:   map[uuid.UUID]order.Status{},
	}

	var db sqlc.DBTX
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			carts := make(map[uuid.UUID][]cart.Line, len(f.carts))
			for id, lines := range f.carts {
				carts[id] = lines
			}
			err := fn(ctx, f.tx)
			if err == nil {
				err = f.failCommit
			}
			if err != nil {
				f.carts = carts
			}
			return err
		})
	f.uow.EXPECT().CommandReads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().CartLines().Return(f.cartLines).AnyTimes()
	f.tx.EXPECT().Orders().Return(f.orderRepo).AnyTimes()
	f.tx.EXPECT().DB().Return(db).AnyTimes()

	f.reads.EXPECT().ProductByID(gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(_ context.Context, id uuid.UUID) (*shared.ProductSnapshot, error) {
			f.productReads++
			p, ok := f.products[id]
			if !ok {
				return nil, infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
			}
			cp := *p
			return &cp, nil
		})
	f.reads.EXPECT().AddressOfCustomer(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(_ context.Context, addressID, customerID uuid.UUID) (*shared.AddressSnapshot, error) {
			owner, ok := f.addresses[addressID]
			if !ok || owner != customerID {
				return nil, infra.WrapRepoErr("address not found", nil, infra.KindNotFound)
			}
			return &shared.AddressSnapshot{ID: addressID, CustomerID: owner}, nil
		})
	f.reads.EXPECT().CartLines(gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(_ context.Context, customerID uuid.UUID) ([]cart.Line, error) {
			return append([]cart.Line(nil), f.carts[customerID]...), nil
		})
	f.cartLines.EXPECT().ReplaceLines(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, customerID uuid.UUID, lines []cart.Line) error {
			f.saveCallCount++
			if f.failSave != nil {
				return f.failSave
			}
			f.carts[customerID] = append([]cart.Line(nil), lines...)
			return nil
		})
	f.orderRepo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, o *order.Order) error {
			f.orders = append(f.orders, o)
			f.statuses[o.ID()] = o.Status()
			return nil
		})
	f.orderRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes().DoAndReturn(
		func(_ context.Context, _ sqlc.DBTX, id uuid.UUID, status order.Status) error {
			if _, ok := f.statuses[id]; !ok {
				return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
			}
			f.statuses[id] = status
			return nil
		})
	return f
}

func (f *storeFixture) addProduct(name, price string, stock int) uuid.UUID {
	id := uuid.New()
	f.products[id] = &shared.ProductSnapshot{
		ID:    id,
		Name:  name,
		Price: decimal.RequireFromString(price),
		Stock: stock,
	}
	return id
}

func (f *storeFixture) addAddress(customerID uuid.UUID) uuid.UUID {
	id := uuid.New()
	f.addresses[id] = customerID
	return id
}

func quantities(lines []cart.Line) []int {
	out := make([]int, len(lines))
	for i, l := range lines {
		out[i] = l.Quantity
	}
	return out
}
