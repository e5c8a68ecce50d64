//go:build unit

package historystore

import (
	"context"
	"sync"
	"testing"
	"time"

	"perfume-order-api/internal/domain/cart"
	"perfume-order-api/internal/domain/history"
	"perfume-order-api/internal/pkg/clock"
	"perfume-order-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func snapshotOf(qty int) cart.Snapshot {
	return cart.NewSnapshot([]cart.Line{{
		ProductID: uuid.MustParse("5b0c56b6-4a8f-4a8b-9b0e-8f6f0c1f2a01"),
		Name:      "Baccarat Rouge 540",
		Quantity:  qty,
		UnitPrice: decimal.RequireFromString("325.00"),
	}})
}

func recordN(n int) func(*history.History, shared.SaveHistoryFunc) error {
	return func(h *history.History, save shared.SaveHistoryFunc) error {
		for i := 1; i <= n; i++ {
			h.Record(snapshotOf(i))
		}
		return save(h)
	}
}

func TestMemoryStore_CreatesHistoryLazily(t *testing.T) {
	store := NewMemoryStore(time.Hour, 10, clock.NewMockClock(time.Now()))
	customerID := uuid.New()

	var seen *history.History
	err := store.Update(context.Background(), customerID, func(h *history.History, _ shared.SaveHistoryFunc) error {
		seen = h
		return nil
	})

	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.True(t, seen.IsEmpty())
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_KeepsOnlySavedChanges(t *testing.T) {
	store := NewMemoryStore(time.Hour, 10, clock.NewMockClock(time.Now()))
	customerID := uuid.New()
	ctx := context.Background()

	require.NoError(t, store.Update(ctx, customerID, recordN(2)))

	err := store.Update(ctx, customerID, func(h *history.History, _ shared.SaveHistoryFunc) error {
		h.Record(snapshotOf(99))
		_, _ = h.Undo()
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	require.NoError(t, store.Update(ctx, customerID, func(h *history.History, _ shared.SaveHistoryFunc) error {
		h.Record(snapshotOf(42))
		return nil
	}))

	require.NoError(t, store.Update(ctx, customerID, func(h *history.History, _ shared.SaveHistoryFunc) error {
		assert.Equal(t, 2, h.Len())
		assert.Equal(t, 1, h.Cursor())
		assert.False(t, h.CanRedo())
		return nil
	}))
}

func TestMemoryStore_SaveStoresACopy(t *testing.T) {
	store := NewMemoryStore(time.Hour, 10, clock.NewMockClock(time.Now()))
	customerID := uuid.New()
	ctx := context.Background()

	err := store.Update(ctx, customerID, func(h *history.History, save shared.SaveHistoryFunc) error {
		h.Record(snapshotOf(1))
		if err := save(h); err != nil {
			return err
		}
		h.Record(snapshotOf(2))
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	require.NoError(t, store.Update(ctx, customerID, func(h *history.History, _ shared.SaveHistoryFunc) error {
		assert.Equal(t, 1, h.Len(), "the last saved history survives a failing fn")
		return nil
	}))
}

func TestMemoryStore_CustomersAreIndependent(t *testing.T) {
	store := NewMemoryStore(time.Hour, 10, clock.NewMockClock(time.Now()))
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	require.NoError(t, store.Update(ctx, alice, recordN(3)))

	require.NoError(t, store.Update(ctx, bob, func(h *history.History, _ shared.SaveHistoryFunc) error {
		assert.True(t, h.IsEmpty())
		return nil
	}))
}

func TestMemoryStore_ExpiresIdleHistory(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	store := NewMemoryStore(30*time.Minute, 10, clk)
	ctx := context.Background()
	customerID := uuid.New()

	require.NoError(t, store.Update(ctx, customerID, recordN(2)))

	clk.Add(29 * time.Minute)
	require.NoError(t, store.Update(ctx, customerID, func(h *history.History, _ shared.SaveHistoryFunc) error {
		assert.Equal(t, 2, h.Len(), "touching within ttl keeps the history")
		return nil
	}))

	clk.Add(31 * time.Minute)
	require.NoError(t, store.Update(ctx, customerID, func(h *history.History, _ shared.SaveHistoryFunc) error {
		assert.True(t, h.IsEmpty(), "idle history must expire")
		return nil
	}))
}

func TestMemoryStore_SweepDropsExpiredEntries(t *testing.T) {
	clk := clock.NewMockClock(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	store := NewMemoryStore(time.Minute, 10, clk)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Update(ctx, uuid.New(), recordN(1)))
	}
	assert.Equal(t, 5, store.Len())

	clk.Add(2 * time.Minute)
	require.NoError(t, store.Update(ctx, uuid.New(), recordN(1)))
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_RespectsSnapshotCap(t *testing.T) {
	store := NewMemoryStore(time.Hour, 3, clock.NewMockClock(time.Now()))
	customerID := uuid.New()

	require.NoError(t, store.Update(context.Background(), customerID, recordN(5)))
	require.NoError(t, store.Update(context.Background(), customerID, func(h *history.History, _ shared.SaveHistoryFunc) error {
		assert.Equal(t, 3, h.Len())
		return nil
	}))
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	store := NewMemoryStore(time.Hour, 10, clock.NewMockClock(time.Now()))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := store.Update(ctx, uuid.New(), func(h *history.History, _ shared.SaveHistoryFunc) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestMemoryStore_SerializesPerCustomer(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := NewMemoryStore(time.Hour, 1000, clock.NewRealClock())
	customerID := uuid.New()
	ctx := context.Background()

	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(qty int) {
			defer wg.Done()
			_ = store.Update(ctx, customerID, func(h *history.History, save shared.SaveHistoryFunc) error {
				h.Record(snapshotOf(qty))
				return save(h)
			})
		}(i + 1)
	}
	wg.Wait()

	require.NoError(t, store.Update(ctx, customerID, func(h *history.History, _ shared.SaveHistoryFunc) error {
		assert.Equal(t, workers, h.Len())
		return nil
	}))
}
