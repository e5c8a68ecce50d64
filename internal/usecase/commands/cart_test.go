//go:build unit

package commands_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"perfume-order-api/internal/domain/cart"
	"perfume-order-api/internal/domain/history"
	"perfume-order-api/internal/pkg/errs"
	"perfume-order-api/internal/usecase/commands"
	"perfume-order-api/internal/usecase/shared"
	sharedmock "perfume-order-api/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCartCommands(f *storeFixture) commands.CartCommands {
	return commands.NewCartCommands(f.uow, f.history, commands.NewCartStore(), commands.NewStockChecker())
}

// =============================================================================
// AddItem Tests
// =============================================================================

func TestCartCommands_AddItem(t *testing.T) {
	ctx := context.Background()

	t.Run("success: appends a line priced from the catalogue", func(t *testing.T) {
		f := newStoreFixture(t)
		uc := newCartCommands(f)
		customerID := uuid.New()
		pid := f.addProduct("La Vie Est Belle", "118.00", 10)

		lines, err := uc.AddItem(ctx, customerID, commands.AddItemRequest{ProductID: pid, Quantity: 2})

		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, "La Vie Est Belle", lines[0].Name)
		assert.Equal(t, 2, lines[0].Quantity)
		assert.Equal(t, "118", lines[0].UnitPrice.String())
		assert.Equal(t, lines, f.carts[customerID])
	})

	t.Run("success: merges into the existing line", func(t *testing.T) {
		f := newStoreFixture(t)
		uc := newCartCommands(f)
		customerID := uuid.New()
		pid := f.addProduct("Angels' Share", "260.00", 5)

		_, err := uc.AddItem(ctx, customerID, commands.AddItemRequest{ProductID: pid, Quantity: 2})
		require.NoError(t, err)
		lines, err := uc.AddItem(ctx, customerID, commands.AddItemRequest{ProductID: pid, Quantity: 3})

		require.NoError(t, err)
		assert.Equal(t, []int{5}, quantities(lines))
	})

	t.Run("error: merged quantity beyond stock", func(t *testing.T) {
		f := newStoreFixture(t)
		uc := newCartCommands(f)
		customerID := uuid.New()
		pid := f.addProduct("Erba Pura", "175.00", 4)

		_, err := uc.AddItem(ctx, customerID, commands.AddItemRequest{ProductID: pid, Quantity: 3})
		require.NoError(t, err)
		_, err = uc.AddItem(ctx, customerID, commands.AddItemRequest{ProductID: pid, Quantity: 2})

		var stockErr *commands.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, "Erba Pura", stockErr.ProductName)
		assert.Equal(t, 5, stockErr.Requested)
		assert.Equal(t, 4, stockErr.Available)
		assert.ErrorIs(t, err, errs.ErrInsufficientStock)
		assert.Equal(t, []int{3}, quantities(f.carts[customerID]), "storage keeps the previous state")
	})

	t.Run("error: unknown product", func(t *testing.T) {
		f := newStoreFixture(t)
		uc := newCartCommands(f)
		customerID := uuid.New()

		_, err := uc.AddItem(ctx, customerID, commands.AddItemRequest{ProductID: uuid.New(), Quantity: 1})

		assert.ErrorIs(t, err, commands.ErrProductNotFound)
		assert.ErrorIs(t, err, errs.ErrNotFound)
		_, err = uc.Undo(ctx, customerID)
		assert.ErrorIs(t, err, history.ErrNothingToUndo, "failed mutations are not recorded")
	})

	t.Run("error: non-positive quantity never reaches storage", func(t *testing.T) {
		f := newStoreFixture(t)
		uc := newCartCommands(f)
		pid := f.addProduct("Si Passione", "99.00", 10)

		for _, qty := range []int{0, -3} {
			_, err := uc.AddItem(ctx, uuid.New(), commands.AddItemRequest{ProductID: pid, Quantity: qty})
			assert.ErrorIs(t, err, cart.ErrInvalidQuantity)
			assert.ErrorIs(t, err, errs.ErrValidation)
		}
		assert.Zero(t, f.saveCallCount)
		assert.Zero(t, f.productReads)
	})

	t.Run("error: merged quantity overflow is rejected before the stock check", func(t *testing.T) {
		f := newStoreFixture(t)
		uc := newCartCommands(f)
		customerID := uuid.New()
		pid := f.addProduct("Tobacco Vanille", "310.00", 5)

		_, err := uc.AddItem(ctx, customerID, commands.AddItemRequest{ProductID: pid, Quantity: 2})
		require.NoError(t, err)
		reads := f.productReads

		lines, err := uc.AddItem(ctx, customerID, commands.AddItemRequest{ProductID: pid, Quantity: math.MaxInt})

		assert.Nil(t, lines)
		assert.ErrorIs(t, err, cart.ErrQuantityTooLarge)
		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, reads, f.productReads)
		assert.Equal(t, []int{2}, quantities(f.carts[customerID]))
	})

	t.Run("error: storage failure is not recorded", func(t *testing.T) {
		f := newStoreFixture(t)
		uc := newCartCommands(f)
		customerID := uuid.New()
		pid := f.addProduct("Terre d'Hermès", "140.00", 10)
		f.failSave = errors.New("disk full")

		_, err := uc.AddItem(ctx, customerID, commands.AddItemRequest{ProductID: pid, Quantity: 1})
		require.Error(t, err)

		f.failSave = nil
		_, err = uc.Undo(ctx, customerID)
		assert.ErrorIs(t, err, history.ErrNothingToUndo)
	})
}

// =============================================================================
// UpdateItem / RemoveItem Tests
// =============================================================================

func TestCartCommands_UpdateItem(t *testing.T) {
	ctx := context.Background()
	f := newStoreFixture(t)
	uc := newCartCommands(f)
	customerID := uuid.New()
	pid := f.addProduct("Black Opium", "121.00", 6)

	_, err := uc.AddItem(ctx, customerID, commands.AddItemRequest{ProductID: pid, Quantity: 1})
	require.NoError(t, err)

	lines, err := uc.UpdateItem(ctx, customerID, commands.UpdateItemRequest{ProductID: pid, Quantity: 6})
	require.NoError(t, err)
	assert.Equal(t, []int{6}, quantities(lines))

	_, err = uc.UpdateItem(ctx, customerID, commands.UpdateItemRequest{ProductID: pid, Quantity: 7})
	assert.ErrorIs(t, err, errs.ErrInsufficientStock)

	_, err = uc.UpdateItem(ctx, customerID, commands.UpdateItemRequest{ProductID: uuid.New(), Quantity: 1})
	assert.ErrorIs(t, err, cart.ErrLineNotFound)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	_, err = uc.UpdateItem(ctx, customerID, commands.UpdateItemRequest{ProductID: pid, Quantity: 0})
	assert.ErrorIs(t, err, cart.ErrInvalidQuantity)

	assert.Equal(t, []int{6}, quantities(f.carts[customerID]))
}

func TestCartCommands_RemoveItem(t *testing.T) {
	ctx := context.Background()
	f := newStoreFixture(t)
	uc := newCartCommands(f)
	customerID := uuid.New()
	first := f.addProduct("Fahrenheit", "88.00", 3)
	second := f.addProduct("Terre de Lumière", "92.00", 3)

	_, err := uc.AddItem(ctx, customerID, commands.AddItemRequest{ProductID: first, Quantity: 1})
	require.NoError(t, err)
	_, err = uc.AddItem(ctx, customerID, commands.AddItemRequest{ProductID: second, Quantity: 2})
	require.NoError(t, err)

	lines, err := uc.RemoveItem(ctx, customerID, first)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, second, lines[0].ProductID)

	lines, err = uc.RemoveItem(ctx, customerID, uuid.New())
	require.NoError(t, err, "removing an absent product is a no-op")
	assert.Len(t, lines, 1)
}

// =============================================================================
// Undo / Redo Tests
// =============================================================================

func TestCartCommands_UndoRedo(t *testing.T) {
	ctx := context.Background()
	f := newStoreFixture(t)
	uc := newCartCommands(f)
	customerID := uuid.New()
	a := f.addProduct("Noir de Noir", "310.00", 10)
	b := f.addProduct("Lost Cherry", "395.00", 10)

	_, err := uc.AddItem(ctx, customerID, commands.AddItemRequest{ProductID: a, Quantity: 1})
	require.NoError(t, err)
	_, err = uc.AddItem(ctx, customerID, commands.AddItemRequest{ProductID: b, Quantity: 2})
	require.NoError(t, err)

	lines, err := uc.Undo(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, quantities(lines))
	assert.Equal(t, lines, f.carts[customerID], "undo writes the snapshot back to storage")

	lines, err = uc.Undo(ctx, customerID)
	require.NoError(t, err)
	assert.Empty(t, lines, "the first mutation can be undone to the empty cart")

	_, err = uc.Undo(ctx, customerID)
	assert.ErrorIs(t, err, history.ErrNothingToUndo)
	assert.ErrorIs(t, err, errs.ErrNothingToUndo)

	lines, err = uc.Redo(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, quantities(lines))

	lines, err = uc.Redo(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, quantities(lines))

	_, err = uc.Redo(ctx, customerID)
	assert.ErrorIs(t, err, errs.ErrNothingToRedo)
}

func TestCartCommands_MutationAfterUndoDropsRedo(t *testing.T) {
	ctx := context.Background()
	f := newStoreFixture(t)
	uc := newCartCommands(f)
	customerID := uuid.New()
	a := f.addProduct("Spicebomb", "105.00", 10)

	_, err := uc.AddItem(ctx, customerID, commands.AddItemRequest{ProductID: a, Quantity: 1})
	require.NoError(t, err)
	_, err = uc.AddItem(ctx, customerID, commands.AddItemRequest{ProductID: a, Quantity: 1})
	require.NoError(t, err)
	_, err = uc.Undo(ctx, customerID)
	require.NoError(t, err)

	lines, err := uc.UpdateItem(ctx, customerID, commands.UpdateItemRequest{ProductID: a, Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, []int{5}, quantities(lines))

	_, err = uc.Redo(ctx, customerID)
	assert.ErrorIs(t, err, errs.ErrNothingToRedo)
}

func TestCartCommands_UndoIgnoresLiveStock(t *testing.T) {
	ctx := context.Background()
	f := newStoreFixture(t)
	uc := newCartCommands(f)
	customerID := uuid.New()
	a := f.addProduct("Oud Satin Mood", "420.00", 3)

	_, err := uc.AddItem(ctx, customerID, commands.AddItemRequest{ProductID: a, Quantity: 3})
	require.NoError(t, err)
	_, err = uc.RemoveItem(ctx, customerID, a)
	require.NoError(t, err)

	f.products[a].Stock = 0
	reads := f.productReads

	lines, err := uc.Undo(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, quantities(lines))
	assert.Equal(t, reads, f.productReads)
}

func TestCartCommands_FailedUndoKeepsHistory(t *testing.T) {
	ctx := context.Background()
	f := newStoreFixture(t)
	uc := newCartCommands(f)
	customerID := uuid.New()
	a := f.addProduct("Flowerbomb", "128.00", 10)

	_, err := uc.AddItem(ctx, customerID, commands.AddItemRequest{ProductID: a, Quantity: 1})
	require.NoError(t, err)
	_, err = uc.AddItem(ctx, customerID, commands.AddItemRequest{ProductID: a, Quantity: 1})
	require.NoError(t, err)

	f.failSave = errors.New("connection lost")
	_, err = uc.Undo(ctx, customerID)
	require.Error(t, err)
	assert.Equal(t, []int{2}, quantities(f.carts[customerID]))

	f.failSave = nil
	lines, err := uc.Undo(ctx, customerID)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, quantities(lines), "the failed undo did not move the cursor")
}

func TestCartCommands_HistoryWriteFailureRollsBackCart(t *testing.T) {
	ctx := context.Background()
	historyDown := errors.New("history backend unavailable")

	newFailingHistory := func(f *storeFixture, current *history.History) commands.CartCommands {
		store := sharedmock.NewMockHistoryStore(f.ctrl)
		store.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ uuid.UUID, fn func(*history.History, shared.SaveHistoryFunc) error) error {
				return fn(current, func(*history.History) error { return historyDown })
			})
		return commands.NewCartCommands(f.uow, store, commands.NewCartStore(), commands.NewStockChecker())
	}

	t.Run("mutation", func(t *testing.T) {
		f := newStoreFixture(t)
		customerID := uuid.New()
		pid := f.addProduct("Oud Wood", "285.00", 10)
		uc := newFailingHistory(f, history.New(10))

		_, err := uc.AddItem(ctx, customerID, commands.AddItemRequest{ProductID: pid, Quantity: 1})

		require.ErrorIs(t, err, historyDown)
		assert.Equal(t, 1, f.saveCallCount, "the cart was written inside the transaction")
		assert.Empty(t, f.carts[customerID], "and rolled back with it")
	})

	t.Run("undo", func(t *testing.T) {
		f := newStoreFixture(t)
		customerID := uuid.New()
		pid := f.addProduct("Portrait of a Lady", "340.00", 10)
		line := cart.Line{ProductID: pid, Name: "Portrait of a Lady", Quantity: 1, UnitPrice: decimal.RequireFromString("340.00")}
		f.carts[customerID] = []cart.Line{line}

		current := history.New(10)
		current.Record(cart.NewSnapshot(nil))
		current.Record(cart.NewSnapshot([]cart.Line{line}))
		uc := newFailingHistory(f, current)

		_, err := uc.Undo(ctx, customerID)

		require.ErrorIs(t, err, historyDown)
		assert.Equal(t, []int{1}, quantities(f.carts[customerID]))
		assert.Equal(t, 1, current.Cursor(), "the stored history is never touched in place")
	})
}

func TestCartCommands_FailedCommitRestoresHistory(t *testing.T) {
	ctx := context.Background()
	f := newStoreFixture(t)
	uc := newCartCommands(f)
	customerID := uuid.New()
	pid := f.addProduct("Black Opium", "112.00", 10)

	_, err := uc.AddItem(ctx, customerID, commands.AddItemRequest{ProductID: pid, Quantity: 1})
	require.NoError(t, err)

	f.failCommit = errors.New("commit aborted")
	_, err = uc.AddItem(ctx, customerID, commands.AddItemRequest{ProductID: pid, Quantity: 1})
	require.Error(t, err)
	assert.Equal(t, []int{1}, quantities(f.carts[customerID]))

	f.failCommit = nil
	lines, err := uc.Undo(ctx, customerID)
	require.NoError(t, err)
	assert.Empty(t, lines, "undo skips nothing that was never stored")
	_, err = uc.Undo(ctx, customerID)
	assert.ErrorIs(t, err, history.ErrNothingToUndo)
}

func TestCartCommands_UndoDepthFollowsSnapshotCap(t *testing.T) {
	ctx := context.Background()
	const maxSnapshots = 50

	t.Run("every mutation below the cap can be undone back to empty", func(t *testing.T) {
		f := newStoreFixture(t)
		uc := newCartCommands(f)
		customerID := uuid.New()
		pid := f.addProduct("Gypsy Water", "210.00", 1000)

		for i := 0; i < maxSnapshots-1; i++ {
			_, err := uc.AddItem(ctx, customerID, commands.AddItemRequest{ProductID: pid, Quantity: 1})
			require.NoError(t, err)
		}
		for i := 0; i < maxSnapshots-1; i++ {
			_, err := uc.Undo(ctx, customerID)
			require.NoError(t, err)
		}

		assert.Empty(t, f.carts[customerID])
		_, err := uc.Undo(ctx, customerID)
		assert.ErrorIs(t, err, history.ErrNothingToUndo)
	})

	t.Run("the oldest state is dropped once the cap is reached", func(t *testing.T) {
		f := newStoreFixture(t)
		uc := newCartCommands(f)
		customerID := uuid.New()
		pid := f.addProduct("Gypsy Water", "210.00", 1000)

		for i := 0; i < maxSnapshots; i++ {
			_, err := uc.AddItem(ctx, customerID, commands.AddItemRequest{ProductID: pid, Quantity: 1})
			require.NoError(t, err)
		}
		for i := 0; i < maxSnapshots-1; i++ {
			_, err := uc.Undo(ctx, customerID)
			require.NoError(t, err)
		}

		assert.Equal(t, []int{1}, quantities(f.carts[customerID]))
		_, err := uc.Undo(ctx, customerID)
		assert.ErrorIs(t, err, history.ErrNothingToUndo)
	})
}

func TestCartCommands_CustomersAreIndependent(t *testing.T) {
	ctx := context.Background()
	f := newStoreFixture(t)
	uc := newCartCommands(f)
	alice, bob := uuid.New(), uuid.New()
	a := f.addProduct("Mon Paris", "101.00", 10)

	_, err := uc.AddItem(ctx, alice, commands.AddItemRequest{ProductID: a, Quantity: 1})
	require.NoError(t, err)

	_, err = uc.Undo(ctx, bob)
	assert.ErrorIs(t, err, errs.ErrNothingToUndo)
	assert.Len(t, f.carts[alice], 1)
	assert.Empty(t, f.carts[bob])
}
