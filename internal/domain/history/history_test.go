//go:build unit

package history_test

import (
	"testing"

	"perfume-order-api/internal/domain/cart"
	"perfume-order-api/internal/domain/history"
	"perfume-order-api/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productID = uuid.New()

func snapshotWithQty(qty int) cart.Snapshot {
	if qty == 0 {
		return cart.NewSnapshot(nil)
	}
	return cart.NewSnapshot([]cart.Line{{
		ProductID: productID,
		Name:      "Acqua di Gio",
		Quantity:  qty,
		UnitPrice: decimal.RequireFromString("10.00"),
	}})
}

func qtyOf(s cart.Snapshot) int {
	if s.Len() == 0 {
		return 0
	}
	return s.Lines()[0].Quantity
}

func TestHistory_Empty(t *testing.T) {
	h := history.New(0)

	_, err := h.Undo()
	assert.ErrorIs(t, err, history.ErrNothingToUndo)
	assert.ErrorIs(t, err, errs.ErrNothingToUndo)

	_, err = h.Redo()
	assert.ErrorIs(t, err, history.ErrNothingToRedo)
	assert.ErrorIs(t, err, errs.ErrNothingToRedo)

	assert.True(t, h.IsEmpty())
	assert.Equal(t, -1, h.Cursor())
}

func TestHistory_SingleSnapshotCannotUndo(t *testing.T) {
	h := history.New(0)
	h.Record(snapshotWithQty(1))

	_, err := h.Undo()
	assert.ErrorIs(t, err, history.ErrNothingToUndo)
	_, err = h.Redo()
	assert.ErrorIs(t, err, history.ErrNothingToRedo)
}

func TestHistory_UndoRedoWalk(t *testing.T) {
	h := history.New(0)
	for q := 0; q <= 3; q++ {
		h.Record(snapshotWithQty(q))
	}

	for _, want := range []int{2, 1, 0} {
		s, err := h.Undo()
		require.NoError(t, err)
		assert.Equal(t, want, qtyOf(s))
	}
	_, err := h.Undo()
	assert.ErrorIs(t, err, history.ErrNothingToUndo)

	for _, want := range []int{1, 2, 3} {
		s, err := h.Redo()
		require.NoError(t, err)
		assert.Equal(t, want, qtyOf(s))
	}
	_, err = h.Redo()
	assert.ErrorIs(t, err, history.ErrNothingToRedo)
}

func TestHistory_RecordAfterUndoPrunesRedoBranch(t *testing.T) {
	h := history.New(0)
	h.Record(snapshotWithQty(0))
	h.Record(snapshotWithQty(2))
	h.Record(snapshotWithQty(5))

	_, err := h.Undo()
	require.NoError(t, err)
	h.Record(snapshotWithQty(4))

	_, err = h.Redo()
	assert.ErrorIs(t, err, history.ErrNothingToRedo)
	assert.Equal(t, 3, h.Len())

	s, err := h.Undo()
	require.NoError(t, err)
	assert.Equal(t, 2, qtyOf(s))
}

func TestHistory_FailedUndoLeavesCursor(t *testing.T) {
	h := history.New(0)
	h.Record(snapshotWithQty(1))
	h.Record(snapshotWithQty(2))

	_, err := h.Redo()
	require.Error(t, err)
	assert.Equal(t, 1, h.Cursor())
}

func TestHistory_MaxSnapshots(t *testing.T) {
	h := history.New(3)
	for q := 1; q <= 5; q++ {
		h.Record(snapshotWithQty(q))
	}
	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 2, h.Cursor())

	s, err := h.Undo()
	require.NoError(t, err)
	assert.Equal(t, 4, qtyOf(s))
	s, err = h.Undo()
	require.NoError(t, err)
	assert.Equal(t, 3, qtyOf(s))
	_, err = h.Undo()
	assert.ErrorIs(t, err, history.ErrNothingToUndo)
}

func TestHistory_CloneIsIndependent(t *testing.T) {
	h := history.New(0)
	h.Record(snapshotWithQty(1))
	h.Record(snapshotWithQty(2))

	clone := h.Clone()
	_, err := clone.Undo()
	require.NoError(t, err)
	clone.Record(snapshotWithQty(9))

	assert.Equal(t, 1, h.Cursor())
	s, err := h.Undo()
	require.NoError(t, err)
	assert.Equal(t, 1, qtyOf(s))
	s, err = h.Redo()
	require.NoError(t, err)
	assert.Equal(t, 2, qtyOf(s))
}

func TestHistory_StateRoundTrip(t *testing.T) {
	h := history.New(10)
	h.Record(snapshotWithQty(0))
	h.Record(snapshotWithQty(2))
	h.Record(snapshotWithQty(3))
	_, err := h.Undo()
	require.NoError(t, err)

	restored, err := history.FromState(h.State(), 10)
	require.NoError(t, err)
	assert.Equal(t, h.Cursor(), restored.Cursor())
	assert.Equal(t, h.Len(), restored.Len())

	s, err := restored.Redo()
	require.NoError(t, err)
	assert.Equal(t, 3, qtyOf(s))
}

func TestFromState_Invalid(t *testing.T) {
	testCases := []struct {
		name  string
		state history.State
	}{
		{name: "cursor beyond snapshots", state: history.State{Snapshots: [][]cart.Line{{}}, Cursor: 1}},
		{name: "negative cursor with snapshots", state: history.State{Snapshots: [][]cart.Line{{}}, Cursor: -1}},
		{name: "cursor on empty history", state: history.State{Cursor: 0}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := history.FromState(tc.state, 0)
			assert.ErrorIs(t, err, history.ErrInvalidState)
		})
	}

	h, err := history.FromState(history.State{Cursor: -1}, 0)
	require.NoError(t, err)
	assert.True(t, h.IsEmpty())
}
