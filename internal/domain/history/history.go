package history

import (
	"perfume-order-api/internal/domain/cart"
	"perfume-order-api/internal/pkg/errs"
)

var (
	ErrNothingToUndo = errs.Categorize("nothing to undo", errs.ErrNothingToUndo)
	ErrNothingToRedo = errs.Categorize("nothing to redo", errs.ErrNothingToRedo)
	ErrInvalidState  = errs.New("invalid history state")
)

// History is the linear undo/redo log of one customer's cart. The cursor points at the
// current snapshot; entries before it are undoable and entries after it redoable.
type History struct {
	snapshots    []cart.Snapshot
	cursor       int
	maxSnapshots int
}

// New creates an empty history. maxSnapshots <= 0 means unbounded.
func New(maxSnapshots int) *History {
	return &History{cursor: -1, maxSnapshots: maxSnapshots}
}

// Record prunes the redo branch, appends s and moves the cursor onto it.
// When the cap is exceeded the oldest snapshots are dropped.
func (h *History) Record(s cart.Snapshot) {
	h.snapshots = append(h.snapshots[:h.cursor+1], s)
	h.cursor = len(h.snapshots) - 1

	if h.maxSnapshots > 0 && len(h.snapshots) > h.maxSnapshots {
		drop := len(h.snapshots) - h.maxSnapshots
		h.snapshots = append([]cart.Snapshot(nil), h.snapshots[drop:]...)
		h.cursor -= drop
	}
}

func (h *History) Undo() (cart.Snapshot, error) {
	if !h.CanUndo() {
		return cart.Snapshot{}, ErrNothingToUndo
	}
	h.cursor--
	return h.snapshots[h.cursor], nil
}

func (h *History) Redo() (cart.Snapshot, error) {
	if !h.CanRedo() {
		return cart.Snapshot{}, ErrNothingToRedo
	}
	h.cursor++
	return h.snapshots[h.cursor], nil
}

func (h *History) CanUndo() bool {
	return h.cursor > 0
}

func (h *History) CanRedo() bool {
	return h.cursor >= 0 && h.cursor < len(h.snapshots)-1
}

func (h *History) IsEmpty() bool {
	return len(h.snapshots) == 0
}

func (h *History) Len() int {
	return len(h.snapshots)
}

func (h *History) Cursor() int {
	return h.cursor
}

// Clone returns a history that shares no mutable state with h.
func (h *History) Clone() *History {
	return &History{
		snapshots:    append([]cart.Snapshot(nil), h.snapshots...),
		cursor:       h.cursor,
		maxSnapshots: h.maxSnapshots,
	}
}
