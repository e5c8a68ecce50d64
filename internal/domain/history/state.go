package history

import (
	"perfume-order-api/internal/domain/cart"
	"perfume-order-api/internal/pkg/errs"
)

// State is the serializable form of a History.
type State struct {
	Snapshots [][]cart.Line `json:"snapshots"`
	Cursor    int           `json:"cursor"`
}

func (h *History) State() State {
	snaps := make([][]cart.Line, len(h.snapshots))
	for i, s := range h.snapshots {
		snaps[i] = s.Lines()
	}
	return State{Snapshots: snaps, Cursor: h.cursor}
}

// FromState rebuilds a history, trimming it to maxSnapshots if the cap shrank.
func FromState(st State, maxSnapshots int) (*History, error) {
	if len(st.Snapshots) == 0 {
		if st.Cursor != -1 {
			return nil, errs.Wrapf(ErrInvalidState, "cursor %d on empty history", st.Cursor)
		}
		return New(maxSnapshots), nil
	}
	if st.Cursor < 0 || st.Cursor >= len(st.Snapshots) {
		return nil, errs.Wrapf(ErrInvalidState, "cursor %d out of range [0,%d)", st.Cursor, len(st.Snapshots))
	}

	h := &History{cursor: st.Cursor, maxSnapshots: maxSnapshots}
	h.snapshots = make([]cart.Snapshot, len(st.Snapshots))
	for i, lines := range st.Snapshots {
		h.snapshots[i] = cart.NewSnapshot(lines)
	}

	if maxSnapshots > 0 && len(h.snapshots) > maxSnapshots {
		drop := len(h.snapshots) - maxSnapshots
		if drop > h.cursor {
			drop = h.cursor
		}
		h.snapshots = h.snapshots[drop:]
		h.cursor -= drop
	}
	return h, nil
}
