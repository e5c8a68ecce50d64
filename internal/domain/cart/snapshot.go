package cart

import "github.com/shopspring/decimal"

// Snapshot is an immutable copy of a cart's lines at one instant.
type Snapshot struct {
	lines []Line
}

func NewSnapshot(lines []Line) Snapshot {
	return Snapshot{lines: cloneLines(lines)}
}

func (s Snapshot) Lines() []Line {
	return cloneLines(s.lines)
}

func (s Snapshot) Len() int {
	return len(s.lines)
}

func (s Snapshot) Total() decimal.Decimal {
	return Total(s.lines)
}
