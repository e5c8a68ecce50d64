package cart

import (
	"math"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// MaxQuantity is the largest quantity a single line may hold; it matches the storage column.
const MaxQuantity = math.MaxInt32

// Line is one product entry of a cart.
type Line struct {
	ProductID uuid.UUID       `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart holds a customer's pending lines in insertion order, at most one line per product.
type Cart struct {
	customerID uuid.UUID
	lines      []Line
}

func New(customerID uuid.UUID) *Cart {
	return &Cart{customerID: customerID}
}

// Reconstruct rebuilds a cart from stored lines, rejecting rows that break the cart invariants.
func Reconstruct(customerID uuid.UUID, lines []Line) (*Cart, error) {
	c := New(customerID)
	seen := make(map[uuid.UUID]struct{}, len(lines))
	for _, l := range lines {
		if err := validateLine(l.Quantity, l.UnitPrice); err != nil {
			return nil, err
		}
		if _, dup := seen[l.ProductID]; dup {
			return nil, ErrDuplicateLine
		}
		seen[l.ProductID] = struct{}{}
		c.lines = append(c.lines, l)
	}
	return c, nil
}

func (c *Cart) CustomerID() uuid.UUID {
	return c.customerID
}

// AddLine merges quantity into an existing line for the product or appends a new one.
// Stock is the caller's concern.
func (c *Cart) AddLine(productID uuid.UUID, name string, quantity int, unitPrice decimal.Decimal) error {
	if err := validateLine(quantity, unitPrice); err != nil {
		return err
	}
	if i := c.indexOf(productID); i >= 0 {
		merged, err := MergedQuantity(c.lines[i].Quantity, quantity)
		if err != nil {
			return err
		}
		c.lines[i].Quantity = merged
		return nil
	}
	c.lines = append(c.lines, Line{
		ProductID: productID,
		Name:      name,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	})
	return nil
}

// SetQuantity replaces the quantity of an existing line. Non-positive quantities are
// rejected rather than treated as a removal.
func (c *Cart) SetQuantity(productID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if quantity > MaxQuantity {
		return ErrQuantityTooLarge
	}
	i := c.indexOf(productID)
	if i < 0 {
		return ErrLineNotFound
	}
	c.lines[i].Quantity = quantity
	return nil
}

// RemoveLine is a no-op when the product is absent.
func (c *Cart) RemoveLine(productID uuid.UUID) {
	c.lines = lo.Reject(c.lines, func(l Line, _ int) bool {
		return l.ProductID == productID
	})
}

func (c *Cart) Line(productID uuid.UUID) (Line, bool) {
	return lo.Find(c.lines, func(l Line) bool {
		return l.ProductID == productID
	})
}

func (c *Cart) Total() decimal.Decimal {
	return Total(c.lines)
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	return cloneLines(c.lines)
}

// ItemCount is the number of distinct lines.
func (c *Cart) ItemCount() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Snapshot() Snapshot {
	return Snapshot{lines: cloneLines(c.lines)}
}

// Restore replaces every line with the snapshot's content.
func (c *Cart) Restore(s Snapshot) {
	c.lines = cloneLines(s.lines)
}

// Total sums quantity × unit price over lines.
func Total(lines []Line) decimal.Decimal {
	return lo.Reduce(lines, func(acc decimal.Decimal, l Line, _ int) decimal.Decimal {
		return acc.Add(l.Subtotal())
	}, decimal.Zero)
}

func (c *Cart) indexOf(productID uuid.UUID) int {
	_, i, ok := lo.FindIndexOf(c.lines, func(l Line) bool {
		return l.ProductID == productID
	})
	if !ok {
		return -1
	}
	return i
}

// MergedQuantity is current + added, failing instead of leaving (0, MaxQuantity].
func MergedQuantity(current, added int) (int, error) {
	if added <= 0 {
		return 0, ErrInvalidQuantity
	}
	if added > MaxQuantity || current > MaxQuantity-added {
		return 0, ErrQuantityTooLarge
	}
	return current + added, nil
}

func validateLine(quantity int, unitPrice decimal.Decimal) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if quantity > MaxQuantity {
		return ErrQuantityTooLarge
	}
	if unitPrice.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}

func cloneLines(lines []Line) []Line {
	if len(lines) == 0 {
		return []Line{}
	}
	out := make([]Line, len(lines))
	copy(out, lines)
	return out
}
