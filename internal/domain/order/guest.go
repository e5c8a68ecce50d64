package order

import (
	"strings"

	"perfume-order-api/internal/domain/customer"

	"github.com/samber/lo"
)

// GuestAddress is the structured Costa Rican shipping address a guest types in.
type GuestAddress struct {
	Province     string
	Canton       string
	District     string
	Neighborhood string
	Details      string
	Reference    string
}

// Format flattens the address: "province, canton, district, neighborhood, details. Ref: reference",
// skipping empty parts.
func (a GuestAddress) Format() string {
	parts := lo.Filter([]string{
		strings.TrimSpace(a.Province),
		strings.TrimSpace(a.Canton),
		strings.TrimSpace(a.District),
		strings.TrimSpace(a.Neighborhood),
		strings.TrimSpace(a.Details),
	}, func(s string, _ int) bool { return s != "" })

	out := strings.Join(parts, ", ")
	if ref := strings.TrimSpace(a.Reference); ref != "" {
		out += ". Ref: " + ref
	}
	return out
}

func (a GuestAddress) hasMinimum() bool {
	return strings.TrimSpace(a.Province) != "" &&
		strings.TrimSpace(a.Canton) != "" &&
		strings.TrimSpace(a.District) != ""
}

type GuestInfo struct {
	Email   string
	Name    string
	Address *GuestAddress
}

func (g GuestInfo) Validate() error {
	if strings.TrimSpace(g.Email) == "" || strings.TrimSpace(g.Name) == "" || g.Address == nil || !g.Address.hasMinimum() {
		return ErrIncompleteGuestInfo
	}
	if _, err := customer.NewEmail(g.Email); err != nil {
		return err
	}
	return nil
}

// GuestContact is what a guest order keeps instead of a customer and address reference.
type GuestContact struct {
	Email   string
	Name    string
	Address string
}
