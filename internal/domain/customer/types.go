package customer

import "perfume-order-api/internal/pkg/errs"

var (
	ErrInvalidRole  = errs.Categorize("invalid role", errs.ErrValidation)
	ErrInvalidEmail = errs.Categorize("invalid email format", errs.ErrValidation)
)

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

func AllRoles() []Role {
	return []Role{RoleUser, RoleAdmin}
}
