package user

import (
	"fmt"

	"entregas/internal/pkg/errs"
)

// Role gates what a user may do over HTTP.
type Role string

const (
	Admin    Role = "ADMIN"
	Operator Role = "OPERATOR"
	// BranchStaff users work at one branch and only see its orders.
	BranchStaff Role = "BRANCH"
)

func ParseRole(name string) (Role, error) {
	r := Role(name)
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

func (r Role) Validate() error {
	switch r {
	case Admin, Operator, BranchStaff:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}
