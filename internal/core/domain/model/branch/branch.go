// Package branch models the branch offices ("sucursales") that orders are dispatched to.
package branch

import (
	"errors"
	"net/mail"
	"strings"

	"entregas/internal/pkg/errs"
	"entregas/internal/pkg/guard"
)

var ErrBranchIsNotConstructed = errors.New("Branch must be created via NewBranch or RestoreBranch")

// Contact groups the descriptive fields of a branch.
type Contact struct {
	Address    string
	Locality   string
	PostalCode string
	Phone      string
	Email      string
}

// Snapshot is the persisted state of a branch.
type Snapshot struct {
	ID      int64
	Name    string
	Contact Contact
	Active  bool
}

// Branch is a dispatch destination. Only active branches accept new orders.
// The id is assigned by the store, so a freshly built branch has ID() == 0 until persisted.
type Branch struct {
	id      int64
	name    string
	contact Contact
	active  bool

	guard guard.ConstructorGuard
}

// NewBranch creates an active, not yet persisted branch.
func NewBranch(name string, contact Contact) (*Branch, error) {
	name = strings.TrimSpace(name)
	if err := validate(name, contact); err != nil {
		return nil, err
	}

	return &Branch{
		name:    name,
		contact: contact,
		active:  true,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func RestoreBranch(s Snapshot) (*Branch, error) {
	if s.ID <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if err := validate(s.Name, s.Contact); err != nil {
		return nil, err
	}

	return &Branch{
		id:      s.ID,
		name:    s.Name,
		contact: s.Contact,
		active:  s.Active,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func validate(name string, contact Contact) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if contact.Email != "" {
		if _, err := mail.ParseAddress(contact.Email); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("email", err)
		}
	}
	return nil
}

func (b *Branch) Validate() error {
	if b == nil {
		return ErrBranchIsNotConstructed
	}
	return b.guard.Validate(ErrBranchIsNotConstructed)
}

func (b *Branch) ID() int64        { return b.id }
func (b *Branch) Name() string     { return b.name }
func (b *Branch) Contact() Contact { return b.contact }
func (b *Branch) IsActive() bool   { return b.active }

// ValidateAcceptsOrders fails for inactive branches.
func (b *Branch) ValidateAcceptsOrders() error {
	if !b.active {
		return errs.NewValueIsInvalidErrorWithCause("branchId", errors.New("branch "+b.name+" is inactive"))
	}
	return nil
}

func (b *Branch) Snapshot() Snapshot {
	return Snapshot{
		ID:      b.id,
		Name:    b.name,
		Contact: b.contact,
		Active:  b.active,
	}
}
