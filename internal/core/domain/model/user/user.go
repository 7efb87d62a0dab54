// Package user models the people who operate the system: administrators, dispatch
// operators and branch staff.
package user

import (
	"errors"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"entregas/internal/pkg/errs"
	"entregas/internal/pkg/guard"
)

const MinPasswordLength = 6

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

type Snapshot struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	BranchID     *int64
	Active       bool
}

// User is an account allowed to call the API.
//
// Invariants:
//   - email is stored lower-cased and is the login key
//   - BRANCH users are bound to exactly one branch
type User struct {
	id           int64
	name         string
	email        string
	passwordHash string
	role         Role
	branchID     *int64
	active       bool

	guard guard.ConstructorGuard
}

// NewUser hashes the plain password with bcrypt and returns an active, not yet persisted user.
func NewUser(name, email, password string, role Role, branchID *int64) (*User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)

	var passwordErr error
	if len(password) < MinPasswordLength {
		passwordErr = errs.NewValueIsInvalidErrorWithCause("password", errors.New("password is too short"))
	}
	if err := errors.Join(validate(name, email, role, branchID), passwordErr); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{
		name:         name,
		email:        email,
		passwordHash: string(hash),
		role:         role,
		branchID:     branchID,
		active:       true,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func RestoreUser(s Snapshot) (*User, error) {
	var idErr, hashErr error
	if s.ID <= 0 {
		idErr = errs.NewValueIsRequiredError("id")
	}
	if s.PasswordHash == "" {
		hashErr = errs.NewValueIsRequiredError("passwordHash")
	}
	if err := errors.Join(idErr, hashErr, validate(s.Name, s.Email, s.Role, s.BranchID)); err != nil {
		return nil, err
	}

	return &User{
		id:           s.ID,
		name:         s.Name,
		email:        s.Email,
		passwordHash: s.PasswordHash,
		role:         s.Role,
		branchID:     s.BranchID,
		active:       s.Active,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func validate(name, email string, role Role, branchID *int64) error {
	var nameErr, emailErr, branchErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if email == "" {
		emailErr = errs.NewValueIsRequiredError("email")
	} else if _, err := mail.ParseAddress(email); err != nil {
		emailErr = errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	if role == BranchStaff && (branchID == nil || *branchID <= 0) {
		branchErr = errs.NewValueIsRequiredErrorWithCause("branchId", errors.New("branch users must belong to a branch"))
	}
	return errors.Join(nameErr, emailErr, role.Validate(), branchErr)
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() int64        { return u.id }
func (u *User) Name() string     { return u.name }
func (u *User) Email() string    { return u.email }
func (u *User) Role() Role       { return u.role }
func (u *User) BranchID() *int64 { return u.branchID }
func (u *User) IsActive() bool   { return u.active }

// CheckPassword reports whether plain matches the stored bcrypt hash.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(plain)) == nil
}

// CanServeBranch reports whether the user may act on orders of the given branch.
// Only branch staff are restricted.
func (u *User) CanServeBranch(branchID int64) bool {
	if u.role != BranchStaff {
		return true
	}
	return u.branchID != nil && *u.branchID == branchID
}

func (u *User) Snapshot() Snapshot {
	return Snapshot{
		ID:           u.id,
		Name:         u.name,
		Email:        u.email,
		PasswordHash: u.passwordHash,
		Role:         u.role,
		BranchID:     u.branchID,
		Active:       u.active,
	}
}

// NormalizeEmail is the canonical form used for storage and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
