package commands

import (
	"errors"
	"strings"

	"entregas/internal/core/domain/model/user"
	"entregas/internal/pkg/errs"
	"entregas/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand registers an account. The password is carried in plain text until
// the handler hashes it.
type CreateUserCommand struct {
	name     string
	email    string
	password string
	role     user.Role
	branchID *int64

	guard guard.ConstructorGuard
}

func NewCreateUserCommand(name, email, password string, role user.Role, branchID *int64) (CreateUserCommand, error) {
	var nameErr, emailErr, passwordErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if strings.TrimSpace(email) == "" {
		emailErr = errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}
	if err := errors.Join(nameErr, emailErr, passwordErr, role.Validate()); err != nil {
		return CreateUserCommand{}, err
	}

	return CreateUserCommand{
		name:     name,
		email:    email,
		password: password,
		role:     role,
		branchID: branchID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

func (c CreateUserCommand) Name() string     { return c.name }
func (c CreateUserCommand) Email() string    { return c.email }
func (c CreateUserCommand) Password() string { return c.password }
func (c CreateUserCommand) Role() user.Role  { return c.role }
func (c CreateUserCommand) BranchID() *int64 { return c.branchID }
