package queries

import (
	"errors"
	"strings"

	"entregas/internal/pkg/errs"
	"entregas/internal/pkg/guard"
)

var (
	ErrAuthenticateUserQueryIsNotConstructed = errors.New(
		"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
	)

	// ErrInvalidCredentials hides whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserInactive is returned for valid credentials of a disabled account.
	ErrUserInactive = errors.New("user is inactive")
)

// AuthenticateUserQuery checks an email and password pair.
type AuthenticateUserQuery struct {
	email    string
	password string

	guard guard.ConstructorGuard
}

func NewAuthenticateUserQuery(email, password string) (AuthenticateUserQuery, error) {
	var emailErr, passwordErr error
	if strings.TrimSpace(email) == "" {
		emailErr = errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}
	if err := errors.Join(emailErr, passwordErr); err != nil {
		return AuthenticateUserQuery{}, err
	}

	return AuthenticateUserQuery{email: email, password: password, guard: guard.NewConstructorGuard()}, nil
}

func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

func (q AuthenticateUserQuery) Email() string    { return q.email }
func (q AuthenticateUserQuery) Password() string { return q.password }
