package queries

import (
	"context"
	"errors"

	"entregas/internal/core/ports"
	"entregas/internal/pkg/errs"
)

type AuthenticateUserQueryHandler struct {
	users ports.UserRepository
}

func NewAuthenticateUserQueryHandler(users ports.UserRepository) AuthenticateUserQueryHandler {
	return AuthenticateUserQueryHandler{users: users}
}

// Handle returns the authenticated user. Unknown emails and wrong passwords both yield
// ErrInvalidCredentials; a correct password on a disabled account yields ErrUserInactive.
func (h AuthenticateUserQueryHandler) Handle(ctx context.Context, query AuthenticateUserQuery) (UserView, error) {
	if err := query.Validate(); err != nil {
		return UserView{}, err
	}

	u, err := h.users.GetByEmail(ctx, query.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return UserView{}, ErrInvalidCredentials
	}
	if err != nil {
		return UserView{}, err
	}

	if !u.CheckPassword(query.Password()) {
		return UserView{}, ErrInvalidCredentials
	}
	if !u.IsActive() {
		return UserView{}, ErrUserInactive
	}

	return UserView{
		ID:       u.ID(),
		Name:     u.Name(),
		Email:    u.Email(),
		Role:     u.Role(),
		BranchID: u.BranchID(),
		Active:   u.IsActive(),
	}, nil
}
