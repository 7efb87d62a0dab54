package commands

import (
	"context"

	"entregas/internal/core/domain/model/user"
)

type CreateUserCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateUserCommandHandler(uowFactory UoWFactory) CreateUserCommandHandler {
	return CreateUserCommandHandler{uowFactory: uowFactory}
}

// Handle hashes the password, checks the referenced branch exists and stores the user.
func (h CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	u, err := user.NewUser(cmd.Name(), cmd.Email(), cmd.Password(), cmd.Role(), cmd.BranchID())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if branchID := cmd.BranchID(); branchID != nil {
		if _, err = uow.BranchRepository().Get(ctx, *branchID); err != nil {
			return nil, err
		}
	}

	stored, err := uow.UserRepository().Add(ctx, u)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}
