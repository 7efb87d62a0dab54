package commands

import (
	"context"

	"entregas/internal/core/domain/model/branch"
)

type CreateBranchCommandHandler struct {
	uowFactory BranchUoWFactory
}

func NewCreateBranchCommandHandler(uowFactory BranchUoWFactory) CreateBranchCommandHandler {
	return CreateBranchCommandHandler{uowFactory: uowFactory}
}

func (h CreateBranchCommandHandler) Handle(ctx context.Context, cmd CreateBranchCommand) (*branch.Branch, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	b, err := branch.NewBranch(cmd.Name(), cmd.Contact())
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

	stored, err := uow.BranchRepository().Add(ctx, b)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return stored, nil
}
