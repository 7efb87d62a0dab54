package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"entregas/internal/core/application/usecases/commands"
	"entregas/internal/core/domain/model/branch"
	"entregas/internal/pkg/errs"
)

func TestCreateBranchCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	contact := branch.Contact{Address: "San Martin 50", Locality: "Rosario", Email: "centro@example.com"}
	cmd, err := commands.NewCreateBranchCommand("  Sucursal Centro ", contact)
	require.NoError(t, err)

	stored := restoredBranch(t, 5, true)
	repo := new(MockBranchRepository)
	uow := new(MockUoW)
	factory := new(MockBranchUoWFactory)
	factory.On("Create").Return(uow).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("BranchRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(b *branch.Branch) bool {
			return b.Name() == "Sucursal Centro" && b.IsActive() && b.Contact() == contact
		})).Return(stored, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	got, err := commands.NewCreateBranchCommandHandler(factory).Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID())
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestCreateBranchCommandHandler_Handle_InvalidEmail(t *testing.T) {
	cmd, err := commands.NewCreateBranchCommand("Sucursal Norte", branch.Contact{Email: "not-an-email"})
	require.NoError(t, err)
	factory := new(MockBranchUoWFactory)

	_, err = commands.NewCreateBranchCommandHandler(factory).Handle(t.Context(), cmd)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateBranchCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateBranchCommand("Sucursal Sur", branch.Contact{})

	repo := new(MockBranchRepository)
	uow := new(MockUoW)
	factory := new(MockBranchUoWFactory)
	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("BranchRepository").Return(repo).Once()
	repo.On("Add", ctx, mock.Anything).Return(nil, errors.New("insert failed")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	_, err := commands.NewCreateBranchCommandHandler(factory).Handle(ctx, cmd)
	assert.EqualError(t, err, "insert failed")
	uow.AssertExpectations(t)
}

func TestNewCreateBranchCommand_NameRequired(t *testing.T) {
	_, err := commands.NewCreateBranchCommand("   ", branch.Contact{})
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}
