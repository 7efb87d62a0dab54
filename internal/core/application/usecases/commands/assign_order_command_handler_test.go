package commands_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"entregas/internal/core/application/usecases/commands"
	"entregas/internal/core/domain/model/order"
	"entregas/internal/core/domain/model/user"
	"entregas/internal/pkg/errs"
)

type assignFixture struct {
	orders   *MockOrderRepository
	branches *MockBranchRepository
	users    *MockUserRepository
	uow      *MockUoW
	factory  *MockUoWFactory
}

func newAssignFixture() assignFixture {
	f := assignFixture{
		orders:   new(MockOrderRepository),
		branches: new(MockBranchRepository),
		users:    new(MockUserRepository),
		uow:      new(MockUoW),
		factory:  new(MockUoWFactory),
	}
	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("OrderRepository").Return(f.orders).Maybe()
	f.uow.On("BranchRepository").Return(f.branches).Maybe()
	f.uow.On("UserRepository").Return(f.users).Maybe()
	return f
}

func (f assignFixture) assertExpectations(t *testing.T) {
	f.orders.AssertExpectations(t)
	f.branches.AssertExpectations(t)
	f.users.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.factory.AssertExpectations(t)
}

func TestAssignOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := pendingOrder(t, "A-0001-00000123")
	cmd, _ := commands.NewAssignOrderCommand(o.ID(), 3, 1)

	f := newAssignFixture()
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		f.branches.On("Get", ctx, int64(3)).Return(restoredBranch(t, 3, true), nil).Once(),
		f.users.On("Get", ctx, int64(1)).Return(restoredUser(t, 1, user.Operator, nil), nil).Once(),
		f.orders.On("Update", ctx, o).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewAssignOrderCommandHandler(f.factory, mockClock())
	got, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.Assigned, got.Status())
	require.NotNil(t, got.Assignment())
	assert.Equal(t, int64(3), got.Assignment().BranchID)
	assert.Equal(t, int64(1), got.Assignment().AssignerID)
	assert.Equal(t, now, got.Assignment().AssignedAt)
	assert.Equal(t, time.UTC, got.Assignment().AssignedAt.Location())
	f.assertExpectations(t)
}

func TestAssignOrderCommandHandler_Handle_NotConstructed(t *testing.T) {
	h := commands.NewAssignOrderCommandHandler(new(MockUoWFactory), mockClock())
	_, err := h.Handle(t.Context(), commands.AssignOrderCommand{})
	assert.ErrorIs(t, err, commands.ErrAssignOrderCommandIsNotConstructed)
}

func TestAssignOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	o := pendingOrder(t, "A-0001-00000123")
	cmd, _ := commands.NewAssignOrderCommand(o.ID(), 3, 1)

	f := newAssignFixture()
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.orders.On("GetForUpdate", ctx, o.ID()).Return(nil, errs.NewObjectNotFoundError("order", o.ID())).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewAssignOrderCommandHandler(f.factory, mockClock())
	_, err := h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	f.assertExpectations(t)
}

func TestAssignOrderCommandHandler_Handle_BranchNotFound(t *testing.T) {
	ctx := t.Context()
	o := pendingOrder(t, "A-0001-00000123")
	cmd, _ := commands.NewAssignOrderCommand(o.ID(), 99, 1)

	f := newAssignFixture()
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		f.branches.On("Get", ctx, int64(99)).Return(nil, errs.NewObjectNotFoundError("branch", 99)).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewAssignOrderCommandHandler(f.factory, mockClock())
	_, err := h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, order.Pending, o.Status())
	f.assertExpectations(t)
}

func TestAssignOrderCommandHandler_Handle_AlreadyAssigned(t *testing.T) {
	ctx := t.Context()
	o := assignedOrder(t, "A-0001-00000123", 2)
	cmd, _ := commands.NewAssignOrderCommand(o.ID(), 3, 1)

	f := newAssignFixture()
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		f.branches.On("Get", ctx, int64(3)).Return(restoredBranch(t, 3, true), nil).Once(),
		f.users.On("Get", ctx, int64(1)).Return(restoredUser(t, 1, user.Operator, nil), nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewAssignOrderCommandHandler(f.factory, mockClock())
	_, err := h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, errs.ErrStateIsInvalid)
	assert.Equal(t, int64(2), o.Assignment().BranchID)
	f.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.assertExpectations(t)
}

func TestAssignOrderCommandHandler_Handle_InactiveBranch(t *testing.T) {
	ctx := t.Context()
	o := pendingOrder(t, "A-0001-00000123")
	cmd, _ := commands.NewAssignOrderCommand(o.ID(), 3, 1)

	f := newAssignFixture()
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		f.branches.On("Get", ctx, int64(3)).Return(restoredBranch(t, 3, false), nil).Once(),
		f.users.On("Get", ctx, int64(1)).Return(restoredUser(t, 1, user.Admin, nil), nil).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewAssignOrderCommandHandler(f.factory, mockClock())
	_, err := h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, order.Pending, o.Status())
	f.assertExpectations(t)
}

func TestAssignOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	o := pendingOrder(t, "A-0001-00000123")
	cmd, _ := commands.NewAssignOrderCommand(o.ID(), 3, 1)

	f := newAssignFixture()
	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		f.branches.On("Get", ctx, int64(3)).Return(restoredBranch(t, 3, true), nil).Once(),
		f.users.On("Get", ctx, int64(1)).Return(restoredUser(t, 1, user.Operator, nil), nil).Once(),
		f.orders.On("Update", ctx, o).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		f.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewAssignOrderCommandHandler(f.factory, mockClock())
	_, err := h.Handle(ctx, cmd)
	assert.EqualError(t, err, "commit error")
	f.assertExpectations(t)
}
