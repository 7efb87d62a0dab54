package commands

import (
	"context"

	"github.com/facebookgo/clock"

	"entregas/internal/core/domain/model/order"
	"entregas/internal/core/domain/services"
)

// AssignOrderCommandHandler binds an order to a branch. It has no external side effect.
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      clock.Clock
	dispatcher services.OrderDispatcher
}

func NewAssignOrderCommandHandler(uowFactory UoWFactory, clk clock.Clock) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
		dispatcher: services.NewOrderDispatcher(),
	}
}

// Handle locks the order row for the whole transaction, so two concurrent assignments
// of one order cannot both succeed.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	b, err := uow.BranchRepository().Get(ctx, cmd.BranchID())
	if err != nil {
		return nil, err
	}

	assigner, err := uow.UserRepository().Get(ctx, cmd.AssignerID())
	if err != nil {
		return nil, err
	}

	if err = h.dispatcher.Dispatch(o, b, assigner, h.clock.Now().UTC()); err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
