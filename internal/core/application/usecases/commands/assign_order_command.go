package commands

import (
	"errors"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/errs"
	"entregas/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand dispatches a pending order to a branch.
//
// Example:
//
//	cmd, err := commands.NewAssignOrderCommand(orderID, 3, claims.UserID)
//	if err != nil {
//	    return err
//	}
//	o, err := handler.Handle(ctx, cmd)
type AssignOrderCommand struct {
	orderID    kernel.UUID
	branchID   int64
	assignerID int64

	guard guard.ConstructorGuard
}

func NewAssignOrderCommand(orderID kernel.UUID, branchID, assignerID int64) (AssignOrderCommand, error) {
	var branchErr, assignerErr error
	if branchID <= 0 {
		branchErr = errs.NewValueIsRequiredError("branchId")
	}
	if assignerID <= 0 {
		assignerErr = errs.NewValueIsRequiredError("assignerId")
	}
	if err := errors.Join(orderID.Validate(), branchErr, assignerErr); err != nil {
		return AssignOrderCommand{}, err
	}

	return AssignOrderCommand{
		orderID:    orderID,
		branchID:   branchID,
		assignerID: assignerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

func (c AssignOrderCommand) OrderID() kernel.UUID { return c.orderID }
func (c AssignOrderCommand) BranchID() int64      { return c.branchID }
func (c AssignOrderCommand) AssignerID() int64    { return c.assignerID }
