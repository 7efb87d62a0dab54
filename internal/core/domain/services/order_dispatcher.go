package services

import (
	"errors"
	"fmt"
	"time"

	"entregas/internal/core/domain/model/branch"
	"entregas/internal/core/domain/model/order"
	"entregas/internal/core/domain/model/user"
)

// ErrBranchMismatch is returned when branch staff act on an order of another branch.
var ErrBranchMismatch = errors.New("user does not belong to the order's branch")

// OrderDispatcher binds pending orders to branches and checks who may close them.
//
// Example usage:
//
//	dispatcher := services.NewOrderDispatcher()
//	if err := dispatcher.Dispatch(o, b, assigner, clock.Now()); err != nil {
//	    return err // state is invalid / branchId is invalid
//	}
type OrderDispatcher struct{}

func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Dispatch assigns o to b on behalf of assigner.
//
// The order state is checked before the branch, so assigning an already assigned order
// to an inactive branch reports the state error.
func (OrderDispatcher) Dispatch(o *order.Order, b *branch.Branch, assigner *user.User, at time.Time) error {
	if err := errors.Join(o.Validate(), b.Validate(), assigner.Validate()); err != nil {
		return err
	}

	if _, err := o.Status().Assign(); err != nil {
		return err
	}

	if err := b.ValidateAcceptsOrders(); err != nil {
		return err
	}

	return o.Assign(b.ID(), assigner.ID(), at)
}

// AuthorizeDelivery checks that deliverer may confirm o.
// Branch staff are limited to orders bound to their own branch.
func (OrderDispatcher) AuthorizeDelivery(o *order.Order, deliverer *user.User) error {
	if err := errors.Join(o.Validate(), deliverer.Validate()); err != nil {
		return err
	}

	a := o.Assignment()
	if a == nil {
		return nil
	}
	if !deliverer.CanServeBranch(a.BranchID) {
		return fmt.Errorf("%w: order %s belongs to branch %d", ErrBranchMismatch, o.InvoiceNumber(), a.BranchID)
	}
	return nil
}
