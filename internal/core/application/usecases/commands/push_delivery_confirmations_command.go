package commands

import (
	"errors"

	"entregas/internal/pkg/guard"
)

var ErrPushDeliveryConfirmationsCommandIsNotConstructed = errors.New(
	"PushDeliveryConfirmationsCommand must be created via NewPushDeliveryConfirmationsCommand constructor",
)

// PushDeliveryConfirmationsCommand pushes every delivered order the invoicing system
// has not acknowledged yet.
type PushDeliveryConfirmationsCommand struct {
	guard guard.ConstructorGuard
}

func NewPushDeliveryConfirmationsCommand() (PushDeliveryConfirmationsCommand, error) {
	return PushDeliveryConfirmationsCommand{guard: guard.NewConstructorGuard()}, nil
}

func (c PushDeliveryConfirmationsCommand) Validate() error {
	return c.guard.Validate(ErrPushDeliveryConfirmationsCommandIsNotConstructed)
}
