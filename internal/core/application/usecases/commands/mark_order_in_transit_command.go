package commands

import (
	"errors"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/pkg/guard"
)

var ErrMarkOrderInTransitCommandIsNotConstructed = errors.New(
	"MarkOrderInTransitCommand must be created via NewMarkOrderInTransitCommand constructor",
)

type MarkOrderInTransitCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkOrderInTransitCommand(orderID kernel.UUID) (MarkOrderInTransitCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkOrderInTransitCommand{}, err
	}

	return MarkOrderInTransitCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c MarkOrderInTransitCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderInTransitCommandIsNotConstructed)
}

func (c MarkOrderInTransitCommand) OrderID() kernel.UUID {
	return c.orderID
}
