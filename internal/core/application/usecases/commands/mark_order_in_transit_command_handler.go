package commands

import (
	"context"

	"entregas/internal/core/domain/model/order"
)

type MarkOrderInTransitCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewMarkOrderInTransitCommandHandler(uowFactory OrderUoWFactory) MarkOrderInTransitCommandHandler {
	return MarkOrderInTransitCommandHandler{uowFactory: uowFactory}
}

func (h MarkOrderInTransitCommandHandler) Handle(ctx context.Context, cmd MarkOrderInTransitCommand) (*order.Order, error) {
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

	repo := uow.OrderRepository()
	o, err := repo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.MarkInTransit(); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
