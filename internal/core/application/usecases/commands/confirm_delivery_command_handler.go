package commands

import (
	"context"
	"log/slog"

	"github.com/facebookgo/clock"

	"entregas/internal/core/domain/model/order"
	"entregas/internal/core/domain/services"
	"entregas/internal/core/ports"
)

// ConfirmDeliveryResult reports the delivered order and whether the invoicing system
// already acknowledged it.
type ConfirmDeliveryResult struct {
	Order  *order.Order
	Synced bool
}

type ConfirmDeliveryCommandHandler struct {
	uowFactory UoWFactory
	clock      clock.Clock
	dispatcher services.OrderDispatcher
	pusher     deliveryPusher
	logger     *slog.Logger
}

func NewConfirmDeliveryCommandHandler(
	uowFactory UoWFactory,
	invoicing ports.InvoicingSystem,
	clk clock.Clock,
	logger *slog.Logger,
) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
		clock:      clk,
		dispatcher: services.NewOrderDispatcher(),
		pusher: deliveryPusher{
			invoicing: invoicing,
			newUoW:    func() OrderUoW { return uowFactory.Create() },
			clock:     clk,
		},
		logger: logger.With("component", "confirm-delivery"),
	}
}

// Handle commits the delivery first and pushes it afterwards. A push failure is logged
// and the order stays Delivered, awaiting the next synchronization cycle.
func (h ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) (ConfirmDeliveryResult, error) {
	if err := cmd.Validate(); err != nil {
		return ConfirmDeliveryResult{}, err
	}

	o, err := h.deliver(ctx, cmd)
	if err != nil {
		return ConfirmDeliveryResult{}, err
	}

	synced, err := h.pusher.push(ctx, o)
	if err != nil {
		h.logger.WarnContext(ctx, "delivery confirmation not pushed, will retry on next sync",
			"invoice", o.InvoiceNumber().String(),
			"error", err,
		)
		return ConfirmDeliveryResult{Order: o}, nil
	}

	return ConfirmDeliveryResult{Order: synced, Synced: true}, nil
}

func (h ConfirmDeliveryCommandHandler) deliver(ctx context.Context, cmd ConfirmDeliveryCommand) (*order.Order, error) {
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

	deliverer, err := uow.UserRepository().Get(ctx, cmd.DelivererID())
	if err != nil {
		return nil, err
	}

	if err = h.dispatcher.AuthorizeDelivery(o, deliverer); err != nil {
		return nil, err
	}

	err = o.ConfirmDelivery(order.Delivery{
		ReceiverDocument: cmd.ReceiverDocument(),
		DelivererID:      deliverer.ID(),
		SignatureRef:     cmd.SignatureRef(),
		Notes:            cmd.Notes(),
		DeliveredAt:      h.clock.Now().UTC(),
	})
	if err != nil {
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
