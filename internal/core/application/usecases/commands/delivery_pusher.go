package commands

import (
	"context"

	"github.com/facebookgo/clock"

	"entregas/internal/core/domain/model/order"
	"entregas/internal/core/ports"
	"entregas/internal/pkg/errs"
)

// deliveryPusher tells the invoicing system about one delivered order and, once it
// acknowledged, records the sync in a transaction of its own.
type deliveryPusher struct {
	invoicing ports.InvoicingSystem
	newUoW    func() OrderUoW
	clock     clock.Clock
}

// push returns the order as stored after the sync was recorded.
// A failed push leaves the order untouched and awaiting sync.
func (p deliveryPusher) push(ctx context.Context, o *order.Order) (*order.Order, error) {
	d := o.Delivery()
	if d == nil {
		return nil, errs.NewStateIsInvalidError(o.Status().String(), "push delivery confirmation")
	}

	err := p.invoicing.PushDeliveryConfirmation(ctx, ports.DeliveryConfirmation{
		InvoiceNumber:    o.InvoiceNumber(),
		ReceiverDocument: d.ReceiverDocument,
		DeliveredAt:      d.DeliveredAt,
	})
	if err != nil {
		return nil, err
	}

	return p.markSynced(ctx, o)
}

func (p deliveryPusher) markSynced(ctx context.Context, pushed *order.Order) (*order.Order, error) {
	uow := p.newUoW()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.GetForUpdate(ctx, pushed.ID())
	if err != nil {
		return nil, err
	}

	if err = o.MarkSynced(p.clock.Now().UTC()); err != nil {
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
