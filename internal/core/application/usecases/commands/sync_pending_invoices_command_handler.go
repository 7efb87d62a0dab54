package commands

import (
	"context"

	"entregas/internal/core/domain/model/order"
	"entregas/internal/core/ports"
)

// SyncPendingInvoicesResult holds one order per pulled invoice, whether it was created by
// this pull or already known, and how many were created.
type SyncPendingInvoicesResult struct {
	Orders  []*order.Order
	Created int
}

type SyncPendingInvoicesCommandHandler struct {
	uowFactory OrderUoWFactory
	invoicing  ports.InvoicingSystem
}

func NewSyncPendingInvoicesCommandHandler(
	uowFactory OrderUoWFactory,
	invoicing ports.InvoicingSystem,
) SyncPendingInvoicesCommandHandler {
	return SyncPendingInvoicesCommandHandler{uowFactory: uowFactory, invoicing: invoicing}
}

// Handle stores the whole page in one transaction: either every candidate is upserted
// or nothing is. Existing orders are returned as stored, never overwritten.
func (h SyncPendingInvoicesCommandHandler) Handle(ctx context.Context, cmd SyncPendingInvoicesCommand) (SyncPendingInvoicesResult, error) {
	if err := cmd.Validate(); err != nil {
		return SyncPendingInvoicesResult{}, err
	}

	candidates, err := h.invoicing.PullPendingInvoices(ctx)
	if err != nil {
		return SyncPendingInvoicesResult{}, err
	}
	if len(candidates) == 0 {
		return SyncPendingInvoicesResult{Orders: []*order.Order{}}, nil
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return SyncPendingInvoicesResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	result := SyncPendingInvoicesResult{Orders: make([]*order.Order, 0, len(candidates))}
	for _, candidate := range candidates {
		o, created, err := repo.UpsertPending(ctx, candidate)
		if err != nil {
			return SyncPendingInvoicesResult{}, err
		}
		if created {
			result.Created++
		}
		result.Orders = append(result.Orders, o)
	}

	if err = uow.Commit(ctx); err != nil {
		return SyncPendingInvoicesResult{}, err
	}

	return result, nil
}
