// Package ports declares what the application core needs from the outside world:
// persistence, the external invoicing system and signature storage.
package ports

import (
	"context"

	"entregas/internal/core/domain/model/kernel"
	"entregas/internal/core/domain/model/order"
)

// OrderCandidate is the data a pull yields for one pending invoice.
type OrderCandidate = order.Invoice

// OrderRepository persists order aggregates. Lookups report a missing row as
// errs.ObjectNotFoundError.
type OrderRepository interface {
	// UpsertPending inserts a Pending order for the candidate unless one already exists
	// for its invoice number. An existing row is never overwritten, whatever its state;
	// it is returned with created == false.
	UpsertPending(ctx context.Context, candidate OrderCandidate) (*order.Order, bool, error)

	// Update writes a transition validated by the aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate locks the row until the surrounding transaction ends.
	// Outside a transaction it behaves like Get.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	FindByInvoiceNumber(ctx context.Context, number kernel.InvoiceNumber) (*order.Order, error)

	// ListByState returns orders in the given state; Pending ones oldest invoice first,
	// the rest newest invoice first. The HTTP listings read through the queries
	// package instead and must keep this same order.
	ListByState(ctx context.Context, status order.Status) ([]*order.Order, error)

	// ListByBranch returns the branch's orders in any of statuses, by assignment time,
	// matching GetBranchOrdersQueryHandler.
	ListByBranch(ctx context.Context, branchID int64, statuses ...order.Status) ([]*order.Order, error)

	// ListAwaitingSync returns Delivered orders not yet acknowledged upstream, oldest delivery first.
	ListAwaitingSync(ctx context.Context) ([]*order.Order, error)
}
