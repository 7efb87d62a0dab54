package commands

import (
	"errors"

	"entregas/internal/pkg/guard"
)

var ErrSyncPendingInvoicesCommandIsNotConstructed = errors.New(
	"SyncPendingInvoicesCommand must be created via NewSyncPendingInvoicesCommand constructor",
)

// SyncPendingInvoicesCommand pulls the invoices waiting for delivery and stores the new ones.
type SyncPendingInvoicesCommand struct {
	guard guard.ConstructorGuard
}

func NewSyncPendingInvoicesCommand() (SyncPendingInvoicesCommand, error) {
	return SyncPendingInvoicesCommand{guard: guard.NewConstructorGuard()}, nil
}

func (c SyncPendingInvoicesCommand) Validate() error {
	return c.guard.Validate(ErrSyncPendingInvoicesCommandIsNotConstructed)
}
