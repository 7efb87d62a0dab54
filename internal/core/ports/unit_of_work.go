package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one business transaction. Repositories it hands out join the
// transaction started by Begin; before Begin they run statements directly.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit fails when no transaction is active.
	Commit(ctx context.Context) error

	// Rollback is a no-op once the transaction was committed, so it can always be deferred.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	BranchRepository() BranchRepository
	UserRepository() UserRepository
}
