// Package commands holds the write use cases. Every handler validates its command,
// runs inside one unit of work and leaves the domain rules to the aggregates.
package commands

import (
	"context"

	"entregas/internal/core/ports"
)

type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	BranchRepoFactory interface {
		BranchRepository() ports.BranchRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// OrderUoW is enough for commands that only touch orders.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// BranchUoW is used by branch administration.
	BranchUoW interface {
		TxManager
		BranchRepoFactory
	}

	BranchUoWFactory interface {
		Create() BranchUoW
	}

	// UoW spans every repository, for commands that read users or branches while
	// changing orders.
	//
	// Example:
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	//   b, err := uow.BranchRepository().Get(ctx, branchID)
	//   ...
	//   return uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		BranchRepoFactory
		UserRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
