package ports

import (
	"context"

	"entregas/internal/core/domain/model/branch"
)

type BranchRepository interface {
	// Add stores a new branch and returns it with its assigned id.
	Add(ctx context.Context, b *branch.Branch) (*branch.Branch, error)
	Get(ctx context.Context, id int64) (*branch.Branch, error)
	List(ctx context.Context) ([]*branch.Branch, error)
}
