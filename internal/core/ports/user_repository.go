package ports

import (
	"context"

	"entregas/internal/core/domain/model/user"
)

type UserRepository interface {
	// Add stores a new user and returns it with its assigned id.
	// A duplicate email is reported as errs.ValueIsInvalidError.
	Add(ctx context.Context, u *user.User) (*user.User, error)
	Get(ctx context.Context, id int64) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	List(ctx context.Context) ([]*user.User, error)
}
