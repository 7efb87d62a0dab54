package queries

import (
	"errors"

	"entregas/internal/core/domain/model/user"
	"entregas/internal/pkg/guard"
)

var ErrGetUsersQueryIsNotConstructed = errors.New(
	"GetUsersQuery must be created via NewGetUsersQuery constructor",
)

type GetUsersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetUsersQuery() GetUsersQuery {
	return GetUsersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetUsersQueryIsNotConstructed)
}

// UserView never carries the password hash.
type UserView struct {
	ID       int64
	Name     string
	Email    string
	Role     user.Role
	BranchID *int64
	Active   bool
}
