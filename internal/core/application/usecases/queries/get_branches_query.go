package queries

import (
	"errors"

	"entregas/internal/pkg/guard"
)

var ErrGetBranchesQueryIsNotConstructed = errors.New(
	"GetBranchesQuery must be created via NewGetBranchesQuery constructor",
)

type GetBranchesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetBranchesQuery() GetBranchesQuery {
	return GetBranchesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetBranchesQuery) Validate() error {
	return q.guard.Validate(ErrGetBranchesQueryIsNotConstructed)
}

type BranchView struct {
	ID         int64
	Name       string
	Address    string
	Locality   string
	PostalCode string
	Phone      string
	Email      string
	Active     bool
}
