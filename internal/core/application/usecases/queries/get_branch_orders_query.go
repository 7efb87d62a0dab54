package queries

import (
	"errors"

	"entregas/internal/pkg/errs"
	"entregas/internal/pkg/guard"
)

var ErrGetBranchOrdersQueryIsNotConstructed = errors.New(
	"GetBranchOrdersQuery must be created via NewGetBranchOrdersQuery constructor",
)

// GetBranchOrdersQuery lists the work queue of one branch: orders assigned to it that
// are not delivered yet.
type GetBranchOrdersQuery struct {
	branchID int64

	guard guard.ConstructorGuard
}

func NewGetBranchOrdersQuery(branchID int64) (GetBranchOrdersQuery, error) {
	if branchID <= 0 {
		return GetBranchOrdersQuery{}, errs.NewValueIsRequiredError("branchId")
	}
	return GetBranchOrdersQuery{branchID: branchID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetBranchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetBranchOrdersQueryIsNotConstructed)
}

func (q GetBranchOrdersQuery) BranchID() int64 {
	return q.branchID
}
