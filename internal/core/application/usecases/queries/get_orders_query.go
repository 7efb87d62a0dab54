package queries

import (
	"errors"

	"entregas/internal/core/domain/model/order"
	"entregas/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery or NewGetOrdersByStatusQuery constructor",
)

// GetOrdersQuery lists orders, optionally restricted to one status.
//
// Example:
//
//	query, err := queries.NewGetOrdersByStatusQuery(order.Pending)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery lists every order, newest invoice first.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetOrdersByStatusQuery lists orders in one status. Pending orders come oldest
// invoice first, since that is the dispatch queue.
func NewGetOrdersByStatusQuery(status order.Status) (GetOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	return GetOrdersQuery{status: &status, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns nil when the query is not filtered.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}
