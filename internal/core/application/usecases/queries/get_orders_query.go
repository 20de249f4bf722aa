package queries

import (
	"errors"

	"fornello/internal/core/domain/model/order"
	"fornello/internal/core/domain/services"
	"fornello/internal/pkg/guard"
)

// ErrGetOrdersQueryIsNotConstructed is returned when the query was not
// created via its constructor.
var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders visible to the caller, newest first.
// The scope comes from the access policy: customers only ever see their own
// orders. An optional status narrows the listing.
//
// Example:
//
//	scope := policy.ScopeFor(callerID, roles)
//	query, err := NewGetOrdersQuery(scope, nil)
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	scope  services.OrderScope
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates an order listing query for the given scope.
// A nil status lists every visible order.
func NewGetOrdersQuery(scope services.OrderScope, status *order.Status) (GetOrdersQuery, error) {
	query := GetOrdersQuery{
		scope:  scope,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}

	if status != nil {
		if err := status.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Scope returns the caller's read scope.
func (q GetOrdersQuery) Scope() services.OrderScope {
	return q.scope
}

// Status returns the status filter, or nil for all statuses.
func (q GetOrdersQuery) Status() *order.Status {
	return q.status
}
