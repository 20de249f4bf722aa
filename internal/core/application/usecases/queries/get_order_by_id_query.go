package queries

import (
	"errors"

	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/core/domain/services"
	"fornello/internal/pkg/guard"
)

// ErrGetOrderByIDQueryIsNotConstructed is returned when the query was not
// created via its constructor.
var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor",
)

// GetOrderByIDQuery retrieves one order if the caller's scope covers it.
type GetOrderByIDQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	scope   services.OrderScope

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a scoped single-order query.
func NewGetOrderByIDQuery(orderID kernel.UUID, scope services.OrderScope) (GetOrderByIDQuery, error) {
	query := GetOrderByIDQuery{
		scope: scope,
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderByIDQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderByIDQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Scope returns the caller's read scope.
func (q GetOrderByIDQuery) Scope() services.OrderScope {
	return q.scope
}

func (q *GetOrderByIDQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}
