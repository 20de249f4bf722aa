package queries

import (
	"errors"

	"fornello/internal/pkg/guard"
)

// ErrGetUsersQueryIsNotConstructed is returned when the query was not
// created via its constructor.
var ErrGetUsersQueryIsNotConstructed = errors.New(
	"GetUsersQuery must be created via NewGetUsersQuery constructor",
)

// GetUsersQuery lists every user account. Admin surface only; the role guard
// sits in the transport layer.
type GetUsersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUsersQuery creates a parameterless user listing query.
func NewGetUsersQuery() GetUsersQuery {
	return GetUsersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetUsersQueryIsNotConstructed)
}
