package queries

import (
	"errors"

	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/pkg/guard"
)

// ErrGetUserByIDQueryIsNotConstructed is returned when the query was not
// created via its constructor.
var ErrGetUserByIDQueryIsNotConstructed = errors.New(
	"GetUserByIDQuery must be created via NewGetUserByIDQuery constructor",
)

// GetUserByIDQuery retrieves one user account.
type GetUserByIDQuery struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetUserByIDQuery creates a query for the user with the given identifier.
func NewGetUserByIDQuery(userID kernel.UUID) (GetUserByIDQuery, error) {
	query := GetUserByIDQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setUserID(userID); err != nil {
		return GetUserByIDQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetUserByIDQueryIsNotConstructed)
}

// UserID returns the identifier of the requested user.
func (q GetUserByIDQuery) UserID() kernel.UUID {
	return q.userID
}

func (q *GetUserByIDQuery) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	q.userID = userID
	return nil
}
