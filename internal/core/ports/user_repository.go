package ports

import (
	"context"

	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user aggregate.
	Add(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user aggregate by its unique identifier.
	// Returns an ObjectNotFoundError if no such user exists.
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// GetByEmail retrieves a user aggregate by its email address.
	// Returns an ObjectNotFoundError if no such user exists.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// ExistsByEmail reports whether a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Delete removes a user.
	// Returns an ObjectNotFoundError if no such user exists.
	Delete(ctx context.Context, id kernel.UUID) error
}
