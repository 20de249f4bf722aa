package commands

import (
	"errors"

	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/pkg/guard"
)

// ErrDeleteUserCommandIsNotConstructed is returned when the command was not
// created via its constructor.
var ErrDeleteUserCommandIsNotConstructed = errors.New(
	"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
)

// DeleteUserCommand represents a request to remove a user account.
type DeleteUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteUserCommand creates a command to delete the given user.
func NewDeleteUserCommand(userID kernel.UUID) (DeleteUserCommand, error) {
	deleteCommand := DeleteUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deleteCommand.setUserID(userID); err != nil {
		return DeleteUserCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

// UserID returns the identifier of the user to delete.
func (c DeleteUserCommand) UserID() kernel.UUID {
	return c.userID
}

func (c *DeleteUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
