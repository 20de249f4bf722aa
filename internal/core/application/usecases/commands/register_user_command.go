package commands

import (
	"errors"
	"strings"

	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/core/domain/model/user"
	"fornello/internal/pkg/errs"
	"fornello/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)
	ErrPasswordIsTooShort = errors.New("password must be at least 8 characters")
)

const minPasswordLength = 8

// RegisterUserCommand represents a request to create a user account.
// Used both for self-service customer sign-up and for seeding the
// administrator account at startup; the role distinguishes the two.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	email    string
	password string
	role     user.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new user.
// The password travels in plaintext only as far as the handler, which hashes
// it before anything is persisted.
func NewRegisterUserCommand(
	userID kernel.UUID,
	email string,
	password string,
	role user.Role,
) (RegisterUserCommand, error) {
	userCommand := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		userCommand.setUserID(userID),
		userCommand.setEmail(email),
		userCommand.setPassword(password),
		userCommand.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return userCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the pre-generated identifier for the new user.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Email returns the account email.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the plaintext password.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Role returns the role the account is created with.
func (c RegisterUserCommand) Role() user.Role {
	return c.role
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(password) < minPasswordLength {
		return ErrPasswordIsTooShort
	}

	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
