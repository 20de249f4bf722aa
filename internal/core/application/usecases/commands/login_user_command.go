package commands

import (
	"errors"
	"strings"

	"fornello/internal/pkg/errs"
	"fornello/internal/pkg/guard"
)

// ErrLoginUserCommandIsNotConstructed is returned when the command was not
// created via its constructor.
var ErrLoginUserCommandIsNotConstructed = errors.New(
	"LoginUserCommand must be created via NewLoginUserCommand constructor",
)

// LoginUserCommand represents a credential check and token issue request.
type LoginUserCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginUserCommand creates a login command from raw credentials.
func NewLoginUserCommand(email string, password string) (LoginUserCommand, error) {
	loginCommand := LoginUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loginCommand.setEmail(email),
		loginCommand.setPassword(password),
	); err != nil {
		return LoginUserCommand{}, err
	}

	return loginCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginUserCommand) Validate() error {
	return c.guard.Validate(ErrLoginUserCommandIsNotConstructed)
}

// Email returns the login email.
func (c LoginUserCommand) Email() string {
	return c.email
}

// Password returns the plaintext password to verify.
func (c LoginUserCommand) Password() string {
	return c.password
}

func (c *LoginUserCommand) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *LoginUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}
