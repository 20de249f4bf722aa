package commands

import (
	"context"

	"fornello/internal/core/ports"
	"fornello/internal/pkg/errs"
)

// LoginUserCommandHandler verifies credentials and issues a bearer token.
// An unknown email and a wrong password produce the same error so login
// attempts cannot probe which emails are registered.
type LoginUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenProvider
}

// NewLoginUserCommandHandler creates a handler for login operations.
func NewLoginUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenProvider,
) LoginUserCommandHandler {
	return LoginUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
	}
}

// Handle checks the password against the stored hash and returns a signed
// token for the account's email.
func (h *LoginUserCommandHandler) Handle(ctx context.Context, cmd LoginUserCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	account, err := uow.UserRepository().GetByEmail(ctx, cmd.Email())
	if err != nil {
		return "", errs.NewUnauthorizedErrorWithCause("invalid credentials", err)
	}

	if err = h.hasher.Compare(account.PasswordHash(), cmd.Password()); err != nil {
		return "", errs.NewUnauthorizedErrorWithCause("invalid credentials", err)
	}

	token, err := h.tokens.Sign(account.Email())
	if err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return token, nil
}
