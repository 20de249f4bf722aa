package commands

import (
	"context"
	"fmt"

	"fornello/internal/core/domain/model/user"
	"fornello/internal/core/ports"
	"fornello/internal/pkg/errs"
)

// RegisterUserCommandHandler creates user accounts.
// The email must be unused; the password is bcrypt-hashed before persisting.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
}

// NewRegisterUserCommandHandler creates a handler for user registration.
func NewRegisterUserCommandHandler(
	uowFactory UserUoWFactory,
	hasher ports.PasswordHasher,
) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration command.
// Returns a ConflictError when the email is already registered.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	aggregate, err := user.NewUser(cmd.UserID(), cmd.Email(), passwordHash, []user.Role{cmd.Role()})
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	taken, err := userRepo.ExistsByEmail(ctx, cmd.Email())
	if err != nil {
		return err
	}
	if taken {
		return errs.NewConflictError(fmt.Sprintf("email already registered: %s", cmd.Email()))
	}

	if err = userRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
