package commands

import (
	"context"

	"fornello/internal/pkg/errs"
)

// DeleteUserCommandHandler removes a user account.
// Deletion is rejected while any order still belongs to the user.
type DeleteUserCommandHandler struct {
	uowFactory UserOrderUoWFactory
}

// NewDeleteUserCommandHandler creates a handler for user deletion.
func NewDeleteUserCommandHandler(uowFactory UserOrderUoWFactory) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle checks the order reference guard and deletes the user.
func (h *DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	referenced, err := uow.OrderRepository().ExistsForUser(ctx, cmd.UserID())
	if err != nil {
		return err
	}
	if referenced {
		return errs.NewConflictError("user is associated with existing orders")
	}

	if err = uow.UserRepository().Delete(ctx, cmd.UserID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
