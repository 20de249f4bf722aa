package commands

import (
	"context"

	"fornello/internal/pkg/errs"
)

// DeleteProductCommandHandler removes a product from the catalog.
// Deletion is rejected while any order item still references one of the
// product's variations.
type DeleteProductCommandHandler struct {
	uowFactory ProductOrderUoWFactory
}

// NewDeleteProductCommandHandler creates a handler for product deletion.
func NewDeleteProductCommandHandler(uowFactory ProductOrderUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle checks the order reference guard and deletes the product with its
// variations in one transaction.
func (h *DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
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

	referenced, err := uow.OrderRepository().ExistsForProduct(ctx, cmd.ProductID())
	if err != nil {
		return err
	}
	if referenced {
		return errs.NewConflictError("product is associated with existing orders")
	}

	if err = uow.ProductRepository().Delete(ctx, cmd.ProductID()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
