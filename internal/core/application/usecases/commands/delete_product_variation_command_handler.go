package commands

import (
	"context"

	"fornello/internal/pkg/errs"
)

// DeleteProductVariationCommandHandler removes one variation from a product.
// Deletion is rejected while any order item still references the variation.
type DeleteProductVariationCommandHandler struct {
	uowFactory ProductOrderUoWFactory
}

// NewDeleteProductVariationCommandHandler creates a handler for variation deletion.
func NewDeleteProductVariationCommandHandler(
	uowFactory ProductOrderUoWFactory,
) DeleteProductVariationCommandHandler {
	return DeleteProductVariationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle checks the order reference guard, detaches the variation from the
// aggregate and persists the change.
func (h *DeleteProductVariationCommandHandler) Handle(
	ctx context.Context,
	cmd DeleteProductVariationCommand,
) error {
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

	referenced, err := uow.OrderRepository().ExistsForVariation(ctx, cmd.VariationID())
	if err != nil {
		return err
	}
	if referenced {
		return errs.NewConflictError("product variation is associated with existing orders")
	}

	productRepo := uow.ProductRepository()
	aggregate, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = aggregate.RemoveVariation(cmd.VariationID()); err != nil {
		return err
	}

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
