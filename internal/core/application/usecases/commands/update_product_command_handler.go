package commands

import (
	"context"
)

// UpdateProductCommandHandler applies a partial update to a product.
// Setting available to false cascades false to every variation of the product.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product patch operations.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the product, applies the present fields and persists the change.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
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

	productRepo := uow.ProductRepository()
	aggregate, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if name := cmd.Name(); name != nil {
		if err = aggregate.SetName(*name); err != nil {
			return err
		}
	}

	if description := cmd.Description(); description != nil {
		aggregate.SetDescription(*description)
	}

	if available := cmd.Available(); available != nil {
		aggregate.SetAvailable(*available)
	}

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
