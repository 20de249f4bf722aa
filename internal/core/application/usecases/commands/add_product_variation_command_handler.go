package commands

import (
	"context"
)

// AddProductVariationCommandHandler handles adding a variation to a product.
// The aggregate rejects an available variation on an unavailable product.
type AddProductVariationCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewAddProductVariationCommandHandler creates a handler for variation addition.
func NewAddProductVariationCommandHandler(uowFactory ProductUoWFactory) AddProductVariationCommandHandler {
	return AddProductVariationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the product, attaches the new variation and persists the change.
func (h *AddProductVariationCommandHandler) Handle(ctx context.Context, cmd AddProductVariationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	variation, err := cmd.Variation().toVariation()
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

	productRepo := uow.ProductRepository()
	aggregate, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err = aggregate.AddVariation(variation); err != nil {
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
