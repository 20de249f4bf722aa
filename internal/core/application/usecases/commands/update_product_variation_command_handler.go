package commands

import (
	"context"
)

// UpdateProductVariationCommandHandler applies a partial update to one
// variation of a product. Enabling a variation fails while its product is
// unavailable.
type UpdateProductVariationCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductVariationCommandHandler creates a handler for variation patches.
func NewUpdateProductVariationCommandHandler(uowFactory ProductUoWFactory) UpdateProductVariationCommandHandler {
	return UpdateProductVariationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the product, patches the variation through the aggregate and
// persists the change.
func (h *UpdateProductVariationCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateProductVariationCommand,
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

	productRepo := uow.ProductRepository()
	aggregate, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	variation, err := aggregate.Variation(cmd.VariationID())
	if err != nil {
		return err
	}

	if sizeName := cmd.SizeName(); sizeName != nil {
		if err = variation.SetSizeName(*sizeName); err != nil {
			return err
		}
	}

	if description := cmd.Description(); description != nil {
		variation.SetDescription(*description)
	}

	if price := cmd.Price(); price != nil {
		if err = variation.SetPrice(*price); err != nil {
			return err
		}
	}

	if available := cmd.Available(); available != nil {
		if err = aggregate.SetVariationAvailability(cmd.VariationID(), *available); err != nil {
			return err
		}
	}

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
