package commands

import (
	"context"

	"fornello/internal/core/domain/model/product"
)

// CreateProductCommandHandler handles the business logic for product creation.
// Builds the product aggregate with its initial variations and persists the
// whole graph in one transaction. The aggregate constructor rejects an
// unavailable product carrying any available variation.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product creation operations.
// Requires a ProductUoWFactory for transactional persistence.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product creation command.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	variations := make([]*product.Variation, 0, len(cmd.Variations()))
	for _, data := range cmd.Variations() {
		variation, err := data.toVariation()
		if err != nil {
			return err
		}
		variations = append(variations, variation)
	}

	aggregate, err := product.NewProduct(
		cmd.ProductID(),
		cmd.Name(),
		cmd.Description(),
		cmd.Category(),
		cmd.Available(),
		variations,
	)
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

	if err = uow.ProductRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
