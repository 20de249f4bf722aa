package commands

import (
	"errors"

	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/pkg/guard"
)

// ErrAddProductVariationCommandIsNotConstructed is returned when the command
// was not created via its constructor.
var ErrAddProductVariationCommandIsNotConstructed = errors.New(
	"AddProductVariationCommand must be created via NewAddProductVariationCommand constructor",
)

// AddProductVariationCommand represents a request to add one variation to an
// existing product.
type AddProductVariationCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	variation VariationData

	guard guard.ConstructorGuard
}

// NewAddProductVariationCommand creates a command to attach a new variation
// to the product with the given identifier.
func NewAddProductVariationCommand(
	productID kernel.UUID,
	variation VariationData,
) (AddProductVariationCommand, error) {
	variationCommand := AddProductVariationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		variationCommand.setProductID(productID),
		variationCommand.setVariation(variation),
	); err != nil {
		return AddProductVariationCommand{}, err
	}

	return variationCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddProductVariationCommand) Validate() error {
	return c.guard.Validate(ErrAddProductVariationCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to extend.
func (c AddProductVariationCommand) ProductID() kernel.UUID {
	return c.productID
}

// Variation returns the variation input.
func (c AddProductVariationCommand) Variation() VariationData {
	return c.variation
}

func (c *AddProductVariationCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddProductVariationCommand) setVariation(variation VariationData) error {
	if err := variation.Validate(); err != nil {
		return err
	}

	c.variation = variation
	return nil
}
