package commands

import (
	"errors"

	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/pkg/guard"
)

// ErrDeleteProductVariationCommandIsNotConstructed is returned when the
// command was not created via its constructor.
var ErrDeleteProductVariationCommandIsNotConstructed = errors.New(
	"DeleteProductVariationCommand must be created via NewDeleteProductVariationCommand constructor",
)

// DeleteProductVariationCommand represents a request to remove one variation
// from a product.
type DeleteProductVariationCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	variationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteProductVariationCommand creates a command to delete the given
// variation of the given product.
func NewDeleteProductVariationCommand(
	productID kernel.UUID,
	variationID kernel.UUID,
) (DeleteProductVariationCommand, error) {
	deleteCommand := DeleteProductVariationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		deleteCommand.setProductID(productID),
		deleteCommand.setVariationID(variationID),
	); err != nil {
		return DeleteProductVariationCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteProductVariationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductVariationCommandIsNotConstructed)
}

// ProductID returns the identifier of the owning product.
func (c DeleteProductVariationCommand) ProductID() kernel.UUID {
	return c.productID
}

// VariationID returns the identifier of the variation to delete.
func (c DeleteProductVariationCommand) VariationID() kernel.UUID {
	return c.variationID
}

func (c *DeleteProductVariationCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *DeleteProductVariationCommand) setVariationID(variationID kernel.UUID) error {
	if err := variationID.Validate(); err != nil {
		return err
	}

	c.variationID = variationID
	return nil
}
