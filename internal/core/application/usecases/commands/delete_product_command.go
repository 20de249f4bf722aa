package commands

import (
	"errors"

	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/pkg/guard"
)

// ErrDeleteProductCommandIsNotConstructed is returned when the command was
// not created via its constructor.
var ErrDeleteProductCommandIsNotConstructed = errors.New(
	"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
)

// DeleteProductCommand represents a request to remove a product and its
// variations from the catalog.
type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteProductCommand creates a command to delete the given product.
func NewDeleteProductCommand(productID kernel.UUID) (DeleteProductCommand, error) {
	deleteCommand := DeleteProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deleteCommand.setProductID(productID); err != nil {
		return DeleteProductCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to delete.
func (c DeleteProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c *DeleteProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
