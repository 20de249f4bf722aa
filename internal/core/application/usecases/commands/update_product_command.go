package commands

import (
	"errors"

	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/pkg/guard"
)

var (
	ErrUpdateProductCommandIsNotConstructed = errors.New(
		"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
	)
	// ErrUpdatePatchIsEmpty is returned when an update command carries no
	// field to change.
	ErrUpdatePatchIsEmpty = errors.New("update patch must set at least one field")
)

// UpdateProductCommand represents a partial update of a product. Each field
// is independently present-or-absent; a nil pointer means "leave unchanged".
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        *string
	description *string
	available   *bool

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a product patch command. At least one of
// name, description or available must be set.
func NewUpdateProductCommand(
	productID kernel.UUID,
	name *string,
	description *string,
	available *bool,
) (UpdateProductCommand, error) {
	updateCommand := UpdateProductCommand{
		name:        name,
		description: description,
		available:   available,
		guard:       guard.NewConstructorGuard(),
	}

	if err := updateCommand.setProductID(productID); err != nil {
		return UpdateProductCommand{}, err
	}

	if name == nil && description == nil && available == nil {
		return UpdateProductCommand{}, ErrUpdatePatchIsEmpty
	}

	if name != nil && *name == "" {
		return UpdateProductCommand{}, ErrProductNameIsRequired
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to patch.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the new name, or nil to leave it unchanged.
func (c UpdateProductCommand) Name() *string {
	return c.name
}

// Description returns the new description, or nil to leave it unchanged.
func (c UpdateProductCommand) Description() *string {
	return c.description
}

// Available returns the new availability flag, or nil to leave it unchanged.
func (c UpdateProductCommand) Available() *bool {
	return c.available
}

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
