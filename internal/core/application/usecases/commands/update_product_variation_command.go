package commands

import (
	"errors"

	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/pkg/errs"
	"fornello/internal/pkg/guard"
)

// ErrUpdateProductVariationCommandIsNotConstructed is returned when the
// command was not created via its constructor.
var ErrUpdateProductVariationCommandIsNotConstructed = errors.New(
	"UpdateProductVariationCommand must be created via NewUpdateProductVariationCommand constructor",
)

// UpdateProductVariationCommand represents a partial update of one variation
// of a product. Nil pointers mean "leave unchanged".
type UpdateProductVariationCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	variationID kernel.UUID
	sizeName    *string
	description *string
	price       *kernel.Money
	available   *bool

	guard guard.ConstructorGuard
}

// NewUpdateProductVariationCommand creates a variation patch command.
// At least one of sizeName, description, price or available must be set.
func NewUpdateProductVariationCommand(
	productID kernel.UUID,
	variationID kernel.UUID,
	sizeName *string,
	description *string,
	price *kernel.Money,
	available *bool,
) (UpdateProductVariationCommand, error) {
	updateCommand := UpdateProductVariationCommand{
		sizeName:    sizeName,
		description: description,
		price:       price,
		available:   available,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setProductID(productID),
		updateCommand.setVariationID(variationID),
	); err != nil {
		return UpdateProductVariationCommand{}, err
	}

	if sizeName == nil && description == nil && price == nil && available == nil {
		return UpdateProductVariationCommand{}, ErrUpdatePatchIsEmpty
	}

	if sizeName != nil && *sizeName == "" {
		return UpdateProductVariationCommand{}, errs.NewValueIsRequiredError("sizeName")
	}

	if price != nil {
		if err := price.Validate(); err != nil {
			return UpdateProductVariationCommand{}, errs.NewValueIsRequiredErrorWithCause("price", err)
		}
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductVariationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductVariationCommandIsNotConstructed)
}

// ProductID returns the identifier of the owning product.
func (c UpdateProductVariationCommand) ProductID() kernel.UUID {
	return c.productID
}

// VariationID returns the identifier of the variation to patch.
func (c UpdateProductVariationCommand) VariationID() kernel.UUID {
	return c.variationID
}

// SizeName returns the new size name, or nil to leave it unchanged.
func (c UpdateProductVariationCommand) SizeName() *string {
	return c.sizeName
}

// Description returns the new description, or nil to leave it unchanged.
func (c UpdateProductVariationCommand) Description() *string {
	return c.description
}

// Price returns the new price, or nil to leave it unchanged.
func (c UpdateProductVariationCommand) Price() *kernel.Money {
	return c.price
}

// Available returns the new availability flag, or nil to leave it unchanged.
func (c UpdateProductVariationCommand) Available() *bool {
	return c.available
}

func (c *UpdateProductVariationCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *UpdateProductVariationCommand) setVariationID(variationID kernel.UUID) error {
	if err := variationID.Validate(); err != nil {
		return err
	}

	c.variationID = variationID
	return nil
}
