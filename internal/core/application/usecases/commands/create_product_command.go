package commands

import (
	"errors"

	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/core/domain/model/product"
	"fornello/internal/pkg/errs"
	"fornello/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrProductNameIsRequired = errors.New("product name is required")
	ErrVariationsAreRequired = errors.New("at least one variation is required")
)

// CreateProductCommand represents a request to add a new product to the
// catalog together with its initial variations.
//
// Example:
//
//	productID := kernel.NewUUID()
//	cmd, err := NewCreateProductCommand(productID, "Margherita", "Classic pizza",
//	    product.CategoryPizza, true, variations)
//	if err != nil {
//	    return fmt.Errorf("invalid product data: %w", err)
//	}
//
//	handler := NewCreateProductCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create product: %w", err)
//	}
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	description string
	category    product.Category
	available   bool
	variations  []VariationData

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a new catalog product.
// Validates that the product ID and category are valid, the name is not empty
// and at least one well-formed variation is present.
func NewCreateProductCommand(
	productID kernel.UUID,
	name string,
	description string,
	category product.Category,
	available bool,
	variations []VariationData,
) (CreateProductCommand, error) {
	productCommand := CreateProductCommand{
		description: description,
		available:   available,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setProductID(productID),
		productCommand.setName(name),
		productCommand.setCategory(category),
		productCommand.setVariations(variations),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the unique identifier for the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the product description.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Category returns the product category.
func (c CreateProductCommand) Category() product.Category {
	return c.category
}

// Available returns the requested availability flag.
func (c CreateProductCommand) Available() bool {
	return c.available
}

// Variations returns the initial variation inputs.
func (c CreateProductCommand) Variations() []VariationData {
	return c.variations
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setCategory(category product.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}

func (c *CreateProductCommand) setVariations(variations []VariationData) error {
	if len(variations) == 0 {
		return ErrVariationsAreRequired
	}

	for _, variation := range variations {
		if err := variation.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("variations", err)
		}
	}

	c.variations = variations
	return nil
}
