package product

import (
	"errors"
	"fmt"

	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/pkg/errs"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not created
	// through the NewProduct or RestoreProduct factory functions.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrVariationUnavailableForProduct is returned when a variation would end up
	// available while its parent product is unavailable. It covers both creating an
	// unavailable product that carries an available variation and enabling a
	// variation of an unavailable product. It unwraps to ErrValueIsInvalid so the
	// transport layer rejects it as bad input.
	ErrVariationUnavailableForProduct = fmt.Errorf(
		"%w: a variation cannot be available while its product is unavailable",
		errs.ErrValueIsInvalid,
	)
)

// Product is the catalog aggregate root. It owns its Variations and is the
// only place allowed to change their availability, which keeps the catalog
// invariant in one spot:
//
//   - a variation with available=true requires the product to be available
//   - setting the product unavailable forces every variation to unavailable
//   - setting the product available leaves variation availability untouched
type Product struct {
	id          kernel.UUID
	name        string
	description string
	category    Category
	available   bool
	variations  []*Variation

	isConstructed bool
}

// NewProduct creates a validated Product owning the given variations.
//
// Returns an error if the identifier, name or category is invalid, if any
// variation is invalid, or if the product is created unavailable while any of
// its variations is available.
func NewProduct(
	id kernel.UUID,
	name string,
	description string,
	category Category,
	available bool,
	variations []*Variation,
) (*Product, error) {
	product := &Product{
		description:   description,
		available:     available,
		variations:    make([]*Variation, 0, len(variations)),
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.SetName(name),
		product.setCategory(category),
	); err != nil {
		return nil, err
	}

	for _, variation := range variations {
		if err := product.AddVariation(variation); err != nil {
			return nil, err
		}
	}

	return product, nil
}

// RestoreProduct reconstructs a Product from persistence.
// The stored state is assumed to have been valid when written, so the
// availability invariant is not re-checked here.
func RestoreProduct(
	id kernel.UUID,
	name string,
	description string,
	category Category,
	available bool,
	variations []*Variation,
) (*Product, error) {
	product := &Product{
		description:   description,
		available:     available,
		variations:    variations,
		isConstructed: true,
	}

	if err := errors.Join(
		product.setID(id),
		product.SetName(name),
		product.setCategory(category),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// Validate ensures the Product was created through a factory function.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the free-text description of the product.
func (p *Product) Description() string {
	return p.description
}

// Category returns the menu category of the product.
func (p *Product) Category() Category {
	return p.category
}

// IsAvailable reports whether the product can currently be ordered.
func (p *Product) IsAvailable() bool {
	return p.available
}

// Variations returns the variations owned by the product, in insertion order.
func (p *Product) Variations() []*Variation {
	return p.variations
}

// Variation looks up an owned variation by id.
// Returns an ObjectNotFoundError if the product owns no such variation.
func (p *Product) Variation(id kernel.UUID) (*Variation, error) {
	for _, variation := range p.variations {
		if variation.ID().IsEqual(id) {
			return variation, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("productVariation", id.String())
}

// SetName updates the product name. The name is required.
func (p *Product) SetName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

// SetDescription updates the free-text description.
func (p *Product) SetDescription(description string) {
	p.description = description
}

// SetAvailable applies a new availability value to the product.
// Disabling the product cascades to every owned variation; enabling it does
// not re-enable variations, they must be enabled one by one afterwards.
func (p *Product) SetAvailable(available bool) {
	p.available = available
	if !available {
		for _, variation := range p.variations {
			variation.setAvailable(false)
		}
	}
}

// SetVariationAvailability applies an availability value to one owned variation.
// Returns ErrVariationUnavailableForProduct when enabling a variation of an
// unavailable product; the variation is left unchanged in that case.
func (p *Product) SetVariationAvailability(variationID kernel.UUID, available bool) error {
	variation, err := p.Variation(variationID)
	if err != nil {
		return err
	}

	if available && !p.available {
		return ErrVariationUnavailableForProduct
	}

	variation.setAvailable(available)
	return nil
}

// AddVariation attaches a variation to the product.
// An available variation cannot be attached to an unavailable product.
func (p *Product) AddVariation(variation *Variation) error {
	if err := variation.Validate(); err != nil {
		return err
	}

	if variation.IsAvailable() && !p.available {
		return ErrVariationUnavailableForProduct
	}

	p.variations = append(p.variations, variation)
	return nil
}

// RemoveVariation detaches an owned variation from the product.
// Returns an ObjectNotFoundError if the product owns no such variation.
func (p *Product) RemoveVariation(variationID kernel.UUID) error {
	for i, variation := range p.variations {
		if variation.ID().IsEqual(variationID) {
			p.variations = append(p.variations[:i], p.variations[i+1:]...)
			return nil
		}
	}
	return errs.NewObjectNotFoundError("productVariation", variationID.String())
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	p.category = category
	return nil
}
