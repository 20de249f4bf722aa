package product

import (
	"errors"

	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/pkg/errs"
)

// ErrVariationIsNotConstructed is returned when a Variation instance was not
// created through the NewVariation or RestoreVariation factory functions.
var ErrVariationIsNotConstructed = errors.New("Variation must be created via NewVariation constructor")

// Variation is a purchasable size/price option owned by exactly one Product.
// It carries its own availability flag, but availability changes are mediated
// by the owning Product so the catalog invariant holds.
type Variation struct {
	id          kernel.UUID
	sizeName    string
	description string
	price       kernel.Money
	available   bool

	isConstructed bool
}

// NewVariation creates a validated Variation.
// The size name is required and the price must be a constructed Money value
// (which is non-negative by construction).
func NewVariation(
	id kernel.UUID,
	sizeName string,
	description string,
	price kernel.Money,
	available bool,
) (*Variation, error) {
	variation := &Variation{
		description:   description,
		available:     available,
		isConstructed: true,
	}

	if err := errors.Join(
		variation.setID(id),
		variation.SetSizeName(sizeName),
		variation.SetPrice(price),
	); err != nil {
		return nil, err
	}

	return variation, nil
}

// RestoreVariation reconstructs a Variation from persistence without re-running
// creation-time invariants. The stored state is assumed to have been valid when written.
func RestoreVariation(
	id kernel.UUID,
	sizeName string,
	description string,
	price kernel.Money,
	available bool,
) (*Variation, error) {
	return NewVariation(id, sizeName, description, price, available)
}

// Validate ensures the Variation was created through a factory function.
func (v *Variation) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVariationIsNotConstructed
	}
	return nil
}

// ID returns the variation's unique identifier.
func (v *Variation) ID() kernel.UUID {
	return v.id
}

// SizeName returns the size label, e.g. "M" or "Family".
func (v *Variation) SizeName() string {
	return v.sizeName
}

// Description returns the free-text description of the variation.
func (v *Variation) Description() string {
	return v.description
}

// Price returns the current price of the variation.
func (v *Variation) Price() kernel.Money {
	return v.price
}

// IsAvailable reports whether the variation can currently be ordered.
func (v *Variation) IsAvailable() bool {
	return v.available
}

// SetSizeName updates the size label. The label is required.
func (v *Variation) SetSizeName(sizeName string) error {
	if sizeName == "" {
		return errs.NewValueIsRequiredError("sizeName")
	}
	v.sizeName = sizeName
	return nil
}

// SetDescription updates the free-text description.
func (v *Variation) SetDescription(description string) {
	v.description = description
}

// SetPrice updates the price. The Money value must be constructed.
func (v *Variation) SetPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	v.price = price
	return nil
}

func (v *Variation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

// setAvailable applies an availability value without invariant checks.
// Only the owning Product may call it, after enforcing the catalog invariant.
func (v *Variation) setAvailable(available bool) {
	v.available = available
}
