package commands

import (
	"errors"

	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/core/domain/model/product"
	"fornello/internal/pkg/errs"
	"fornello/internal/pkg/guard"
)

// ErrVariationDataIsNotConstructed is returned when a VariationData instance
// was not created via the NewVariationData constructor.
var ErrVariationDataIsNotConstructed = errors.New(
	"VariationData must be created via NewVariationData constructor",
)

// VariationData carries the fields of one product variation inside a product
// command. It is a transport-agnostic input value, not the domain object;
// the domain Variation is built from it inside the handler.
type VariationData struct { //nolint:recvcheck //using for validation
	variationID kernel.UUID
	sizeName    string
	description string
	price       kernel.Money
	available   bool

	guard guard.ConstructorGuard
}

// NewVariationData creates validated variation input for product commands.
func NewVariationData(
	variationID kernel.UUID,
	sizeName string,
	description string,
	price kernel.Money,
	available bool,
) (VariationData, error) {
	data := VariationData{
		description: description,
		available:   available,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		data.setVariationID(variationID),
		data.setSizeName(sizeName),
		data.setPrice(price),
	); err != nil {
		return VariationData{}, err
	}

	return data, nil
}

// Validate ensures the value was created through the constructor.
func (d VariationData) Validate() error {
	return d.guard.Validate(ErrVariationDataIsNotConstructed)
}

// VariationID returns the pre-generated identifier for the variation.
func (d VariationData) VariationID() kernel.UUID {
	return d.variationID
}

// SizeName returns the variation's size name.
func (d VariationData) SizeName() string {
	return d.sizeName
}

// Description returns the variation's description.
func (d VariationData) Description() string {
	return d.description
}

// Price returns the variation's unit price.
func (d VariationData) Price() kernel.Money {
	return d.price
}

// Available returns the requested availability flag.
func (d VariationData) Available() bool {
	return d.available
}

// toVariation builds the domain variation this input describes.
func (d VariationData) toVariation() (*product.Variation, error) {
	return product.NewVariation(d.variationID, d.sizeName, d.description, d.price, d.available)
}

func (d *VariationData) setVariationID(variationID kernel.UUID) error {
	if err := variationID.Validate(); err != nil {
		return err
	}

	d.variationID = variationID
	return nil
}

func (d *VariationData) setSizeName(sizeName string) error {
	if sizeName == "" {
		return errs.NewValueIsRequiredError("sizeName")
	}

	d.sizeName = sizeName
	return nil
}

func (d *VariationData) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("price", err)
	}

	d.price = price
	return nil
}
