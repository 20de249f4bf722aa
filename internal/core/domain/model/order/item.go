package order

import (
	"errors"
	"fmt"

	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory function.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of an order: a reference to a product variation, a
// snapshot of the variation's size name and unit price at ordering time, and
// a positive quantity. The item does not own the variation; the snapshot
// keeps the line presentable even after the catalog changes.
// The same variation may appear on several items of one order.
type Item struct {
	id          kernel.UUID
	variationID kernel.UUID
	sizeName    string
	unitPrice   kernel.Money
	quantity    int

	isConstructed bool
}

// NewItem creates a validated order line.
func NewItem(
	id kernel.UUID,
	variationID kernel.UUID,
	sizeName string,
	unitPrice kernel.Money,
	quantity int,
) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setVariationID(variationID),
		item.setSizeName(sizeName),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an Item from persistence.
func RestoreItem(
	id kernel.UUID,
	variationID kernel.UUID,
	sizeName string,
	unitPrice kernel.Money,
	quantity int,
) (*Item, error) {
	return NewItem(id, variationID, sizeName, unitPrice, quantity)
}

// Validate ensures the Item was created through a factory function.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// VariationID returns the identifier of the referenced product variation.
func (i *Item) VariationID() kernel.UUID {
	return i.variationID
}

// SizeName returns the variation's size name as it was at ordering time.
func (i *Item) SizeName() string {
	return i.sizeName
}

// UnitPrice returns the variation's unit price as it was at ordering time.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns how many units of the variation were ordered.
func (i *Item) Quantity() int {
	return i.quantity
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setVariationID(variationID kernel.UUID) error {
	if err := variationID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("variationId", err)
	}
	i.variationID = variationID
	return nil
}

func (i *Item) setSizeName(sizeName string) error {
	if sizeName == "" {
		return errs.NewValueIsRequiredError("sizeName")
	}
	i.sizeName = sizeName
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("unitPrice", err)
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	i.quantity = quantity
	return nil
}
