package commands

import (
	"errors"
	"fmt"

	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/pkg/errs"
	"fornello/internal/pkg/guard"
)

// ErrOrderItemDataIsNotConstructed is returned when an OrderItemData instance
// was not created via the NewOrderItemData constructor.
var ErrOrderItemDataIsNotConstructed = errors.New(
	"OrderItemData must be created via NewOrderItemData constructor",
)

// OrderItemData is one cart line of a create-order request: which variation
// of which product, and how many. The same variation may appear on several
// lines; lines are never merged.
type OrderItemData struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	variationID kernel.UUID
	quantity    int

	guard guard.ConstructorGuard
}

// NewOrderItemData creates a validated cart line.
func NewOrderItemData(
	productID kernel.UUID,
	variationID kernel.UUID,
	quantity int,
) (OrderItemData, error) {
	data := OrderItemData{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		data.setProductID(productID),
		data.setVariationID(variationID),
		data.setQuantity(quantity),
	); err != nil {
		return OrderItemData{}, err
	}

	return data, nil
}

// Validate ensures the value was created through the constructor.
func (d OrderItemData) Validate() error {
	return d.guard.Validate(ErrOrderItemDataIsNotConstructed)
}

// ProductID returns the identifier of the product the line points at.
func (d OrderItemData) ProductID() kernel.UUID {
	return d.productID
}

// VariationID returns the identifier of the requested variation.
func (d OrderItemData) VariationID() kernel.UUID {
	return d.variationID
}

// Quantity returns how many units the line requests.
func (d OrderItemData) Quantity() int {
	return d.quantity
}

func (d *OrderItemData) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("productId", err)
	}

	d.productID = productID
	return nil
}

func (d *OrderItemData) setVariationID(variationID kernel.UUID) error {
	if err := variationID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("variationId", err)
	}

	d.variationID = variationID
	return nil
}

func (d *OrderItemData) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	d.quantity = quantity
	return nil
}
