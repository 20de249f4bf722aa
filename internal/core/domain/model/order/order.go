package order

import (
	"errors"
	"time"

	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the ordering aggregate root. It owns its line items and delivery
// data, references the user that placed it, and carries the total amount
// computed at creation time.
//
// Order follows these invariants:
//   - Must have at least one line item and exactly one delivery data
//   - The amount is fixed at creation and never recomputed from current prices
//   - The creation timestamp is set once and is immutable
//   - Only the status mutates after creation, to any valid value
type Order struct {
	id            kernel.UUID
	userID        kernel.UUID
	items         []*Item
	status        Status
	paymentMethod PaymentMethod
	amount        kernel.Money
	delivery      DeliveryData
	createdAt     time.Time

	isConstructed bool
}

// NewOrder creates a new Order in Pending status with the creation timestamp
// set to the current UTC time. The amount is supplied by the assembler that
// resolved the variation prices; it is not derived here so the total stays a
// point-in-time snapshot.
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	items []*Item,
	paymentMethod PaymentMethod,
	amount kernel.Money,
	delivery DeliveryData,
) (*Order, error) {
	o := &Order{
		status:        StatusPending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItems(items),
		o.setPaymentMethod(paymentMethod),
		o.setAmount(amount),
		o.setDelivery(delivery),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence with its stored status
// and creation timestamp.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	items []*Item,
	status Status,
	paymentMethod PaymentMethod,
	amount kernel.Money,
	delivery DeliveryData,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItems(items),
		o.ChangeStatus(status),
		o.setPaymentMethod(paymentMethod),
		o.setAmount(amount),
		o.setDelivery(delivery),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through a factory function.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the identifier of the user that placed the order.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Items returns the order's line items in the order they were placed.
func (o *Order) Items() []*Item {
	return o.items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// PaymentMethod returns how the customer chose to pay.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// Amount returns the total computed when the order was assembled.
func (o *Order) Amount() kernel.Money {
	return o.amount
}

// Delivery returns the delivery data attached to the order.
func (o *Order) Delivery() DeliveryData {
	return o.delivery
}

// CreatedAt returns the immutable creation timestamp (UTC).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ChangeStatus overwrites the order status with any valid value.
// There is no transition graph: a delivered order may go back to pending.
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("orderItems")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	o.paymentMethod = paymentMethod
	return nil
}

func (o *Order) setAmount(amount kernel.Money) error {
	if err := amount.Validate(); err != nil {
		return err
	}
	o.amount = amount
	return nil
}

func (o *Order) setDelivery(delivery DeliveryData) error {
	if err := delivery.Validate(); err != nil {
		return err
	}
	o.delivery = delivery
	return nil
}
