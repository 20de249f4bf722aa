package commands

import (
	"errors"
	"fmt"

	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/core/domain/model/order"
	"fornello/internal/pkg/errs"
	"fornello/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)

	// ErrOrderItemsAreRequired unwraps to ErrValueIsRequired so an empty cart is
	// rejected as bad input at the transport layer.
	ErrOrderItemsAreRequired = fmt.Errorf(
		"%w: at least one order item is required", errs.ErrValueIsRequired,
	)
)

// CreateOrderCommand represents a request to place a new order.
// The order and delivery identities are generated by the caller so the
// command stays replayable; the acting user has already been resolved from
// the bearer token by the time the command is built.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, callerID, cart,
//	    order.PaymentMethodPix, delivery)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	userID        kernel.UUID
	items         []OrderItemData
	paymentMethod order.PaymentMethod
	delivery      order.DeliveryData

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates identities, the payment method, the delivery data and that at
// least one well-formed cart line is present.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	items []OrderItemData,
	paymentMethod order.PaymentMethod,
	delivery order.DeliveryData,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setUserID(userID),
		orderCommand.setItems(items),
		orderCommand.setPaymentMethod(paymentMethod),
		orderCommand.setDelivery(delivery),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the pre-generated identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the identifier of the ordering user.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// Items returns the cart lines in request order.
func (c CreateOrderCommand) Items() []OrderItemData {
	return c.items
}

// PaymentMethod returns the chosen payment method.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// Delivery returns the delivery data for the order.
func (c CreateOrderCommand) Delivery() order.DeliveryData {
	return c.delivery
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}

	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemData) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("items", err)
		}
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}

func (c *CreateOrderCommand) setDelivery(delivery order.DeliveryData) error {
	if err := delivery.Validate(); err != nil {
		return err
	}

	c.delivery = delivery
	return nil
}
