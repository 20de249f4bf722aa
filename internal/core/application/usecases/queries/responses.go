// Package queries contains read operations that never modify system state.
// Handlers read through raw SQL against the persistence schema instead of
// loading aggregates, the read side of the CQRS split.
package queries

import (
	"time"

	"fornello/internal/core/domain/model/kernel"
)

// ProductResponse is the read model of one catalog product with its variations.
type ProductResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Category    string
	Available   bool
	Variations  []VariationResponse
}

// VariationResponse is the read model of one size/price option of a product.
type VariationResponse struct {
	ID          kernel.UUID
	SizeName    string
	Description string
	Price       string
	Available   bool
}

// OrderResponse is the read model of one order, presentation-ready: the owner
// summary is embedded and every item carries its ordering-time snapshot.
type OrderResponse struct {
	ID            kernel.UUID
	User          OrderUserResponse
	Items         []OrderItemResponse
	Status        string
	PaymentMethod string
	Amount        string
	Delivery      DeliveryResponse
	CreatedAt     time.Time
}

// OrderUserResponse summarizes the order's owner.
type OrderUserResponse struct {
	ID    kernel.UUID
	Email string
	Roles []string
}

// OrderItemResponse is one order line with its variation snapshot.
type OrderItemResponse struct {
	ID          kernel.UUID
	VariationID kernel.UUID
	SizeName    string
	UnitPrice   string
	Quantity    int
}

// DeliveryResponse is the delivery address and contact attached to an order.
type DeliveryResponse struct {
	ID           kernel.UUID
	ReceiverName string
	Address      string
	Number       string
	Complement   string
	District     string
	ZipCode      string
	City         string
	State        string
	Phone        string
}

// UserResponse is the read model of one user account for the admin surface.
type UserResponse struct {
	ID    kernel.UUID
	Email string
	Roles []string
}
