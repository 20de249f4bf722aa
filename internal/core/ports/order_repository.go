package ports

import (
	"context"

	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns an ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order and its line items.
	// Returns an ObjectNotFoundError if no such order exists.
	Delete(ctx context.Context, id kernel.UUID) error

	// ExistsForUser reports whether any order references the given user.
	ExistsForUser(ctx context.Context, userID kernel.UUID) (bool, error)

	// ExistsForVariation reports whether any order line item references the
	// given product variation.
	ExistsForVariation(ctx context.Context, variationID kernel.UUID) (bool, error)

	// ExistsForProduct reports whether any order line item references a
	// variation belonging to the given product.
	ExistsForProduct(ctx context.Context, productID kernel.UUID) (bool, error)
}
