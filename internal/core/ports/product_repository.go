package ports

import (
	"context"

	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
// A product is stored together with the variations it owns; loading a product
// always loads its full variation list.
type ProductRepository interface {
	// Add persists a new product aggregate with its variations.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate, including
	// added, changed and removed variations.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	// Returns an ObjectNotFoundError if no such product exists.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// Delete removes a product and its owned variations.
	// Returns an ObjectNotFoundError if no such product exists.
	Delete(ctx context.Context, id kernel.UUID) error
}
