package queries

import (
	"errors"

	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/pkg/guard"
)

// ErrGetProductByIDQueryIsNotConstructed is returned when the query was not
// created via its constructor.
var ErrGetProductByIDQueryIsNotConstructed = errors.New(
	"GetProductByIDQuery must be created via NewGetProductByIDQuery constructor",
)

// GetProductByIDQuery retrieves one product with its variations.
type GetProductByIDQuery struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetProductByIDQuery creates a query for the product with the given identifier.
func NewGetProductByIDQuery(productID kernel.UUID) (GetProductByIDQuery, error) {
	query := GetProductByIDQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setProductID(productID); err != nil {
		return GetProductByIDQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetProductByIDQueryIsNotConstructed)
}

// ProductID returns the identifier of the requested product.
func (q GetProductByIDQuery) ProductID() kernel.UUID {
	return q.productID
}

func (q *GetProductByIDQuery) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	q.productID = productID
	return nil
}
