package queries

import (
	"context"
	"database/sql"
	"errors"

	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetProductByIDQueryHandler reads one product with its variations.
type GetProductByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetProductByIDQueryHandler creates a handler for single-product queries.
func NewGetProductByIDQueryHandler(db *gorm.DB) GetProductByIDQueryHandler {
	return GetProductByIDQueryHandler{db: db}
}

// Handle executes the query.
// Returns an ObjectNotFoundError when the product does not exist.
func (h GetProductByIDQueryHandler) Handle(
	ctx context.Context,
	query GetProductByIDQuery,
) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	var resp ProductResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			name,
			description,
			category,
			available
		FROM products
		WHERE id = ?
	`, query.ProductID().Bytes()).Row()

	err := row.Scan(&resp.Name, &resp.Description, &resp.Category, &resp.Available)
	if errors.Is(err, sql.ErrNoRows) {
		return ProductResponse{}, errs.NewObjectNotFoundError("productId", query.ProductID())
	}
	if err != nil {
		return ProductResponse{}, err
	}

	resp.ID = query.ProductID()
	resp.Variations = make([]VariationResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			size_name,
			description,
			price,
			available
		FROM product_variations
		WHERE product_id = ?
		ORDER BY size_name, id
	`, query.ProductID().Bytes()).Rows()
	if err != nil {
		return ProductResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var price decimal.Decimal
		var variation VariationResponse

		if err = rows.Scan(&id, &variation.SizeName, &variation.Description, &price, &variation.Available); err != nil {
			return ProductResponse{}, err
		}

		variationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ProductResponse{}, idErr
		}
		variation.ID = variationID
		variation.Price = price.StringFixed(2)

		resp.Variations = append(resp.Variations, variation)
	}
	if err = rows.Err(); err != nil {
		return ProductResponse{}, err
	}

	return resp, nil
}
