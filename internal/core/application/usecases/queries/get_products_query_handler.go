package queries

import (
	"context"

	"fornello/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetProductsQueryHandler reads the catalog from the database.
// Products are sorted by name; each carries its full variation list.
type GetProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductsQueryHandler creates a handler for catalog queries.
// Requires a GORM database connection for query execution.
func NewGetProductsQueryHandler(db *gorm.DB) GetProductsQueryHandler {
	return GetProductsQueryHandler{db: db}
}

// Handle executes the catalog query.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]ProductResponse, 0)
	index := make(map[uuid.UUID]int)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			category,
			available
		FROM products
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var resp ProductResponse

		if err = rows.Scan(&id, &resp.Name, &resp.Description, &resp.Category, &resp.Available); err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = productID
		resp.Variations = make([]VariationResponse, 0)

		index[id] = len(products)
		products = append(products, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err = h.attachVariations(ctx, products, index); err != nil {
		return nil, err
	}

	return products, nil
}

// attachVariations loads every variation in one pass and distributes them to
// their owning products.
func (h GetProductsQueryHandler) attachVariations(
	ctx context.Context,
	products []ProductResponse,
	index map[uuid.UUID]int,
) error {
	if len(products) == 0 {
		return nil
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			size_name,
			description,
			price,
			available
		FROM product_variations
		ORDER BY size_name, id
	`).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id, productID uuid.UUID
		var price decimal.Decimal
		var resp VariationResponse

		if err = rows.Scan(&id, &productID, &resp.SizeName, &resp.Description, &price, &resp.Available); err != nil {
			return err
		}

		variationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return idErr
		}
		resp.ID = variationID
		resp.Price = price.StringFixed(2)

		if i, ok := index[productID]; ok {
			products[i].Variations = append(products[i].Variations, resp)
		}
	}

	return rows.Err()
}
