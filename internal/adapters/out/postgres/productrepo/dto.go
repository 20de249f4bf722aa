// Package productrepo provides data transfer objects and mapping functions for
// product persistence. Implements the repository pattern for the product
// aggregate, converting between domain entities and database rows.
package productrepo

import (
	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting product
// aggregates. Variations live in their own table and cascade on delete.
type ProductDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text"`
	Category    string         `gorm:"type:varchar(32);not null;index"`
	Available   bool           `gorm:"not null"`
	Variations  []VariationDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// VariationDTO represents the database structure for persisting product
// variations. Links to its product via foreign key.
type VariationDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	SizeName    string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Available   bool            `gorm:"not null"`
}

// TableName specifies the database table name for variation entities.
func (VariationDTO) TableName() string {
	return "product_variations"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	productID := aggregate.ID().Bytes()
	variations := make([]VariationDTO, 0, len(aggregate.Variations()))

	for _, v := range aggregate.Variations() {
		variations = append(variations, VariationDTO{
			ID:          v.ID().Bytes(),
			ProductID:   productID,
			SizeName:    v.SizeName(),
			Description: v.Description(),
			Price:       v.Price().Decimal(),
			Available:   v.IsAvailable(),
		})
	}

	return ProductDTO{
		ID:          productID,
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Category:    aggregate.Category().String(),
		Available:   aggregate.IsAvailable(),
		Variations:  variations,
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	category, err := product.ParseCategory(dto.Category)
	if err != nil {
		return nil, err
	}

	variations := make([]*product.Variation, 0, len(dto.Variations))
	for _, v := range dto.Variations {
		variationID, idErr := kernel.UUIDFromBytes(v.ID[:])
		if idErr != nil {
			return nil, idErr
		}

		price, priceErr := kernel.NewMoney(v.Price)
		if priceErr != nil {
			return nil, priceErr
		}

		variation, varErr := product.RestoreVariation(variationID, v.SizeName, v.Description, price, v.Available)
		if varErr != nil {
			return nil, varErr
		}

		variations = append(variations, variation)
	}

	return product.RestoreProduct(id, dto.Name, dto.Description, category, dto.Available, variations)
}
