package product_test

import (
	"testing"

	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/core/domain/model/product"
	"fornello/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func mustVariation(t *testing.T, sizeName, price string, available bool) *product.Variation {
	t.Helper()
	v, err := product.NewVariation(kernel.NewUUID(), sizeName, "", mustMoney(t, price), available)
	require.NoError(t, err)
	return v
}

func TestNewProduct(t *testing.T) {
	t.Run("should create valid product with variations", func(t *testing.T) {
		variations := []*product.Variation{
			mustVariation(t, "M", "10.00", true),
			mustVariation(t, "L", "14.00", false),
		}

		p, err := product.NewProduct(kernel.NewUUID(), "Pizza Margherita", "Tomato and mozzarella",
			product.CategoryPizza, true, variations)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "Pizza Margherita", p.Name())
		assert.Equal(t, product.CategoryPizza, p.Category())
		assert.True(t, p.IsAvailable())
		assert.Len(t, p.Variations(), 2)
	})

	t.Run("should reject unavailable product with available variation", func(t *testing.T) {
		variations := []*product.Variation{
			mustVariation(t, "M", "10.00", true),
		}

		_, err := product.NewProduct(kernel.NewUUID(), "Pizza", "", product.CategoryPizza, false, variations)

		require.ErrorIs(t, err, product.ErrVariationUnavailableForProduct)
	})

	t.Run("should accept unavailable product with unavailable variation", func(t *testing.T) {
		variations := []*product.Variation{
			mustVariation(t, "M", "10.00", false),
		}

		p, err := product.NewProduct(kernel.NewUUID(), "Pizza", "", product.CategoryPizza, false, variations)

		require.NoError(t, err)
		assert.False(t, p.IsAvailable())
		assert.False(t, p.Variations()[0].IsAvailable())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := product.NewProduct(invalidID, "Pizza", "", product.CategoryPizza, true, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "", "", product.CategoryPizza, true, nil)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with unknown category", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "Pizza", "", product.CategoryUnknown, true, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestProductSetAvailable(t *testing.T) {
	t.Run("disabling product disables all variations", func(t *testing.T) {
		variations := []*product.Variation{
			mustVariation(t, "S", "8.00", true),
			mustVariation(t, "M", "10.00", false),
			mustVariation(t, "L", "14.00", true),
		}
		p, err := product.NewProduct(kernel.NewUUID(), "Pizza", "", product.CategoryPizza, true, variations)
		require.NoError(t, err)

		p.SetAvailable(false)

		assert.False(t, p.IsAvailable())
		for _, v := range p.Variations() {
			assert.False(t, v.IsAvailable())
		}
	})

	t.Run("enabling product does not re-enable variations", func(t *testing.T) {
		variations := []*product.Variation{
			mustVariation(t, "M", "10.00", false),
		}
		p, err := product.NewProduct(kernel.NewUUID(), "Pizza", "", product.CategoryPizza, false, variations)
		require.NoError(t, err)

		p.SetAvailable(true)

		assert.True(t, p.IsAvailable())
		assert.False(t, p.Variations()[0].IsAvailable())
	})
}

func TestProductSetVariationAvailability(t *testing.T) {
	t.Run("enabling variation of unavailable product fails and leaves it unchanged", func(t *testing.T) {
		variation := mustVariation(t, "M", "10.00", false)
		p, err := product.NewProduct(kernel.NewUUID(), "Pizza", "", product.CategoryPizza, false,
			[]*product.Variation{variation})
		require.NoError(t, err)

		err = p.SetVariationAvailability(variation.ID(), true)

		require.ErrorIs(t, err, product.ErrVariationUnavailableForProduct)
		assert.False(t, variation.IsAvailable())
	})

	t.Run("enabling variation of available product succeeds", func(t *testing.T) {
		variation := mustVariation(t, "M", "10.00", false)
		p, err := product.NewProduct(kernel.NewUUID(), "Pizza", "", product.CategoryPizza, true,
			[]*product.Variation{variation})
		require.NoError(t, err)

		require.NoError(t, p.SetVariationAvailability(variation.ID(), true))
		assert.True(t, variation.IsAvailable())
	})

	t.Run("disabling variation is always allowed", func(t *testing.T) {
		variation := mustVariation(t, "M", "10.00", true)
		p, err := product.NewProduct(kernel.NewUUID(), "Pizza", "", product.CategoryPizza, true,
			[]*product.Variation{variation})
		require.NoError(t, err)

		require.NoError(t, p.SetVariationAvailability(variation.ID(), false))
		assert.False(t, variation.IsAvailable())
	})

	t.Run("unknown variation id fails with not found", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Pizza", "", product.CategoryPizza, true, nil)
		require.NoError(t, err)

		err = p.SetVariationAvailability(kernel.NewUUID(), true)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestProductAddVariation(t *testing.T) {
	t.Run("available variation cannot join unavailable product", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Pizza", "", product.CategoryPizza, false, nil)
		require.NoError(t, err)

		err = p.AddVariation(mustVariation(t, "M", "10.00", true))

		require.ErrorIs(t, err, product.ErrVariationUnavailableForProduct)
		assert.Empty(t, p.Variations())
	})

	t.Run("unconstructed variation is rejected", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Pizza", "", product.CategoryPizza, true, nil)
		require.NoError(t, err)

		err = p.AddVariation(&product.Variation{})
		require.ErrorIs(t, err, product.ErrVariationIsNotConstructed)
	})
}

func TestProductRemoveVariation(t *testing.T) {
	t.Run("removes an owned variation", func(t *testing.T) {
		variation := mustVariation(t, "M", "10.00", true)
		p, err := product.NewProduct(kernel.NewUUID(), "Pizza", "", product.CategoryPizza, true,
			[]*product.Variation{variation})
		require.NoError(t, err)

		require.NoError(t, p.RemoveVariation(variation.ID()))
		assert.Empty(t, p.Variations())
	})

	t.Run("unknown variation id fails with not found", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Pizza", "", product.CategoryPizza, true, nil)
		require.NoError(t, err)

		require.ErrorIs(t, p.RemoveVariation(kernel.NewUUID()), errs.ErrObjectNotFound)
	})
}

func TestProductValidate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var p product.Product
		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})
}
