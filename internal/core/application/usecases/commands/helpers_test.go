package commands_test

import (
	"testing"

	"fornello/internal/core/application/usecases/commands"
	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/core/domain/model/order"
	"fornello/internal/core/domain/model/product"

	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func variationData(t *testing.T, sizeName string, price string, available bool) commands.VariationData {
	t.Helper()
	data, err := commands.NewVariationData(kernel.NewUUID(), sizeName, "", mustMoney(t, price), available)
	require.NoError(t, err)
	return data
}

func catalogProduct(t *testing.T, available bool, variations ...*product.Variation) *product.Product {
	t.Helper()
	p, err := product.NewProduct(kernel.NewUUID(), "Margherita", "Classic pizza",
		product.CategoryPizza, available, variations)
	require.NoError(t, err)
	return p
}

func catalogVariation(t *testing.T, sizeName string, price string, available bool) *product.Variation {
	t.Helper()
	v, err := product.NewVariation(kernel.NewUUID(), sizeName, "", mustMoney(t, price), available)
	require.NoError(t, err)
	return v
}

func deliveryData(t *testing.T) order.DeliveryData {
	t.Helper()
	d, err := order.NewDeliveryData(kernel.NewUUID(),
		"Maria Silva", "Rua das Flores", "100", "",
		"Centro", "50000-000", "Recife", "PE", "+55 81 99999-0000")
	require.NoError(t, err)
	return d
}

func cartLine(t *testing.T, productID, variationID kernel.UUID, quantity int) commands.OrderItemData {
	t.Helper()
	line, err := commands.NewOrderItemData(productID, variationID, quantity)
	require.NoError(t, err)
	return line
}
