package queries_test

import (
	"testing"

	"fornello/internal/core/application/usecases/queries"
	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/core/domain/model/order"
	"fornello/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrdersQuery_UnrestrictedScope(t *testing.T) {
	query, err := queries.NewGetOrdersQuery(services.UnrestrictedOrderScope(), nil)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.False(t, query.Scope().IsRestricted())
	assert.Nil(t, query.Status())
}

func TestNewGetOrdersQuery_RestrictedScope(t *testing.T) {
	userID := kernel.NewUUID()

	query, err := queries.NewGetOrdersQuery(services.OwnOrdersScope(userID), nil)

	require.NoError(t, err)
	require.True(t, query.Scope().IsRestricted())
	assert.True(t, userID.IsEqual(*query.Scope().UserID()))
}

func TestNewGetOrdersQuery_WithStatus(t *testing.T) {
	status := order.StatusInPreparation

	query, err := queries.NewGetOrdersQuery(services.UnrestrictedOrderScope(), &status)

	require.NoError(t, err)
	require.NotNil(t, query.Status())
	assert.Equal(t, order.StatusInPreparation, *query.Status())
}

func TestNewGetOrdersQuery_InvalidStatus_ReturnsError(t *testing.T) {
	status := order.Status(999)

	_, err := queries.NewGetOrdersQuery(services.UnrestrictedOrderScope(), &status)

	require.Error(t, err)
}

func TestGetOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersQueryIsNotConstructed)
}
