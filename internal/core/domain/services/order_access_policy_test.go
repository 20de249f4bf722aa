package services_test

import (
	"testing"

	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/core/domain/model/user"
	"fornello/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderAccessPolicy_ScopeFor(t *testing.T) {
	policy := services.NewOrderAccessPolicy()
	callerID := kernel.NewUUID()

	t.Run("customer is limited to own orders", func(t *testing.T) {
		scope := policy.ScopeFor(callerID, []user.Role{user.RoleCustomer})

		assert.True(t, scope.IsRestricted())
		require.NotNil(t, scope.UserID())
		assert.True(t, scope.UserID().IsEqual(callerID))
	})

	t.Run("administrator sees all orders", func(t *testing.T) {
		scope := policy.ScopeFor(callerID, []user.Role{user.RoleAdministrator})

		assert.False(t, scope.IsRestricted())
		assert.Nil(t, scope.UserID())
	})

	t.Run("administrator role wins over customer role", func(t *testing.T) {
		scope := policy.ScopeFor(callerID, []user.Role{user.RoleCustomer, user.RoleAdministrator})

		assert.False(t, scope.IsRestricted())
	})

	t.Run("no roles falls back to own orders", func(t *testing.T) {
		scope := policy.ScopeFor(callerID, nil)

		assert.True(t, scope.IsRestricted())
	})
}
