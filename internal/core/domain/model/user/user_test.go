package user_test

import (
	"testing"

	"fornello/internal/core/domain/model/kernel"
	"fornello/internal/core/domain/model/user"
	"fornello/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("should create valid user", func(t *testing.T) {
		id := kernel.NewUUID()

		u, err := user.NewUser(id, "maria@email.com", "$2a$10$hash", []user.Role{user.RoleCustomer})

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.True(t, u.ID().IsEqual(id))
		assert.Equal(t, "maria@email.com", u.Email())
		assert.True(t, u.HasRole(user.RoleCustomer))
		assert.False(t, u.HasRole(user.RoleAdministrator))
	})

	t.Run("should fail with empty email", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "", "hash", []user.Role{user.RoleCustomer})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with malformed email", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "not-an-email", "hash", []user.Role{user.RoleCustomer})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail without roles", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "maria@email.com", "hash", nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with invalid role value", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "maria@email.com", "hash", []user.Role{user.RoleUnknown})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with empty password hash", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "maria@email.com", "", []user.Role{user.RoleCustomer})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestParseRole(t *testing.T) {
	t.Run("parses known tokens case-insensitively", func(t *testing.T) {
		role, err := user.ParseRole("administrator")
		require.NoError(t, err)
		assert.Equal(t, user.RoleAdministrator, role)

		role, err = user.ParseRole("CUSTOMER")
		require.NoError(t, err)
		assert.Equal(t, user.RoleCustomer, role)
	})

	t.Run("rejects unknown token", func(t *testing.T) {
		_, err := user.ParseRole("MANAGER")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestUserValidate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var u user.User
		require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
	})
}
