package queries_test

import (
	"testing"

	"fornello/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetUsersQuery_Valid(t *testing.T) {
	query := queries.NewGetUsersQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetUsersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetUsersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetUsersQueryIsNotConstructed)
}
