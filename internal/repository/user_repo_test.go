package repository_test

import (
	"testing"

	"go-pos-ledger/internal/apperrors"
	"go-pos-ledger/internal/model"
	"go-pos-ledger/internal/repository"
	"go-pos-ledger/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo_ResetCredentials(t *testing.T) {
	users := repository.NewUserRepo(testutil.NewDB(t))

	user := &model.User{Email: "alice@example.com", FullName: "Alice", IsActive: true, TokenVersion: "v1"}
	require.NoError(t, user.SetPassword("secret1"))
	require.NoError(t, users.Create(user))

	next := &model.User{}
	require.NoError(t, next.SetPassword("secret2"))
	require.NoError(t, users.ResetCredentials(user.ID, next.Password, "v2"))

	got, err := users.FindByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "v2", got.TokenVersion)
	assert.True(t, got.CheckPassword("secret2"))
	assert.False(t, got.CheckPassword("secret1"))

	assert.ErrorIs(t, users.ResetCredentials(uuid.New(), next.Password, "v3"), apperrors.ErrNotFound)
}
