//go:build unit

package user_test

import (
	"testing"

	"sabzi/internal/domain/user"
	"sabzi/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "vendor@example.com", actual.Email().Value())
		assert.Equal(t, "hashed_password", actual.PasswordHash())
		assert.Equal(t, user.RoleVendor, actual.Role())
		assert.True(t, actual.IsVendor())
		assert.False(t, actual.IsSupplier())
	})

	t.Run("supplier role", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().AsSupplier().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, user.RoleSupplier, actual.Role())
		assert.True(t, actual.IsSupplier())
	})

	t.Run("each user gets its own identity", func(t *testing.T) {
		first, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		second, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		assert.NotEqual(t, first.ID(), second.ID())
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		_, err := builder.NewUserBuilder().With(func(b *builder.UserBuilder) {
			b.Email = "not-an-email"
		}).BuildDomain()
		require.ErrorIs(t, err, user.ErrInvalidEmail)
	})

	t.Run("invalid role is rejected", func(t *testing.T) {
		_, err := builder.NewUserBuilder().With(func(b *builder.UserBuilder) {
			b.Role = "admin"
		}).BuildDomain()
		require.ErrorIs(t, err, user.ErrInvalidRole)
	})
}
