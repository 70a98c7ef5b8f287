//go:build unit

package user_test

import (
	"testing"

	"restaurant-api/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEmail(t *testing.T, s string) user.Email {
	t.Helper()
	email, err := user.NewEmail(s)
	require.NoError(t, err)
	return email
}

func TestNewUser(t *testing.T) {
	email := mustEmail(t, "alice@example.com")

	t.Run("creates a user and trims the name", func(t *testing.T) {
		u, err := user.NewUser("  Alice  ", email, "hashed", user.RoleCustomer)
		require.NoError(t, err)

		assert.Equal(t, "Alice", u.Name())
		assert.Equal(t, "alice@example.com", u.Email().Value())
		assert.Equal(t, user.RoleCustomer, u.Role())
	})

	t.Run("rejects blank names", func(t *testing.T) {
		_, err := user.NewUser("   ", email, "hashed", user.RoleCustomer)
		assert.ErrorIs(t, err, user.ErrEmptyName)
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		_, err := user.NewUser("Alice", email, "hashed", user.Role("root"))
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})
}

func TestUserIsPrivileged(t *testing.T) {
	email := mustEmail(t, "u@example.com")
	cases := []struct {
		role       user.Role
		privileged bool
	}{
		{user.RoleCustomer, false},
		{user.RoleStaff, true},
		{user.RoleAdmin, true},
	}
	for _, tc := range cases {
		u, err := user.NewUser("U", email, "hashed", tc.role)
		require.NoError(t, err)
		assert.Equal(t, tc.privileged, u.IsPrivileged(), "role %q", tc.role)
	}
}

func TestNewEmail(t *testing.T) {
	t.Run("trims surrounding whitespace", func(t *testing.T) {
		email, err := user.NewEmail("  bob@example.com  ")
		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", email.Value())
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, s := range []string{"", "plain", "missing@tld", "@example.com", "a b@example.com"} {
			_, err := user.NewEmail(s)
			assert.ErrorIs(t, err, user.ErrInvalidEmail, "value %q", s)
		}
	})
}

func TestNewPassword(t *testing.T) {
	_, err := user.NewPassword("12345")
	assert.ErrorIs(t, err, user.ErrPasswordTooWeak)

	_, err = user.NewPassword("123456")
	assert.NoError(t, err)
}

func TestNewRole(t *testing.T) {
	for _, s := range []string{"customer", "staff", "admin"} {
		role, err := user.NewRole(s)
		require.NoError(t, err)
		assert.Equal(t, s, role.String())
	}

	_, err := user.NewRole("Customer")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}
