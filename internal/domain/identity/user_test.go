package identity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("hashes password and normalizes email", func(t *testing.T) {
		u, err := NewUser("  Ana@Example.COM ", "supersecret", "Ana", "García", RoleClient)
		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", u.Email)
		assert.NotEqual(t, "supersecret", u.PasswordHash)
		assert.True(t, u.CheckPassword("supersecret"))
		assert.False(t, u.CheckPassword("wrong"))
		assert.False(t, u.IsAdmin())
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := NewUser("ana@example.com", "short", "Ana", "", RoleClient)
		assert.Error(t, err)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := NewUser("ana@example.com", "supersecret", "Ana", "", Role("superuser"))
		assert.Error(t, err)
	})
}

func TestUser_ChangePassword(t *testing.T) {
	u, err := NewUser("ana@example.com", "supersecret", "Ana", "", RoleClient)
	require.NoError(t, err)

	require.NoError(t, u.ChangePassword("evenmoresecret"))
	assert.True(t, u.CheckPassword("evenmoresecret"))
	assert.False(t, u.CheckPassword("supersecret"))
}

func TestUser_UpdateProfile(t *testing.T) {
	t.Run("only provided fields change", func(t *testing.T) {
		u, err := NewUser("ana@example.com", "supersecret", "Ana", "García", RoleClient)
		require.NoError(t, err)

		phone := "+52 55 1234 5678"
		city := "Ciudad de México"
		require.NoError(t, u.UpdateProfile(ProfileUpdate{Phone: &phone, City: &city}))
		assert.Equal(t, phone, u.Phone)
		assert.Equal(t, city, u.City)
		assert.Equal(t, "Ana", u.FirstName)
		assert.Equal(t, "García", u.LastName)
	})

	t.Run("rejects blank first name", func(t *testing.T) {
		u, err := NewUser("ana@example.com", "supersecret", "Ana", "", RoleClient)
		require.NoError(t, err)

		blank := "  "
		assert.Error(t, u.UpdateProfile(ProfileUpdate{FirstName: &blank}))
		assert.Equal(t, "Ana", u.FirstName)
	})
}

func TestSession(t *testing.T) {
	t.Run("active until revoked", func(t *testing.T) {
		s := NewSession(uuid.New(), "token-id", time.Hour, "test-agent", "127.0.0.1")
		assert.True(t, s.IsActive())

		s.Revoke()
		assert.False(t, s.IsActive())

		first := *s.RevokedAt
		s.Revoke()
		assert.Equal(t, first, *s.RevokedAt)
	})

	t.Run("expired session is not active", func(t *testing.T) {
		s := NewSession(uuid.New(), "token-id", -time.Minute, "", "")
		assert.False(t, s.IsActive())
	})
}
