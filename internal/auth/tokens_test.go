package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"donatehub/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour, 24*time.Hour)
	p := domain.Principal{ID: "user-1", Role: domain.RoleDonor}

	signed, err := tokens.Access(p)
	require.NoError(t, err)

	got, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signer := NewTokens("secret-a", time.Hour, 24*time.Hour)
	verifier := NewTokens("secret-b", time.Hour, 24*time.Hour)

	signed, err := signer.Access(domain.Principal{ID: "user-1", Role: domain.RoleNGO})
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	tokens := NewTokens("test-secret", -time.Minute, 24*time.Hour)

	signed, err := tokens.Access(domain.Principal{ID: "user-1", Role: domain.RoleDonor})
	require.NoError(t, err)

	_, err = tokens.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour, 24*time.Hour)

	_, err := tokens.Verify("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsUnknownRole(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour, 24*time.Hour)

	signed, err := tokens.Access(domain.Principal{ID: "user-1", Role: "admin"})
	require.NoError(t, err)

	_, err = tokens.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2", hash)

	assert.True(t, CheckPassword(hash, "hunter2"))
	assert.False(t, CheckPassword(hash, "hunter3"))
}
