package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowlytix/distribution-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", 15)

	token, exp, err := tm.GenerateToken("user-1", domain.RoleAdmin, "session-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.False(t, exp.IsZero())

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, "session-1", claims.SessionID)
	assert.Equal(t, "user-1", claims.Subject)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("secret", 15)
	other := NewTokenManager("different", 15)

	token, _, err := tm.GenerateToken("user-1", domain.RoleViewer, "session-1")
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	require.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("secret", 15)
	_, err := tm.ParseToken("not-a-jwt")
	require.Error(t, err)
}

func TestTokenManagerDefaultsTTL(t *testing.T) {
	tm := NewTokenManager("secret", 0)
	_, exp, err := tm.GenerateToken("user-1", domain.RoleViewer, "")
	require.NoError(t, err)
	assert.False(t, exp.IsZero())
}
