package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewManager("test-secret", 60)

	token, err := m.GenerateToken("user-123", "admin@example.com", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewManager("secret-a", 60)
	verifier := NewManager("secret-b", 60)

	token, err := issuer.GenerateToken("user-123", "admin@example.com", "admin")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret", 60)

	for _, token := range []string{"", "not.a.token", "abc"} {
		_, err := m.ValidateToken(token)
		assert.Error(t, err, "token %q should not validate", token)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	m := NewManager("test-secret", -1)

	token, err := m.GenerateToken("user-123", "admin@example.com", "admin")
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	require.Error(t, err)
}
