package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(7, "jane@example.com", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "admin", claims.UserType)
}

func TestValidateToken_Garbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateToken(1, "jane@example.com", "customer")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "another-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRY", "-1h")

	token, err := GenerateToken(1, "jane@example.com", "customer")
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.Error(t, err)
}
