package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() JWTConfig {
	return JWTConfig{
		Secret:      "test-secret",
		Issuer:      "krishisetu-test",
		ExpiryHours: 1,
	}
}

func TestGenerateToken_RoundTrip(t *testing.T) {
	cfg := testJWTConfig()
	userID := uuid.New()

	token, err := GenerateToken(cfg, userID, "Farmer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "Farmer", claims.Role)
	assert.Equal(t, cfg.Issuer, claims.Issuer)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken(testJWTConfig(), uuid.New(), "Admin")
	require.NoError(t, err)

	bad := testJWTConfig()
	bad.Secret = "other-secret"

	_, err = ValidateToken(bad, token)
	require.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken(testJWTConfig(), "not.a.token")
	require.Error(t, err)
}
