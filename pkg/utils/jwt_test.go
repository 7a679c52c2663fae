package utils

import (
	"testing"

	"tiffinbox/pkg/config"
	"tiffinbox/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	old := config.AppConfig
	config.AppConfig = &config.Config{
		JWTSecret:    "test-secret",
		JWTExpiresIn: "1h",
	}
	t.Cleanup(func() { config.AppConfig = old })
}

func TestGenerateAndVerifyToken(t *testing.T) {
	setTestConfig(t)

	token, err := GenerateToken(42, "rider@example.com", models.RoleRider)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, claims.ID)
	assert.Equal(t, "rider@example.com", claims.Email)
	assert.Equal(t, models.RoleRider, claims.Role)
}

func TestVerifyTokenRejectsTampered(t *testing.T) {
	setTestConfig(t)

	token, err := GenerateToken(1, "a@example.com", models.RoleCustomer)
	require.NoError(t, err)

	_, err = VerifyToken(token + "x")
	assert.Error(t, err)
}

func TestVerifyTokenRejectsWrongSecret(t *testing.T) {
	setTestConfig(t)

	token, err := GenerateToken(1, "a@example.com", models.RoleCustomer)
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "different-secret"
	_, err = VerifyToken(token)
	assert.Error(t, err)
}

func TestTokenDuration(t *testing.T) {
	assert.Equal(t, tokenDuration("1h").Hours(), 1.0)
	assert.Equal(t, tokenDuration("1d").Hours(), 24.0)
	assert.Equal(t, tokenDuration("7d").Hours(), 7*24.0)
	assert.Equal(t, tokenDuration("30d").Hours(), 30*24.0)
	// unknown values fall back to a week
	assert.Equal(t, tokenDuration("bogus").Hours(), 7*24.0)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hash)

	assert.NoError(t, ComparePassword(hash, "hunter2hunter2"))
	assert.Error(t, ComparePassword(hash, "wrong-password"))
}

func TestCheckPasswordStrength(t *testing.T) {
	assert.Error(t, CheckPasswordStrength("short"))
	assert.NoError(t, CheckPasswordStrength("longenough"))
}
