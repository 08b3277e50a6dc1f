package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fastaxi/dispatch/internal/pkg/models"
)

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := models.JWTConfig{
		Secret:     "test-secret",
		Issuer:     "fastaxi-dispatch",
		Expiration: 60,
	}

	tokenString, expiresAt, err := GenerateToken("driver-001", cfg)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	driverID, err := ValidateToken(tokenString, cfg.Secret)
	assert.NoError(t, err)
	assert.Equal(t, "driver-001", driverID)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := models.JWTConfig{Secret: "test-secret", Issuer: "fastaxi-dispatch", Expiration: 60}

	tokenString, _, err := GenerateToken("driver-001", cfg)
	assert.NoError(t, err)

	_, err = ValidateToken(tokenString, "other-secret")
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", "test-secret")
	assert.Error(t, err)
}
