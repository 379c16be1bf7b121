package jwt

import (
	"testing"
	"time"

	"github.com/clinicdev/clinic-api/config"

	"github.com/stretchr/testify/assert"
)

func newTestService(secret string) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:        secret,
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newTestService("test-secret")

	token, tokenID, err := svc.GenerateAccessToken(42, "ana@clinic.test", "ADMIN")
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "ana@clinic.test", claims.Email)
	assert.Equal(t, "ADMIN", claims.Role)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestRefreshTokenType(t *testing.T) {
	svc := newTestService("test-secret")

	token, _, err := svc.GenerateRefreshToken(7, "bob@clinic.test", "USER")
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, RefreshToken, claims.TokenType)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, _, err := newTestService("secret-a").GenerateAccessToken(1, "x@y.test", "USER")
	assert.NoError(t, err)

	_, err = newTestService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	_, err := newTestService("s").ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestTokenIDsAreUnique(t *testing.T) {
	svc := newTestService("s")

	_, first, err := svc.GenerateAccessToken(1, "x@y.test", "USER")
	assert.NoError(t, err)
	_, second, err := svc.GenerateAccessToken(1, "x@y.test", "USER")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
}
