package auth

import (
	"testing"
	"time"

	"planner/config"
	"planner/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{TokenTTL: 24 * time.Hour}}
	cfg.SecretKey.Access = secret

	return cfg
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	token, err := jwtService.IssueToken("CUS01", "ana", entity.RoleCustomer)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "CUS01", claims.UserID)
	assert.Equal(t, "ana", claims.UserName)
	assert.Equal(t, entity.RoleCustomer, claims.Role)
	assert.Equal(t, "CUS01", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	claims, err := jwtService.VerifyToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig("secret-one"))
	require.NoError(t, err)
	verifier, err := NewJWTService(newTestConfig("secret-two"))
	require.NoError(t, err)

	token, err := issuer.IssueToken("AD01", "root", entity.RoleAdmin)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, jwt.ErrSignatureInvalid)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig("secret"))
	require.NoError(t, err)
	jwtSvc := svc.(*jwtService)

	jwtSvc.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	token, err := jwtSvc.IssueToken("CUS01", "ana", entity.RoleCustomer)
	require.NoError(t, err)

	jwtSvc.now = time.Now
	_, err = jwtSvc.VerifyToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}
