package auth

import (
	"testing"
	"time"

	"webshop/config"
	"webshop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.AccessTTL = time.Minute

	return cfg
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(t))
	require.NoError(t, err)

	userID := uuid.New()

	token, err := jwtService.GenerateAccessToken(userID, entity.RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
}

func TestJWTService_RejectsMissingSecret(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(t))
	require.NoError(t, err)

	token, err := jwtService.GenerateAccessToken(uuid.New(), entity.RoleClient)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token + "tampered")
	assert.Error(t, err)
}

func TestJWTService_RejectsTokenSignedWithOtherSecret(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(t))
	require.NoError(t, err)

	otherCfg := testConfig(t)
	otherCfg.SecretKey.Access = "another_secret_key_entirely_for_testing"
	otherService, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := otherService.GenerateAccessToken(uuid.New(), entity.RoleClient)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_AccessTokenDuration(t *testing.T) {
	jwtService, err := NewJWTService(testConfig(t))
	require.NoError(t, err)

	assert.Equal(t, time.Minute, jwtService.AccessTokenDuration())

	cfg := testConfig(t)
	cfg.SecretKey.AccessTTL = 0
	defaulted, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, defaultAccessTTL, defaulted.AccessTokenDuration())
}
