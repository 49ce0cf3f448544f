package auth

import (
	"testing"
	"time"

	"catalog/config"
	"catalog/internal/domain/entity"
	"catalog/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessSecret = "test_access_secret_key_very_long_for_testing"

func newTestVerifier(t *testing.T) service.TokenVerifier {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testAccessSecret

	verifier, err := NewJWTVerifier(cfg)
	require.NoError(t, err)

	return verifier
}

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestJWTVerifier_ValidAccessToken(t *testing.T) {
	verifier := newTestVerifier(t)
	userID := uuid.New()

	token := signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), jwt.MapClaims{
		"sub":   userID.String(),
		"roles": []string{"VENDOR", "ADMIN", "SUPERUSER"},
		"type":  "access",
		"exp":   time.Now().Add(time.Minute).Unix(),
	})

	caller, err := verifier.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, caller.UserID)
	assert.Equal(t, entity.Roles{entity.RoleVendor, entity.RoleAdmin}, caller.Roles)
	assert.True(t, caller.HasRole(entity.RoleAdmin))
	assert.False(t, caller.HasRole(entity.RoleCustomer))
}

func TestJWTVerifier_RejectsBadTokens(t *testing.T) {
	verifier := newTestVerifier(t)
	userID := uuid.New().String()
	future := time.Now().Add(time.Minute).Unix()

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{
			name: "wrong secret",
			token: signToken(t, jwt.SigningMethodHS256, []byte("another-secret"), jwt.MapClaims{
				"sub": userID, "exp": future,
			}),
		},
		{
			name: "expired",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), jwt.MapClaims{
				"sub": userID, "exp": time.Now().Add(-time.Minute).Unix(),
			}),
		},
		{
			name: "no expiry",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), jwt.MapClaims{
				"sub": userID,
			}),
		},
		{
			name: "wrong algorithm",
			token: signToken(t, jwt.SigningMethodHS512, []byte(testAccessSecret), jwt.MapClaims{
				"sub": userID, "exp": future,
			}),
		},
		{
			name: "refresh token",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), jwt.MapClaims{
				"sub": userID, "exp": future, "type": "refresh",
			}),
		},
		{
			name: "subject not a uuid",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testAccessSecret), jwt.MapClaims{
				"sub": "alice", "exp": future,
			}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.VerifyAccessToken(tt.token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, service.ErrInvalidToken))
		})
	}
}

func TestNewJWTVerifier_RequiresSecret(t *testing.T) {
	_, err := NewJWTVerifier(&config.Config{})
	assert.Error(t, err)
}
