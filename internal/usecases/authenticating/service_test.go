package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tortshark/campaign-analyst/internal/config"
	"github.com/tortshark/campaign-analyst/internal/domain"
	"github.com/tortshark/campaign-analyst/pkg/apiErrors"
)

func newTestService(secret string) *Service {
	return NewService(&config.Config{Auth: config.Auth{JWTSecret: secret}})
}

func TestService_ValidateToken(t *testing.T) {
	service := newTestService("super-secret")

	token, err := service.GenerateToken("user-1", domain.RoleAuthenticated, time.Hour)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, domain.RoleAuthenticated, claims.Role)
}

func TestService_ValidateToken_Errors(t *testing.T) {
	service := newTestService("super-secret")

	expired, err := service.GenerateToken("user-1", domain.RoleAuthenticated, -time.Minute)
	require.NoError(t, err)

	otherSecret, err := newTestService("other").GenerateToken("user-1", domain.RoleAuthenticated, time.Hour)
	require.NoError(t, err)

	noSubject, err := service.GenerateToken("", domain.RoleAuthenticated, time.Hour)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, domain.Claims{Role: domain.RoleServiceRole}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
		err   error
	}{
		{name: "expirado", token: expired, err: ErrExpiredToken},
		{name: "assinado com outro segredo", token: otherSecret, err: ErrInvalidToken},
		{name: "sem subject", token: noSubject, err: ErrInvalidToken},
		{name: "alg none", token: none, err: ErrInvalidToken},
		{name: "lixo", token: "not-a-jwt", err: ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ValidateToken(tt.token)
			assert.ErrorIs(t, err, tt.err)
			assert.True(t, IsAuthorizationError(err))
			if tt.err == ErrExpiredToken {
				assert.Equal(t, apiErrors.ErrExpiredToken, CodeOf(err))
			} else {
				assert.Equal(t, apiErrors.ErrInvalidToken, CodeOf(err))
			}
		})
	}
}

func TestService_ServiceRoleWithoutSubject(t *testing.T) {
	service := newTestService("super-secret")

	token, err := service.GenerateToken("", domain.RoleServiceRole, time.Hour)
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleServiceRole, claims.Role)
}

func TestService_MissingSecret(t *testing.T) {
	service := newTestService("")

	_, err := service.ValidateToken("anything")
	assert.ErrorIs(t, err, ErrMissingSecret)
	assert.False(t, IsAuthorizationError(err))
	assert.Equal(t, apiErrors.ErrInternalServer, CodeOf(err))

	_, err = service.GenerateToken("user-1", domain.RoleAuthenticated, time.Hour)
	assert.ErrorIs(t, err, ErrMissingSecret)
}
