package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/hbnb-api/internal/config"
	"github.com/stretchr/testify/require"
)

// DefaultJWTConfig returns an auth configuration suitable for tests.
func DefaultJWTConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:            "test-jwt-secret-that-is-32-chars-long",
		TokenLifetimeMinutes: 60,
		BcryptCost:           4,
	}
}

// NewTestJWTService builds a JWT service with a fixed secret, lifetime and clock.
func NewTestJWTService(secret string, lifetime time.Duration, timeFunc func() time.Time) JWTService {
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      timeFunc,
		clockSkew:     2 * time.Minute,
	}
}

// RequireTestJWTService creates a JWT service from DefaultJWTConfig.
func RequireTestJWTService(t *testing.T) JWTService {
	t.Helper()
	svc, err := NewJWTService(DefaultJWTConfig())
	require.NoError(t, err, "Failed to create test JWT service")
	return svc
}

// AuthHeaderForTesting returns a "Bearer <token>" header value signed by svc.
func AuthHeaderForTesting(t *testing.T, svc JWTService, userID uuid.UUID, isAdmin bool) string {
	t.Helper()
	token, err := svc.GenerateToken(context.Background(), userID, isAdmin)
	require.NoError(t, err, "Failed to generate auth token")
	return "Bearer " + token
}
