//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"school-booking/internal/domain/user"
	"school-booking/internal/pkg/config"
	"school-booking/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// BearerToken issues a token the way the external account service would.
// The booking API only validates tokens, so tests mint their own.
func BearerToken(t *testing.T, cfg config.JWTConfig, userID uuid.UUID, role user.Role) string {
	t.Helper()

	duration, err := time.ParseDuration(cfg.Duration)
	require.NoError(t, err)

	token, err := jwt.NewService(cfg.Secret, duration).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

// ExpiredToken issues a token that is already past its expiry.
func ExpiredToken(t *testing.T, cfg config.JWTConfig, userID uuid.UUID, role user.Role) string {
	t.Helper()

	token, err := jwt.NewService(cfg.Secret, 1*time.Millisecond).GenerateToken(userID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
