//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"estate-booking/internal/domain/user"
	"estate-booking/internal/pkg/config"
	"estate-booking/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens the way the marketplace auth service does.
type JWTHelper struct {
	service *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{service: jwt.NewService(cfg.Secret)}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID string, role user.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, string(role), time.Hour)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID string, role user.Role) string {
	t.Helper()
	token, err := h.service.GenerateToken(userID, string(role), -time.Minute)
	require.NoError(t, err)
	return token
}
