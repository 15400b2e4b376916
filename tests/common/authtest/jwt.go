//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"pet-resort-api/internal/domain/user"
	"pet-resort-api/internal/pkg/clock"
	"pet-resort-api/internal/pkg/config"
	"pet-resort-api/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens with the same secret the application under test verifies with.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, err := h.cfg.ParseDuration()
	require.NoError(t, err)
	return h.issue(t, clock.NewRealClock(), duration, userID, role)
}

// CreateExpiredToken issues a one hour token from a clock two hours behind.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	return h.issue(t, clock.NewMockClock(time.Now().Add(-2*time.Hour)), time.Hour, userID, role)
}

func (h *JWTHelper) issue(t *testing.T, c clock.Clock, d time.Duration, userID uuid.UUID, role user.Role) string {
	t.Helper()
	service, err := jwt.NewService(h.cfg.Secret, d, c)
	require.NoError(t, err)
	token, err := service.Issue(userID, role)
	require.NoError(t, err)
	return token
}
