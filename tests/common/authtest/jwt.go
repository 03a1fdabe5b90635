//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"hotel-front/internal/pkg/config"
	"hotel-front/internal/pkg/jwt"
	"hotel-front/internal/usecase/shared"

	"github.com/stretchr/testify/require"
)

type SessionHelper struct {
	cfg config.SessionConfig
}

func NewSessionHelper(cfg config.SessionConfig) *SessionHelper {
	return &SessionHelper{cfg: cfg}
}

// GenerateToken signs sess the way the login flow does.
func (h *SessionHelper) GenerateToken(t *testing.T, sess shared.Session) string {
	t.Helper()
	return h.sign(t, sess, h.cfg.Duration)
}

func (h *SessionHelper) CreateExpiredToken(t *testing.T, sess shared.Session) string {
	t.Helper()
	token := h.sign(t, sess, time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	return token
}

func (h *SessionHelper) sign(t *testing.T, sess shared.Session, d time.Duration) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, d)
	token, _, err := service.GenerateToken(sess.ID, sess.Username, sess.Role, jwt.UpstreamTokens{
		Access:  sess.AccessToken,
		Refresh: sess.RefreshToken,
	})
	require.NoError(t, err)
	return token
}
