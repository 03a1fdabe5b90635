//go:build unit

package jwt

import (
	"testing"
	"time"

	"hotel-front/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := NewService("secret", time.Hour)
	fixed := time.Date(2025, 9, 8, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	sid := uuid.New()
	token, expiresAt, err := svc.GenerateToken(sid, "anna", user.RoleEmployee, UpstreamTokens{Access: "up-access", Refresh: "up-refresh"})
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(time.Hour), expiresAt)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, sid, claims.SessionID)
	assert.Equal(t, "anna", claims.Username)
	assert.Equal(t, "EMPLOYEE", claims.Role)
	assert.Equal(t, "up-access", claims.UpstreamAccess)
	assert.Equal(t, "up-refresh", claims.UpstreamRefresh)
}

func TestValidateTokenErrors(t *testing.T) {
	svc := NewService("secret", time.Hour)
	issued := time.Date(2025, 9, 8, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	token, _, err := svc.GenerateToken(uuid.New(), "anna", user.RoleGuest, UpstreamTokens{Access: "a"})
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		svc.now = func() time.Time { return issued.Add(2 * time.Hour) }
		defer func() { svc.now = func() time.Time { return issued } }()

		_, err := svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewService("other", time.Hour)
		other.now = svc.now
		_, err := other.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing upstream token", func(t *testing.T) {
		token, _, err := svc.GenerateToken(uuid.New(), "anna", user.RoleGuest, UpstreamTokens{})
		require.NoError(t, err)
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
