//go:build unit

package commands_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"hotel-front/internal/domain/user"
	"hotel-front/internal/infra/upstream"
	"hotel-front/internal/pkg/errs"
	"hotel-front/internal/pkg/jwt"
	"hotel-front/internal/usecase/commands"
	"hotel-front/internal/usecase/shared"
	commandsmock "hotel-front/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthCommands(t *testing.T) (commands.AuthCommands, *commandsmock.MockAuthGateway, *jwt.Service) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := commandsmock.NewMockAuthGateway(ctrl)
	jwtService := jwt.NewService("test-secret", time.Hour)
	return commands.NewAuthCommands(gw, jwtService), gw, jwtService
}

func mustCredentials(t *testing.T, username, password string) user.Credentials {
	t.Helper()
	creds, err := user.NewCredentials(username, password)
	require.NoError(t, err)
	return creds
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("success issues a session carrying the upstream tokens", func(t *testing.T) {
		cmds, gw, jwtService := newAuthCommands(t)
		gw.EXPECT().ObtainToken(gomock.Any(), "alice", "secret").
			Return(&upstream.TokenPair{Access: "acc", Refresh: "ref"}, nil)
		gw.EXPECT().UserDetails(gomock.Any(), "acc").
			Return(&upstream.UserDetails{ID: 1, Username: "alice", Role: "employee"}, nil)

		result, err := cmds.Login(ctx, mustCredentials(t, "alice", "secret"))
		require.NoError(t, err)
		assert.Equal(t, user.RoleEmployee, result.Session.Role)
		assert.NotEqual(t, uuid.Nil, result.Session.ID)

		claims, err := jwtService.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, result.Session.ID, claims.SessionID)
		assert.Equal(t, "acc", claims.UpstreamAccess)
		assert.Equal(t, "ref", claims.UpstreamRefresh)
		assert.Equal(t, "EMPLOYEE", claims.Role)
	})

	t.Run("unknown upstream role falls back to guest", func(t *testing.T) {
		cmds, gw, _ := newAuthCommands(t)
		gw.EXPECT().ObtainToken(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&upstream.TokenPair{Access: "acc"}, nil)
		gw.EXPECT().UserDetails(gomock.Any(), "acc").
			Return(&upstream.UserDetails{Username: "bob", Role: "janitor"}, nil)

		result, err := cmds.Login(ctx, mustCredentials(t, "bob", "secret"))
		require.NoError(t, err)
		assert.Equal(t, user.RoleGuest, result.Session.Role)
	})

	t.Run("maps upstream failures", func(t *testing.T) {
		tests := []struct {
			name    string
			err     error
			wantErr error
		}{
			{"401 is invalid credentials", &upstream.Error{Kind: upstream.KindUnauthorized, Status: http.StatusUnauthorized}, commands.ErrInvalidCredentials},
			{"400 is invalid credentials", &upstream.Error{Kind: upstream.KindInvalid, Status: http.StatusBadRequest}, commands.ErrInvalidCredentials},
			{"403 is a forbidden account", &upstream.Error{Kind: upstream.KindForbidden, Status: http.StatusForbidden}, commands.ErrAccountForbidden},
			{"network failure", &upstream.Error{Kind: upstream.KindNetwork}, shared.ErrUpstreamUnavailable},
			{"timeout", &upstream.Error{Kind: upstream.KindTimeout}, shared.ErrUpstreamTimeout},
			{"server error", &upstream.Error{Kind: upstream.KindServer, Status: http.StatusInternalServerError}, shared.ErrUpstreamFailure},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				cmds, gw, _ := newAuthCommands(t)
				gw.EXPECT().ObtainToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

				_, err := cmds.Login(ctx, mustCredentials(t, "alice", "secret"))
				require.Error(t, err)
				assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
			})
		}
	})
}

func TestRefresh(t *testing.T) {
	ctx := context.Background()
	sess := shared.Session{ID: uuid.New(), Username: "alice", Role: user.RoleGuest, AccessToken: "old", RefreshToken: "ref"}

	t.Run("keeps the session id", func(t *testing.T) {
		cmds, gw, _ := newAuthCommands(t)
		gw.EXPECT().RefreshToken(gomock.Any(), "ref").Return(&upstream.TokenPair{Access: "new", Refresh: "ref"}, nil)
		gw.EXPECT().UserDetails(gomock.Any(), "new").Return(&upstream.UserDetails{Username: "alice", Role: "GUEST"}, nil)

		result, err := cmds.Refresh(ctx, sess)
		require.NoError(t, err)
		assert.Equal(t, sess.ID, result.Session.ID)
		assert.Equal(t, "new", result.Session.AccessToken)
	})

	t.Run("no refresh token means the session is over", func(t *testing.T) {
		cmds, _, _ := newAuthCommands(t)
		noRefresh := sess
		noRefresh.RefreshToken = ""

		_, err := cmds.Refresh(ctx, noRefresh)
		assert.True(t, errs.Is(err, shared.ErrSessionExpired))
	})

	t.Run("rejected refresh token expires the session", func(t *testing.T) {
		cmds, gw, _ := newAuthCommands(t)
		gw.EXPECT().RefreshToken(gomock.Any(), "ref").Return(nil, &upstream.Error{Kind: upstream.KindUnauthorized})

		_, err := cmds.Refresh(ctx, sess)
		assert.True(t, errs.Is(err, shared.ErrSessionExpired))
	})
}
