package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"hotel-front/internal/domain/user"
	"hotel-front/internal/infra/upstream"
	"hotel-front/internal/pkg/errs"
	"hotel-front/internal/pkg/jwt"
	"hotel-front/internal/usecase/shared"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrAccountForbidden   = errs.New("account forbidden")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	Session shared.Session
	Token   string
	User    *upstream.UserDetails
}

type AuthCommands interface {
	Login(ctx context.Context, credentials user.Credentials) (*LoginResult, error)
	Refresh(ctx context.Context, sess shared.Session) (*LoginResult, error)
}

type authCommandsImpl struct {
	gateway    AuthGateway
	jwtService *jwt.Service
}

func NewAuthCommands(gateway AuthGateway, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		gateway:    gateway,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, credentials user.Credentials) (*LoginResult, error) {
	pair, err := a.gateway.ObtainToken(ctx, credentials.Username().Value(), credentials.Password().Value())
	if err != nil {
		switch upstream.KindOf(err) {
		case upstream.KindUnauthorized, upstream.KindInvalid:
			return nil, errs.Mark(err, ErrInvalidCredentials)
		case upstream.KindForbidden:
			return nil, errs.Mark(err, ErrAccountForbidden)
		}
		return nil, shared.MapUpstreamError(err)
	}

	details, err := a.gateway.UserDetails(ctx, pair.Access)
	if err != nil {
		return nil, shared.MapUpstreamError(err)
	}

	return a.issue(uuid.New(), details, *pair)
}

// Refresh renews the upstream access token and reissues the session under the
// same id, so carts keyed by the session survive.
func (a *authCommandsImpl) Refresh(ctx context.Context, sess shared.Session) (*LoginResult, error) {
	if sess.RefreshToken == "" {
		return nil, shared.ErrSessionExpired
	}

	pair, err := a.gateway.RefreshToken(ctx, sess.RefreshToken)
	if err != nil {
		if upstream.IsKind(err, upstream.KindInvalid) {
			return nil, errs.Mark(err, shared.ErrSessionExpired)
		}
		return nil, shared.MapUpstreamError(err)
	}

	details, err := a.gateway.UserDetails(ctx, pair.Access)
	if err != nil {
		return nil, shared.MapUpstreamError(err)
	}

	return a.issue(sess.ID, details, *pair)
}

func (a *authCommandsImpl) issue(sessionID uuid.UUID, details *upstream.UserDetails, pair upstream.TokenPair) (*LoginResult, error) {
	role, err := user.NewRole(details.Role)
	if err != nil {
		slog.Warn("unknown upstream role, falling back to guest", "username", details.Username, "role", details.Role)
		role = user.RoleGuest
	}

	token, expiresAt, err := a.jwtService.GenerateToken(sessionID, details.Username, role, jwt.UpstreamTokens{
		Access:  pair.Access,
		Refresh: pair.Refresh,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Session: shared.Session{
			ID:           sessionID,
			Username:     details.Username,
			Role:         role,
			AccessToken:  pair.Access,
			RefreshToken: pair.Refresh,
			ExpiresAt:    expiresAt,
		},
		Token: token,
		User:  details,
	}, nil
}
