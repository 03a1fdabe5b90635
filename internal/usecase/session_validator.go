package usecase

import (
	"hotel-front/internal/domain/user"
	"hotel-front/internal/pkg/jwt"
	"hotel-front/internal/usecase/shared"
)

// SessionValidator provides token validation for middleware
type SessionValidator interface {
	ValidateToken(tokenString string) (shared.Session, error)
}

type sessionValidatorImpl struct {
	jwtService *jwt.Service
}

func NewSessionValidator(jwtService *jwt.Service) SessionValidator {
	return &sessionValidatorImpl{
		jwtService: jwtService,
	}
}

func (v *sessionValidatorImpl) ValidateToken(tokenString string) (shared.Session, error) {
	claims, err := v.jwtService.ValidateToken(tokenString)
	if err != nil {
		return shared.Session{}, err
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return shared.Session{}, err
	}

	sess := shared.Session{
		ID:           claims.SessionID,
		Username:     claims.Username,
		Role:         role,
		AccessToken:  claims.UpstreamAccess,
		RefreshToken: claims.UpstreamRefresh,
	}
	if claims.ExpiresAt != nil {
		sess.ExpiresAt = claims.ExpiresAt.Time
	}
	return sess, nil
}
