package jwt

import (
	"errors"
	"time"

	"hotel-front/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims carry the browser session, including the upstream API tokens the BFF
// forwards on the user's behalf.
type Claims struct {
	SessionID       uuid.UUID `json:"sid"`
	Username        string    `json:"username"`
	Role            string    `json:"role"`
	UpstreamAccess  string    `json:"upa"`
	UpstreamRefresh string    `json:"upr,omitempty"`
	jwt.RegisteredClaims
}

type UpstreamTokens struct {
	Access  string
	Refresh string
}

type Service struct {
	secretKey     []byte
	tokenDuration time.Duration
	now           func() time.Time
}

func NewService(secretKey string, tokenDuration time.Duration) *Service {
	return &Service{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
		now:           time.Now,
	}
}

func (s *Service) TokenDuration() time.Duration {
	return s.tokenDuration
}

func (s *Service) GenerateToken(sessionID uuid.UUID, username string, role user.Role, upstream UpstreamTokens) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.tokenDuration)
	claims := Claims{
		SessionID:       sessionID,
		Username:        username,
		Role:            role.String(),
		UpstreamAccess:  upstream.Access,
		UpstreamRefresh: upstream.Refresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ID:        sessionID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.SessionID == uuid.Nil || claims.UpstreamAccess == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
