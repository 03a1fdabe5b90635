//go:build unit || e2e

package builder

import (
	"time"

	"hotel-front/internal/domain/user"
	"hotel-front/internal/infra/upstream"
	"hotel-front/internal/usecase/shared"

	"github.com/google/uuid"
)

type SessionBuilder struct {
	ID           uuid.UUID
	UserID       int64
	Username     string
	FirstName    string
	LastName     string
	Email        string
	Role         user.Role
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{
		ID:           uuid.New(),
		UserID:       7,
		Username:     "jan.kowalski",
		FirstName:    "Jan",
		LastName:     "Kowalski",
		Email:        "jan.kowalski@example.com",
		Role:         user.RoleGuest,
		AccessToken:  "upstream-access",
		RefreshToken: "upstream-refresh",
		ExpiresAt:    time.Now().Add(time.Hour).Truncate(time.Second),
	}
}

func (b *SessionBuilder) With(mutate func(*SessionBuilder)) *SessionBuilder {
	mutate(b)
	return b
}

func (b *SessionBuilder) WithRole(role user.Role) *SessionBuilder {
	b.Role = role
	return b
}

func (b *SessionBuilder) AsEmployee() *SessionBuilder {
	return b.WithRole(user.RoleEmployee)
}

func (b *SessionBuilder) AsManager() *SessionBuilder {
	return b.WithRole(user.RoleManager)
}

func (b *SessionBuilder) Build() shared.Session {
	return shared.Session{
		ID:           b.ID,
		Username:     b.Username,
		Role:         b.Role,
		AccessToken:  b.AccessToken,
		RefreshToken: b.RefreshToken,
		ExpiresAt:    b.ExpiresAt,
	}
}

func (b *SessionBuilder) BuildUserDetails() *upstream.UserDetails {
	return &upstream.UserDetails{
		ID:        b.UserID,
		Username:  b.Username,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Email:     b.Email,
		Role:      b.Role.String(),
	}
}
