package shared

import (
	"context"
	"time"

	"hotel-front/internal/domain/cart"
	"hotel-front/internal/domain/user"

	"github.com/google/uuid"
)

// Session is the authenticated browser session as decoded from its token.
// AccessToken and RefreshToken belong to the hotel API and are forwarded on
// every upstream call made for this session.
type Session struct {
	ID           uuid.UUID
	Username     string
	Role         user.Role
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// CartRepository opens the carts owned by a session. Reservations and
// Services return a read snapshot; mutations go through the Update methods,
// which run fn with exclusive access to the cart until it returns.
type CartRepository interface {
	Reservations(ctx context.Context, sess Session) (*cart.Store[cart.ReservationItem], error)
	Services(ctx context.Context, sess Session) (*cart.Store[cart.ServiceItem], error)
	UpdateReservations(ctx context.Context, sess Session, fn func(*cart.Store[cart.ReservationItem]) error) error
	UpdateServices(ctx context.Context, sess Session, fn func(*cart.Store[cart.ServiceItem]) error) error
}
