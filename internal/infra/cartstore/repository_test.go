//go:build unit

package cartstore_test

import (
	"context"
	"testing"
	"time"

	"hotel-front/internal/domain/cart"
	"hotel-front/internal/domain/user"
	"hotel-front/internal/infra/cartstore"
	"hotel-front/internal/pkg/clock"
	"hotel-front/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c := clock.NewMockClock(now)
	backend := cartstore.NewMemoryBackend(c)
	policy := cartstore.Policy{Retention: cartstore.RetentionSession, SessionTTL: time.Hour}
	repo := cartstore.NewRepository(backend, policy, "hotel", c, nil)

	alice := shared.Session{ID: uuid.New(), Username: "alice", Role: user.RoleGuest, ExpiresAt: now.Add(time.Hour)}
	bob := shared.Session{ID: uuid.New(), Username: "bob", Role: user.RoleGuest, ExpiresAt: now.Add(time.Hour)}

	t.Run("carts survive reopening", func(t *testing.T) {
		store, err := repo.Reservations(ctx, alice)
		require.NoError(t, err)
		_, err = store.Add(ctx, reservation(t, "101", "2024-05-01", "2024-05-03"))
		require.NoError(t, err)

		reopened, err := repo.Reservations(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, 1, reopened.Count())

		_, ok, _ := backend.Get(ctx, cartstore.Key("hotel", alice.ID.String(), cart.ReservationsKey))
		assert.True(t, ok)
	})

	t.Run("sessions and cart kinds are isolated", func(t *testing.T) {
		other, err := repo.Reservations(ctx, bob)
		require.NoError(t, err)
		assert.Zero(t, other.Count())

		services, err := repo.Services(ctx, alice)
		require.NoError(t, err)
		assert.Zero(t, services.Count())

		_, err = services.Add(ctx, cart.ServiceItem{ServiceID: 3, SlotID: 9, Title: "Sauna", Price: decimal.RequireFromString("40")})
		require.NoError(t, err)

		reservations, err := repo.Reservations(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, 1, reservations.Count())
	})

	t.Run("carts expire with the session", func(t *testing.T) {
		c.Add(2 * time.Hour)
		store, err := repo.Reservations(ctx, alice)
		require.NoError(t, err)
		assert.Zero(t, store.Count())
	})
}
