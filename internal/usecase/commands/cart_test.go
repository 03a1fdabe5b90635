//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"hotel-front/internal/domain/cart"
	"hotel-front/internal/domain/user"
	"hotel-front/internal/infra/cartstore"
	"hotel-front/internal/pkg/clock"
	"hotel-front/internal/pkg/errs"
	"hotel-front/internal/pkg/metrics"
	"hotel-front/internal/usecase/commands"
	"hotel-front/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartRepo() (*cartstore.Repository, *cartstore.MemoryBackend) {
	c := clock.NewMockClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	backend := cartstore.NewMemoryBackend(c)
	policy := cartstore.Policy{Retention: cartstore.RetentionIndefinite}
	return cartstore.NewRepository(backend, policy, "test", c, nil), backend
}

// slowBackend widens the window between loading and saving a cart.
type slowBackend struct {
	*cartstore.MemoryBackend
	delay time.Duration
}

func (b slowBackend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	time.Sleep(b.delay)
	return b.MemoryBackend.Get(ctx, key)
}

func newSession() shared.Session {
	return shared.Session{ID: uuid.New(), Username: "alice", Role: user.RoleGuest, AccessToken: "acc"}
}

func stay(t *testing.T, number, checkIn, checkOut string, guests int) cart.ReservationItem {
	t.Helper()
	in, err := cart.ParseDate(checkIn)
	require.NoError(t, err)
	out, err := cart.ParseDate(checkOut)
	require.NoError(t, err)
	return cart.ReservationItem{RoomNumber: number, CheckIn: in, CheckOut: out, GuestCount: guests}
}

func TestCartCommandsReservations(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate add reports added=false", func(t *testing.T) {
		repo, _ := newCartRepo()
		cmds := commands.NewCartCommands(repo, nil)
		sess := newSession()

		first, err := cmds.AddReservation(ctx, sess, stay(t, "101", "2024-05-01", "2024-05-03", 2))
		require.NoError(t, err)
		assert.True(t, first.Added)

		second, err := cmds.AddReservation(ctx, sess, stay(t, "101", "2024-05-01", "2024-05-03", 4))
		require.NoError(t, err)
		assert.False(t, second.Added)
		require.Len(t, second.Items, 1)
		assert.Equal(t, 2, second.Items[0].GuestCount)
	})

	t.Run("invalid items never reach the store", func(t *testing.T) {
		repo, backend := newCartRepo()
		cmds := commands.NewCartCommands(repo, nil)
		sess := newSession()

		_, err := cmds.AddReservation(ctx, sess, stay(t, "101", "2024-05-03", "2024-05-01", 2))
		require.Error(t, err)
		assert.True(t, errs.Is(err, shared.ErrInvalidInput))
		assert.True(t, errs.Is(err, cart.ErrInvalidStay))

		_, err = cmds.SetReservations(ctx, sess, []cart.ReservationItem{
			stay(t, "101", "2024-05-01", "2024-05-03", 2),
			stay(t, "102", "2024-05-01", "2024-05-03", 0),
		})
		assert.True(t, errs.Is(err, shared.ErrInvalidInput))

		_, ok, _ := backend.Get(ctx, cartstore.Key("test", sess.ID.String(), cart.ReservationsKey))
		assert.False(t, ok)
	})

	t.Run("remove and clear", func(t *testing.T) {
		repo, backend := newCartRepo()
		cmds := commands.NewCartCommands(repo, nil)
		sess := newSession()
		a := stay(t, "101", "2024-05-01", "2024-05-03", 2)
		b := stay(t, "102", "2024-05-01", "2024-05-03", 2)

		_, err := cmds.SetReservations(ctx, sess, []cart.ReservationItem{a, b})
		require.NoError(t, err)

		res, err := cmds.RemoveReservation(ctx, sess, a)
		require.NoError(t, err)
		assert.Equal(t, []cart.ReservationItem{b}, res.Items)

		require.NoError(t, cmds.ClearReservations(ctx, sess))
		_, ok, _ := backend.Get(ctx, cartstore.Key("test", sess.ID.String(), cart.ReservationsKey))
		assert.False(t, ok)
	})
}

func TestCartCommandsServices(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	repo, _ := newCartRepo()
	cmds := commands.NewCartCommands(repo, metrics.NewRecorder(reg))
	sess := newSession()

	massage := cart.ServiceItem{ServiceID: 7, SlotID: 1, Title: "Massage", Date: "2024-05-02T10:00:00", Duration: 60, Price: decimal.RequireFromString("120")}

	res, err := cmds.AddService(ctx, sess, massage)
	require.NoError(t, err)
	assert.True(t, res.Added)

	_, err = cmds.AddService(ctx, sess, cart.ServiceItem{ServiceID: 7})
	assert.True(t, errs.Is(err, shared.ErrInvalidInput))

	res, err = cmds.SetServices(ctx, sess, []cart.ServiceItem{massage, massage})
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)

	res, err = cmds.RemoveService(ctx, sess, cart.ServiceItem{ServiceID: 7, SlotID: 1})
	require.NoError(t, err)
	assert.Empty(t, res.Items)

	require.NoError(t, cmds.ClearServices(ctx, sess))

	families, err := reg.Gather()
	require.NoError(t, err)
	var total float64
	for _, mf := range families {
		if mf.GetName() == "cart_mutations_total" {
			for _, m := range mf.GetMetric() {
				total += m.GetCounter().GetValue()
			}
		}
	}
	assert.Equal(t, float64(4), total)
}

func TestCartCommandsConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	c := clock.NewMockClock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	backend := slowBackend{MemoryBackend: cartstore.NewMemoryBackend(c), delay: 10 * time.Millisecond}
	repo := cartstore.NewRepository(backend, cartstore.Policy{Retention: cartstore.RetentionIndefinite}, "test", c, nil)
	cmds := commands.NewCartCommands(repo, nil)
	sess := newSession()

	const n = 8
	items := make([]cart.ReservationItem, n)
	for i := range n {
		items[i] = stay(t, fmt.Sprintf("%d", 101+i), "2024-05-01", "2024-05-03", 2)
	}

	var wg sync.WaitGroup
	results := make([]*commands.CartResult[cart.ReservationItem], n)
	addErrs := make([]error, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], addErrs[i] = cmds.AddReservation(ctx, sess, items[i])
		}()
	}
	wg.Wait()

	for i := range n {
		require.NoError(t, addErrs[i])
		assert.True(t, results[i].Added)
	}

	store, err := repo.Reservations(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, n, store.Count(), "every acknowledged add must be persisted")
}
