//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotel-front/internal/domain/cart"
	"hotel-front/internal/infra/upstream"
	"hotel-front/internal/pkg/errs"
	"hotel-front/internal/usecase/commands"
	"hotel-front/internal/usecase/shared"
	commandsmock "hotel-front/tests/mock/commands"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCheckoutReservations(t *testing.T) {
	ctx := context.Background()

	t.Run("empty cart makes no call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := commandsmock.NewMockCheckoutGateway(ctrl)
		repo, _ := newCartRepo()
		cmds := commands.NewCheckoutCommands(repo, gw)

		_, err := cmds.CheckoutReservations(ctx, newSession())
		assert.True(t, errs.Is(err, commands.ErrEmptyCart))
	})

	t.Run("success submits the cart in order and clears it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := commandsmock.NewMockCheckoutGateway(ctrl)
		repo, _ := newCartRepo()
		cmds := commands.NewCheckoutCommands(repo, gw)
		sess := newSession()

		store, err := repo.Reservations(ctx, sess)
		require.NoError(t, err)
		require.NoError(t, store.SetAll(ctx, []cart.ReservationItem{
			stay(t, "102", "2024-05-01", "2024-05-03", 2),
			stay(t, "101", "2024-05-04", "2024-05-05", 1),
		}))

		gw.EXPECT().CreateReservations(gomock.Any(), "acc", []upstream.ReservationRequest{
			{Room: "102", CheckIn: "2024-05-01", CheckOut: "2024-05-03", GuestCount: 2},
			{Room: "101", CheckIn: "2024-05-04", CheckOut: "2024-05-05", GuestCount: 1},
		}).Return([]upstream.Reservation{{ID: 1}, {ID: 2}}, nil)

		created, err := cmds.CheckoutReservations(ctx, sess)
		require.NoError(t, err)
		assert.Len(t, created, 2)

		reopened, err := repo.Reservations(ctx, sess)
		require.NoError(t, err)
		assert.Zero(t, reopened.Count())
	})

	t.Run("an add racing the checkout is kept for the next one", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := commandsmock.NewMockCheckoutGateway(ctrl)
		repo, _ := newCartRepo()
		cmds := commands.NewCheckoutCommands(repo, gw)
		carts := commands.NewCartCommands(repo, nil)
		sess := newSession()

		_, err := carts.AddReservation(ctx, sess, stay(t, "101", "2024-05-01", "2024-05-03", 2))
		require.NoError(t, err)
		late := stay(t, "102", "2024-05-06", "2024-05-08", 1)

		added := make(chan error, 1)
		gw.EXPECT().CreateReservations(gomock.Any(), "acc", []upstream.ReservationRequest{
			{Room: "101", CheckIn: "2024-05-01", CheckOut: "2024-05-03", GuestCount: 2},
		}).DoAndReturn(func(context.Context, string, []upstream.ReservationRequest) ([]upstream.Reservation, error) {
			go func() {
				_, err := carts.AddReservation(ctx, sess, late)
				added <- err
			}()
			time.Sleep(20 * time.Millisecond)
			return []upstream.Reservation{{ID: 1}}, nil
		})

		_, err = cmds.CheckoutReservations(ctx, sess)
		require.NoError(t, err)
		require.NoError(t, <-added)

		reopened, err := repo.Reservations(ctx, sess)
		require.NoError(t, err)
		assert.Equal(t, []cart.ReservationItem{late}, reopened.Items())
	})

	t.Run("failure keeps the cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gw := commandsmock.NewMockCheckoutGateway(ctrl)
		repo, _ := newCartRepo()
		cmds := commands.NewCheckoutCommands(repo, gw)
		sess := newSession()

		store, err := repo.Reservations(ctx, sess)
		require.NoError(t, err)
		_, err = store.Add(ctx, stay(t, "101", "2024-05-01", "2024-05-03", 2))
		require.NoError(t, err)

		gw.EXPECT().CreateReservations(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &upstream.Error{Kind: upstream.KindNetwork})

		_, err = cmds.CheckoutReservations(ctx, sess)
		assert.True(t, errs.Is(err, shared.ErrUpstreamUnavailable))

		reopened, err := repo.Reservations(ctx, sess)
		require.NoError(t, err)
		assert.Equal(t, 1, reopened.Count())
	})
}

func TestCheckoutServices(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	gw := commandsmock.NewMockCheckoutGateway(ctrl)
	repo, _ := newCartRepo()
	cmds := commands.NewCheckoutCommands(repo, gw)
	sess := newSession()

	_, err := cmds.CheckoutServices(ctx, sess)
	require.True(t, errs.Is(err, commands.ErrEmptyCart))

	store, err := repo.Services(ctx, sess)
	require.NoError(t, err)
	_, err = store.Add(ctx, cart.ServiceItem{ServiceID: 7, SlotID: 3, Price: decimal.RequireFromString("50")})
	require.NoError(t, err)

	gw.EXPECT().OrderServices(gomock.Any(), "acc", []upstream.ServiceOrderRequest{{ServiceID: 7, SlotID: 3}}).
		Return([]upstream.ServiceOrder{{ID: 9, ServiceID: 7, SlotID: 3, Status: "REQUESTED"}}, nil)

	orders, err := cmds.CheckoutServices(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, int64(9), orders[0].ID)

	reopened, err := repo.Services(ctx, sess)
	require.NoError(t, err)
	assert.Zero(t, reopened.Count())
}
