package commands

import (
	"context"
	"log/slog"

	"hotel-front/internal/domain/cart"
	"hotel-front/internal/infra/upstream"
	"hotel-front/internal/pkg/errs"
	"hotel-front/internal/usecase/shared"
)

var ErrEmptyCart = errs.New("cart is empty")

type CheckoutCommands interface {
	CheckoutReservations(ctx context.Context, sess shared.Session) ([]upstream.Reservation, error)
	CheckoutServices(ctx context.Context, sess shared.Session) ([]upstream.ServiceOrder, error)
}

type checkoutCommandsImpl struct {
	carts   shared.CartRepository
	gateway CheckoutGateway
}

func NewCheckoutCommands(carts shared.CartRepository, gateway CheckoutGateway) CheckoutCommands {
	return &checkoutCommandsImpl{carts: carts, gateway: gateway}
}

// CheckoutReservations submits the whole reservations cart in one request.
// The cart stays locked until the API answered, so nothing added meanwhile is
// cleared without being booked. It is cleared only after the API accepted it.
func (c *checkoutCommandsImpl) CheckoutReservations(ctx context.Context, sess shared.Session) ([]upstream.Reservation, error) {
	var created []upstream.Reservation
	err := c.carts.UpdateReservations(ctx, sess, func(store *cart.Store[cart.ReservationItem]) error {
		items := store.Items()
		if len(items) == 0 {
			return ErrEmptyCart
		}

		reqs := make([]upstream.ReservationRequest, 0, len(items))
		for _, it := range items {
			reqs = append(reqs, upstream.ReservationRequest{
				Room:       it.RoomNumber,
				CheckIn:    it.CheckIn.String(),
				CheckOut:   it.CheckOut.String(),
				GuestCount: it.GuestCount,
			})
		}

		var err error
		created, err = c.gateway.CreateReservations(ctx, sess.AccessToken, reqs)
		if err != nil {
			return shared.MapUpstreamError(err)
		}

		clearAfterCheckout(ctx, store, sess, cart.ReservationsKey)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (c *checkoutCommandsImpl) CheckoutServices(ctx context.Context, sess shared.Session) ([]upstream.ServiceOrder, error) {
	var orders []upstream.ServiceOrder
	err := c.carts.UpdateServices(ctx, sess, func(store *cart.Store[cart.ServiceItem]) error {
		items := store.Items()
		if len(items) == 0 {
			return ErrEmptyCart
		}

		reqs := make([]upstream.ServiceOrderRequest, 0, len(items))
		for _, it := range items {
			reqs = append(reqs, upstream.ServiceOrderRequest{ServiceID: it.ServiceID, SlotID: it.SlotID})
		}

		var err error
		orders, err = c.gateway.OrderServices(ctx, sess.AccessToken, reqs)
		if err != nil {
			return shared.MapUpstreamError(err)
		}

		clearAfterCheckout(ctx, store, sess, cart.ServicesKey)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// The order is already placed, so a failed clear is logged, not returned.
func clearAfterCheckout[T cart.Item](ctx context.Context, store *cart.Store[T], sess shared.Session, cartKey string) {
	if err := store.Clear(ctx); err != nil {
		slog.Error("failed to clear cart after checkout",
			"session_id", sess.ID.String(),
			"cart", cartKey,
			"error", err.Error())
	}
}
