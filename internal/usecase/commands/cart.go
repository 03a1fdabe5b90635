package commands

import (
	"context"

	"hotel-front/internal/domain/cart"
	"hotel-front/internal/pkg/errs"
	"hotel-front/internal/pkg/metrics"
	"hotel-front/internal/usecase/shared"
)

// CartResult is a cart after a mutation. Added is false when an add was a
// duplicate and nothing changed.
type CartResult[T cart.Item] struct {
	Items []T
	Added bool
}

type CartCommands interface {
	AddReservation(ctx context.Context, sess shared.Session, item cart.ReservationItem) (*CartResult[cart.ReservationItem], error)
	SetReservations(ctx context.Context, sess shared.Session, items []cart.ReservationItem) (*CartResult[cart.ReservationItem], error)
	RemoveReservation(ctx context.Context, sess shared.Session, item cart.ReservationItem) (*CartResult[cart.ReservationItem], error)
	ClearReservations(ctx context.Context, sess shared.Session) error

	AddService(ctx context.Context, sess shared.Session, item cart.ServiceItem) (*CartResult[cart.ServiceItem], error)
	SetServices(ctx context.Context, sess shared.Session, items []cart.ServiceItem) (*CartResult[cart.ServiceItem], error)
	RemoveService(ctx context.Context, sess shared.Session, item cart.ServiceItem) (*CartResult[cart.ServiceItem], error)
	ClearServices(ctx context.Context, sess shared.Session) error
}

type cartCommandsImpl struct {
	carts   shared.CartRepository
	metrics *metrics.Recorder
}

func NewCartCommands(carts shared.CartRepository, rec *metrics.Recorder) CartCommands {
	return &cartCommandsImpl{carts: carts, metrics: rec}
}

type validatable interface {
	cart.Item
	Validate() error
}

func validateAll[T validatable](items ...T) error {
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return errs.Mark(err, shared.ErrInvalidInput)
		}
	}
	return nil
}

func add[T validatable](ctx context.Context, store *cart.Store[T], item T) (*CartResult[T], error) {
	added, err := store.Add(ctx, item)
	if err != nil {
		return nil, err
	}
	return &CartResult[T]{Items: store.Items(), Added: added}, nil
}

func setAll[T validatable](ctx context.Context, store *cart.Store[T], items []T) (*CartResult[T], error) {
	if err := store.SetAll(ctx, items); err != nil {
		return nil, err
	}
	return &CartResult[T]{Items: store.Items()}, nil
}

// remove only needs the key fields, so the item is not validated.
func remove[T cart.Item](ctx context.Context, store *cart.Store[T], item T) (*CartResult[T], error) {
	if err := store.Remove(ctx, item); err != nil {
		return nil, err
	}
	return &CartResult[T]{Items: store.Items()}, nil
}

type mutation[T cart.Item] func(ctx context.Context, store *cart.Store[T]) (*CartResult[T], error)

// mutate runs op under the cart's update lock and returns what it produced.
func mutate[T cart.Item](
	ctx context.Context,
	update func(context.Context, shared.Session, func(*cart.Store[T]) error) error,
	sess shared.Session,
	op mutation[T],
) (*CartResult[T], error) {
	var res *CartResult[T]
	err := update(ctx, sess, func(store *cart.Store[T]) error {
		var err error
		res, err = op(ctx, store)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (c *cartCommandsImpl) AddReservation(ctx context.Context, sess shared.Session, item cart.ReservationItem) (*CartResult[cart.ReservationItem], error) {
	if err := validateAll(item); err != nil {
		return nil, err
	}
	res, err := mutate(ctx, c.carts.UpdateReservations, sess, func(ctx context.Context, store *cart.Store[cart.ReservationItem]) (*CartResult[cart.ReservationItem], error) {
		return add(ctx, store, item)
	})
	if err == nil && res.Added {
		c.metrics.IncCartMutation(cart.ReservationsKey, "add")
	}
	return res, err
}

func (c *cartCommandsImpl) SetReservations(ctx context.Context, sess shared.Session, items []cart.ReservationItem) (*CartResult[cart.ReservationItem], error) {
	if err := validateAll(items...); err != nil {
		return nil, err
	}
	res, err := mutate(ctx, c.carts.UpdateReservations, sess, func(ctx context.Context, store *cart.Store[cart.ReservationItem]) (*CartResult[cart.ReservationItem], error) {
		return setAll(ctx, store, items)
	})
	if err == nil {
		c.metrics.IncCartMutation(cart.ReservationsKey, "set_all")
	}
	return res, err
}

func (c *cartCommandsImpl) RemoveReservation(ctx context.Context, sess shared.Session, item cart.ReservationItem) (*CartResult[cart.ReservationItem], error) {
	res, err := mutate(ctx, c.carts.UpdateReservations, sess, func(ctx context.Context, store *cart.Store[cart.ReservationItem]) (*CartResult[cart.ReservationItem], error) {
		return remove(ctx, store, item)
	})
	if err == nil {
		c.metrics.IncCartMutation(cart.ReservationsKey, "remove")
	}
	return res, err
}

func (c *cartCommandsImpl) ClearReservations(ctx context.Context, sess shared.Session) error {
	err := c.carts.UpdateReservations(ctx, sess, func(store *cart.Store[cart.ReservationItem]) error {
		return store.Clear(ctx)
	})
	if err != nil {
		return err
	}
	c.metrics.IncCartMutation(cart.ReservationsKey, "clear")
	return nil
}

func (c *cartCommandsImpl) AddService(ctx context.Context, sess shared.Session, item cart.ServiceItem) (*CartResult[cart.ServiceItem], error) {
	if err := validateAll(item); err != nil {
		return nil, err
	}
	res, err := mutate(ctx, c.carts.UpdateServices, sess, func(ctx context.Context, store *cart.Store[cart.ServiceItem]) (*CartResult[cart.ServiceItem], error) {
		return add(ctx, store, item)
	})
	if err == nil && res.Added {
		c.metrics.IncCartMutation(cart.ServicesKey, "add")
	}
	return res, err
}

func (c *cartCommandsImpl) SetServices(ctx context.Context, sess shared.Session, items []cart.ServiceItem) (*CartResult[cart.ServiceItem], error) {
	if err := validateAll(items...); err != nil {
		return nil, err
	}
	res, err := mutate(ctx, c.carts.UpdateServices, sess, func(ctx context.Context, store *cart.Store[cart.ServiceItem]) (*CartResult[cart.ServiceItem], error) {
		return setAll(ctx, store, items)
	})
	if err == nil {
		c.metrics.IncCartMutation(cart.ServicesKey, "set_all")
	}
	return res, err
}

func (c *cartCommandsImpl) RemoveService(ctx context.Context, sess shared.Session, item cart.ServiceItem) (*CartResult[cart.ServiceItem], error) {
	res, err := mutate(ctx, c.carts.UpdateServices, sess, func(ctx context.Context, store *cart.Store[cart.ServiceItem]) (*CartResult[cart.ServiceItem], error) {
		return remove(ctx, store, item)
	})
	if err == nil {
		c.metrics.IncCartMutation(cart.ServicesKey, "remove")
	}
	return res, err
}

func (c *cartCommandsImpl) ClearServices(ctx context.Context, sess shared.Session) error {
	err := c.carts.UpdateServices(ctx, sess, func(store *cart.Store[cart.ServiceItem]) error {
		return store.Clear(ctx)
	})
	if err != nil {
		return err
	}
	c.metrics.IncCartMutation(cart.ServicesKey, "clear")
	return nil
}
