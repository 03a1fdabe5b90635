package cartstore

import (
	"context"
	"log/slog"

	"hotel-front/internal/domain/cart"
	"hotel-front/internal/pkg/clock"
	"hotel-front/internal/pkg/errs"
	"hotel-front/internal/usecase/shared"
)

// Repository opens per-session carts on a shared backend. Updates to one cart
// are serialized within the process; reads see the last committed sequence.
type Repository struct {
	locks     *keyedLocker
	backend   Backend
	policy    Policy
	namespace string
	clock     clock.Clock
	logger    *slog.Logger
}

func NewRepository(backend Backend, policy Policy, namespace string, c clock.Clock, logger *slog.Logger) *Repository {
	if c == nil {
		c = clock.NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		locks:     newKeyedLocker(),
		backend:   backend,
		policy:    policy,
		namespace: namespace,
		clock:     c,
		logger:    logger,
	}
}

var _ shared.CartRepository = (*Repository)(nil)

func (r *Repository) Reservations(ctx context.Context, sess shared.Session) (*cart.Store[cart.ReservationItem], error) {
	return openStore[cart.ReservationItem](ctx, r, sess, cart.ReservationsKey)
}

func (r *Repository) Services(ctx context.Context, sess shared.Session) (*cart.Store[cart.ServiceItem], error) {
	return openStore[cart.ServiceItem](ctx, r, sess, cart.ServicesKey)
}

func (r *Repository) UpdateReservations(ctx context.Context, sess shared.Session, fn func(*cart.Store[cart.ReservationItem]) error) error {
	return update(ctx, r, sess, cart.ReservationsKey, fn)
}

func (r *Repository) UpdateServices(ctx context.Context, sess shared.Session, fn func(*cart.Store[cart.ServiceItem]) error) error {
	return update(ctx, r, sess, cart.ServicesKey, fn)
}

// update holds the cart's lock from load until fn returns, so concurrent
// requests of one session never overwrite each other's writes.
func update[T cart.Item](ctx context.Context, r *Repository, sess shared.Session, cartKey string, fn func(*cart.Store[T]) error) error {
	key := Key(r.namespace, sess.ID.String(), cartKey)
	unlock, err := r.locks.lock(ctx, key)
	if err != nil {
		return errs.Wrap(err, "failed to acquire cart lock")
	}
	defer unlock()

	store, err := openAt[T](ctx, r, sess, key)
	if err != nil {
		return err
	}
	return fn(store)
}

func openStore[T cart.Item](ctx context.Context, r *Repository, sess shared.Session, cartKey string) (*cart.Store[T], error) {
	return openAt[T](ctx, r, sess, Key(r.namespace, sess.ID.String(), cartKey))
}

func openAt[T cart.Item](ctx context.Context, r *Repository, sess shared.Session, key string) (*cart.Store[T], error) {
	ttl := r.policy.TTL(r.clock.Now(), sess.ExpiresAt)
	persister := NewJSONPersister[T](r.backend, key, ttl, r.logger)
	return cart.Open[T](ctx, persister)
}
