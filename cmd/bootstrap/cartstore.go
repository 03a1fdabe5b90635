package bootstrap

import (
	"context"
	"log/slog"

	"hotel-front/internal/infra/cartstore"
	"hotel-front/internal/pkg/clock"
	"hotel-front/internal/pkg/config"

	"go.uber.org/fx"
)

var CartStoreModule = fx.Module("cartstore",
	fx.Provide(
		clock.NewRealClock,
		NewCartBackend,
	),
)

// NewCartBackend picks the cart backend named by CART_BACKEND. Postgres and
// memory get a janitor for expired entries; Redis expires keys natively.
func NewCartBackend(lc fx.Lifecycle, cfg config.Config, clk clock.Clock, logger *slog.Logger) (cartstore.Backend, error) {
	kind, err := cartstore.ParseBackendKind(cfg.Cart.Backend)
	if err != nil {
		return nil, err
	}

	var (
		backend cartstore.Backend
		purger  cartstore.Purger
	)
	switch kind {
	case cartstore.BackendPostgres:
		pool, err := NewDB(lc, cfg)
		if err != nil {
			return nil, err
		}
		pg := cartstore.NewPostgresBackend(pool, clk)
		backend, purger = pg, pg
	case cartstore.BackendRedis:
		client, err := cartstore.NewRedisClient(context.Background(), cfg.Redis)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		backend = cartstore.NewRedisBackend(client)
	default:
		mem := cartstore.NewMemoryBackend(clk)
		backend, purger = mem, mem
	}

	if purger != nil {
		startJanitor(lc, cartstore.NewJanitor(purger, cfg.Cart.PurgeInterval, logger))
	}

	logger.Info("cart backend ready", "backend", string(kind), "retention", cfg.Cart.Retention)
	return backend, nil
}

func startJanitor(lc fx.Lifecycle, janitor *cartstore.Janitor) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				janitor.Run(ctx)
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
