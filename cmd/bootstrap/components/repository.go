package components

import (
	"log/slog"

	"hotel-front/internal/infra/cartstore"
	"hotel-front/internal/pkg/clock"
	"hotel-front/internal/pkg/config"
	"hotel-front/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			NewCartRepository,
			fx.As(new(shared.CartRepository)),
		),
	),
)

func NewCartRepository(backend cartstore.Backend, cfg config.Config, clk clock.Clock, logger *slog.Logger) (*cartstore.Repository, error) {
	retention, err := cartstore.ParseRetention(cfg.Cart.Retention)
	if err != nil {
		return nil, err
	}
	policy := cartstore.Policy{
		Retention:  retention,
		FixedTTL:   cfg.Cart.TTL,
		SessionTTL: cfg.Session.Duration,
	}
	return cartstore.NewRepository(backend, policy, cfg.Cart.Namespace, clk, logger), nil
}
