package bootstrap

import (
	"log/slog"

	"hotel-front/internal/infra/upstream"
	"hotel-front/internal/pkg/config"
	"hotel-front/internal/pkg/metrics"
	"hotel-front/internal/usecase/commands"
	"hotel-front/internal/usecase/queries"

	"go.uber.org/fx"
)

var UpstreamModule = fx.Module("upstream",
	fx.Provide(
		NewUpstreamClient,
		func(c *upstream.Client) commands.AuthGateway { return c },
		func(c *upstream.Client) commands.CheckoutGateway { return c },
		func(c *upstream.Client) commands.CatalogGateway { return c },
		func(c *upstream.Client) queries.UserGateway { return c },
		func(c *upstream.Client) queries.SlotGateway { return c },
		func(c *upstream.Client) queries.CatalogGateway { return c },
	),
)

func NewUpstreamClient(cfg config.Config, rec *metrics.Recorder, logger *slog.Logger) (*upstream.Client, error) {
	return upstream.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout,
		upstream.WithMetrics(rec),
		upstream.WithLogger(logger),
	)
}
