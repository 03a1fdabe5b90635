package bootstrap

import (
	"hotel-front/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	JWTModule,
	MetricsModule,
	UpstreamModule,
	CartStoreModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
