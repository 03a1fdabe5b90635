package components

import (
	"hotel-front/internal/pkg/clock"
	"hotel-front/internal/pkg/config"
	"hotel-front/internal/usecase"
	"hotel-front/internal/usecase/commands"
	"hotel-front/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCartCommands,
		commands.NewCheckoutCommands,
		commands.NewCatalogCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewCartQueries,
		queries.NewCatalogQueries,
		NewCalendarQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewSessionValidator,
	),
)

func NewCalendarQueries(gateway queries.SlotGateway, clk clock.Clock, cfg config.Config) queries.CalendarQueries {
	return queries.NewCalendarQueries(gateway, clk, cfg.Locale.Location())
}
