package components

import (
	"hotel-front/internal/handler"
	"hotel-front/internal/handler/api"
	"hotel-front/internal/handler/middleware"
	"hotel-front/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCartHandler,
		api.NewCheckoutHandler,
		api.NewCalendarHandler,
		api.NewCatalogHandler,
		middleware.NewAuthMiddleware,
		NewLoginRateLimiter,
	),
	fx.Invoke(RegisterRoutes),
)

func NewLoginRateLimiter(cfg config.Config) *middleware.RateLimiter {
	return middleware.NewLoginRateLimiter(cfg.RateLimit)
}

type RouteParams struct {
	fx.In

	Engine   *gin.Engine
	Config   config.Config
	Gatherer prometheus.Gatherer
	Logger   *middleware.Logger

	Auth     *api.AuthHandler
	Cart     *api.CartHandler
	Checkout *api.CheckoutHandler
	Calendar *api.CalendarHandler
	Catalog  *api.CatalogHandler

	AuthMiddleware *middleware.AuthMiddleware
	LoginLimit     *middleware.RateLimiter
}

func RegisterRoutes(p RouteParams) {
	handler.NewRouter(p.Engine, p.Config, p.Gatherer,
		handler.Handlers{
			Auth:     p.Auth,
			Cart:     p.Cart,
			Checkout: p.Checkout,
			Calendar: p.Calendar,
			Catalog:  p.Catalog,
		},
		handler.Middlewares{
			Auth:       p.AuthMiddleware,
			LoginLimit: p.LoginLimit,
			Logger:     p.Logger,
		},
	)
}
