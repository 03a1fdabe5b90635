package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hotel-front/internal/domain/user"
	"hotel-front/internal/handler/api"
	reqdto "hotel-front/internal/handler/dto/request"
	"hotel-front/internal/handler/middleware"
	"hotel-front/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Cart     *api.CartHandler
	Checkout *api.CheckoutHandler
	Calendar *api.CalendarHandler
	Catalog  *api.CatalogHandler
}

type Middlewares struct {
	Auth       *middleware.AuthMiddleware
	LoginLimit *middleware.RateLimiter
	Logger     *middleware.Logger
}

func NewRouter(engine *gin.Engine, cfg config.Config, gatherer prometheus.Gatherer, h Handlers, mw Middlewares) {
	reqdto.RegisterValidators()
	setupMiddleware(engine, cfg, mw.Logger)
	setupRoutes(engine, gatherer, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	if logger == nil {
		logger = middleware.NewLogger(cfg.Log)
	}
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, gatherer prometheus.Gatherer, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)
	if gatherer != nil {
		engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	employee := mw.Auth.RequireRoleAtLeast(user.RoleEmployee)
	manager := mw.Auth.RequireRoleAtLeast(user.RoleManager)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			login := []gin.HandlerFunc{}
			if mw.LoginLimit != nil {
				login = append(login, mw.LoginLimit.Middleware())
			}
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: login},
			})

			authRequired := auth.Group("")
			authRequired.Use(mw.Auth.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		secured := apiGroup.Group("")
		secured.Use(mw.Auth.RequireAuth())
		{
			addRoutes(secured.Group("/carts/reservations"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Cart.GetReservations},
				{Method: http.MethodPost, Path: "", Handler: h.Cart.AddReservation},
				{Method: http.MethodPut, Path: "", Handler: h.Cart.SetReservations},
				{Method: http.MethodDelete, Path: "", Handler: h.Cart.RemoveReservation},
				{Method: http.MethodDelete, Path: "/all", Handler: h.Cart.ClearReservations},
			})

			addRoutes(secured.Group("/carts/services"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Cart.GetServices},
				{Method: http.MethodPost, Path: "", Handler: h.Cart.AddService},
				{Method: http.MethodPut, Path: "", Handler: h.Cart.SetServices},
				{Method: http.MethodDelete, Path: "", Handler: h.Cart.RemoveService},
				{Method: http.MethodDelete, Path: "/all", Handler: h.Cart.ClearServices},
			})

			addRoutes(secured.Group("/checkout"), []route{
				{Method: http.MethodPost, Path: "/reservations", Handler: h.Checkout.CheckoutReservations},
				{Method: http.MethodPost, Path: "/services", Handler: h.Checkout.CheckoutServices},
			})

			addRoutes(secured.Group("/calendar"), []route{
				{Method: http.MethodGet, Path: "/services/:id/week", Handler: h.Calendar.Week, Mw: []gin.HandlerFunc{employee}},
			})

			addRoutes(secured.Group("/rooms"), []route{
				{Method: http.MethodGet, Path: "/available", Handler: h.Catalog.AvailableRooms},
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListRooms, Mw: []gin.HandlerFunc{employee}},
				{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateRoom, Mw: []gin.HandlerFunc{manager}},
				{Method: http.MethodPut, Path: "/:number", Handler: h.Catalog.UpdateRoom, Mw: []gin.HandlerFunc{manager}},
				{Method: http.MethodDelete, Path: "/:number", Handler: h.Catalog.DeleteRoom, Mw: []gin.HandlerFunc{manager}},
			})

			addRoutes(secured.Group("/room-standards"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListRoomStandards, Mw: []gin.HandlerFunc{manager}},
				{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateRoomStandard, Mw: []gin.HandlerFunc{manager}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Catalog.UpdateRoomStandard, Mw: []gin.HandlerFunc{manager}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Catalog.DeleteRoomStandard, Mw: []gin.HandlerFunc{manager}},
			})

			addRoutes(secured.Group("/services"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListServices},
				{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateService, Mw: []gin.HandlerFunc{manager}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Catalog.UpdateService, Mw: []gin.HandlerFunc{manager}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Catalog.DeleteService, Mw: []gin.HandlerFunc{manager}},
			})

			addRoutes(secured, []route{
				{Method: http.MethodGet, Path: "/guests", Handler: h.Catalog.ListGuests, Mw: []gin.HandlerFunc{employee}},
				{Method: http.MethodGet, Path: "/bills/:id", Handler: h.Catalog.Bill},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
