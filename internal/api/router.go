package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/souqly/marketplace-api/internal/api/handler"
	"github.com/souqly/marketplace-api/internal/api/middleware"
	"github.com/souqly/marketplace-api/internal/core/domain"
	"github.com/souqly/marketplace-api/internal/core/ports"
	"github.com/souqly/marketplace-api/internal/infrastructure/http/handlers"
)

// Services are the use cases exposed over HTTP.
type Services struct {
	Auth          ports.AuthService
	Sessions      ports.SessionService
	Users         ports.UserService
	Stores        ports.StoreService
	Products      ports.ListingService[domain.Product]
	Services      ports.ListingService[domain.Service]
	Jobs          ports.ListingService[domain.Job]
	Announcements ports.ListingService[domain.Announcement]
}

// Options tune the router. Zero values are usable: no public auth, no
// readiness probe and the default Prometheus registry.
type Options struct {
	PublicScheme middleware.Scheme
	Log          zerolog.Logger
	Health       *handlers.HealthDependenciesHandler
	Registerer   prometheus.Registerer
	Gatherer     prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, opts Options) *echo.Echo {
	if opts.PublicScheme == "" {
		opts.PublicScheme = middleware.SchemeNone
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Binder = handler.NewStrictBinder()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType},
	}))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "marketplace",
		Subsystem:  "http",
		Registerer: opts.Registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))
	e.Use(requestLogger(opts.Log))

	public := middleware.Authenticate(svc.Sessions, opts.PublicScheme)
	signed := middleware.Authenticate(svc.Sessions, middleware.SchemeSignedToken)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(svc.Auth, svc.Sessions)
	e.POST("/register", authHandler.Register, public)
	e.POST("/login", authHandler.Login, public)
	if svc.Sessions.CanRevoke() {
		e.POST("/logout", authHandler.Logout, signed)
	}

	// --- Users ---
	userHandler := handler.NewUserHandler(svc.Users)
	e.GET("/me", userHandler.Me, signed)
	users := e.Group("/users", signed)
	users.GET("", userHandler.List, adminOnly)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Deactivate, adminOnly)

	// --- Stores ---
	storeHandler := handler.NewStoreHandler(svc.Stores)
	e.GET("/stores", storeHandler.List, public)
	e.GET("/stores/:id", storeHandler.Get, public)
	e.GET("/stores/owner/:ownerId", storeHandler.ListByOwner, public)
	e.POST("/stores", storeHandler.Create, signed)
	e.PUT("/stores/:id", storeHandler.Update, signed)
	e.DELETE("/stores/:id", storeHandler.Deactivate, signed)

	// --- Listings ---
	registerListing(e, "/products", handler.NewProductHandler(svc.Products), public, signed)
	registerListing(e, "/services", handler.NewServiceHandler(svc.Services), public, signed)
	registerListing(e, "/jobs", handler.NewJobHandler(svc.Jobs), public, signed)
	registerListing(e, "/announcements", handler.NewAnnouncementHandler(svc.Announcements), public, signed)

	// --- Health probes (no auth required) ---
	e.GET("/health", handlers.NewHealthHandler().Liveness)
	if opts.Health != nil {
		e.GET("/health/ready", opts.Health.Readiness)
	}

	// --- Operations ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: opts.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// listingRoutes is the handler set shared by every listing resource.
type listingRoutes interface {
	List(c echo.Context) error
	ListByStore(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Deactivate(c echo.Context) error
}

func registerListing(e *echo.Echo, prefix string, h listingRoutes, public, signed echo.MiddlewareFunc) {
	e.GET(prefix, h.List, public)
	e.GET(prefix+"/:id", h.Get, public)
	e.GET(prefix+"/store/:storeId", h.ListByStore, public)
	e.POST(prefix, h.Create, signed)
	e.PUT(prefix+"/:id", h.Update, signed)
	e.DELETE(prefix+"/:id", h.Deactivate, signed)
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			event := log.Info()
			if v.Error != nil {
				event = log.Warn().Err(v.Error)
			}
			event.
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
