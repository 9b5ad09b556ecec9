package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/bistroboss/restaurant-api/internal/api/handler"
	"github.com/bistroboss/restaurant-api/internal/api/middleware"
	"github.com/bistroboss/restaurant-api/internal/core/ports"
	"github.com/bistroboss/restaurant-api/pkg/logger"
)

// Dependencies are the services the HTTP layer is built on.
type Dependencies struct {
	Tokens    ports.TokenService
	Roles     ports.RoleStore
	Users     ports.UserService
	Menu      ports.MenuService
	Reviews   ports.ReviewService
	Bookings  ports.BookingService
	Carts     ports.CartService
	Payments  ports.PaymentService
	Reporting ports.ReportingService

	// Ready serves /health/ready. Optional.
	Ready *handler.HealthDependenciesHandler
	// Metrics receives the HTTP metrics and backs /metrics. Defaults to the
	// global registry, where the custom metrics live.
	Metrics *prometheus.Registry
	Log     zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(deps.Log))
	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if deps.Metrics != nil {
		registerer, gatherer = deps.Metrics, deps.Metrics
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "bistro",
		Registerer: registerer,
	}))

	// --- Auth chains ---
	authenticate := middleware.Authenticate(deps.Tokens)
	admin := middleware.RequireAdmin(deps.Roles)

	// --- Handlers ---
	tokenHandler := handler.NewTokenHandler(deps.Tokens)
	userHandler := handler.NewUserHandler(deps.Users)
	menuHandler := handler.NewMenuHandler(deps.Menu)
	reviewHandler := handler.NewReviewHandler(deps.Reviews)
	bookingHandler := handler.NewBookingHandler(deps.Bookings)
	cartHandler := handler.NewCartHandler(deps.Carts)
	paymentHandler := handler.NewPaymentHandler(deps.Payments)
	statsHandler := handler.NewStatsHandler(deps.Reporting)
	healthHandler := handler.NewHealthHandler()

	// --- Auth ---
	e.POST("/jwt", tokenHandler.Issue)

	// --- Users ---
	e.POST("/users", userHandler.Create)
	e.GET("/users", userHandler.List, authenticate, admin)
	e.GET("/users/admin/:email", userHandler.AdminStatus, authenticate, middleware.RequireSelf("email"))
	e.PATCH("/users/admin/:id", userHandler.Promote, authenticate, admin)
	e.DELETE("/users/:id", userHandler.Delete, authenticate, admin)

	// --- Menu ---
	e.GET("/menu", menuHandler.List)
	e.GET("/menu-names", menuHandler.Names)
	e.GET("/menu/:id", menuHandler.Get)
	e.POST("/menu", menuHandler.Create, authenticate, admin)
	e.PATCH("/menu/:id", menuHandler.Update, authenticate, admin)
	e.DELETE("/menu/:id", menuHandler.Delete, authenticate, admin)

	// --- Reviews & bookings ---
	e.GET("/reviews", reviewHandler.List)
	e.POST("/reviews", reviewHandler.Create)
	e.GET("/bookings", bookingHandler.List)
	e.POST("/bookings", bookingHandler.Create, authenticate)

	// --- Carts ---
	e.GET("/carts", cartHandler.List)
	e.POST("/carts", cartHandler.Add)
	e.DELETE("/carts/:id", cartHandler.Remove)

	// --- Payments ---
	e.POST("/create-payment-intent", paymentHandler.CreateIntent, authenticate)
	e.POST("/payments", paymentHandler.Record, authenticate)
	e.GET("/payments/:email", paymentHandler.History, authenticate, middleware.RequireSelf("email"))

	// --- Reports ---
	e.GET("/admin-stats", statsHandler.Summary, authenticate, admin)
	e.GET("/order-stats", statsHandler.Categories, authenticate, admin)
	e.GET("/user-stats/:email", statsHandler.User, authenticate, middleware.RequireSelfOrAdmin("email", deps.Roles))

	// --- Probes & docs (no auth required) ---
	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness) // liveness  – is the process alive?
	if deps.Ready != nil {
		e.GET("/health/ready", deps.Ready.Readiness) // readiness – are dependencies up?
	}
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// requestLogger writes one zerolog entry per request and stores a
// request-scoped logger in the request context.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	logRequest := echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			} else if v.Status >= 400 {
				ev = log.Warn()
			}
			ev.Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Str("remote_ip", v.RemoteIP).
				Dur("latency", v.Latency.Round(time.Microsecond)).
				Msg("request")
			return nil
		},
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		scoped := func(c echo.Context) error {
			reqID := c.Response().Header().Get(echo.HeaderXRequestID)
			l := log.With().Str("request_id", reqID).Logger()
			c.SetRequest(c.Request().WithContext(logger.WithContext(c.Request().Context(), l)))
			return next(c)
		}
		return logRequest(scoped)
	}
}
