package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quoteboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quoteboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quoteboard/internal/platform/config"
	"github.com/jsamuelsen/quoteboard/internal/platform/logging"
	"github.com/jsamuelsen/quoteboard/internal/platform/telemetry"
)

// RouterConfig contains everything SetupRouter wires.
type RouterConfig struct {
	Logger      *slog.Logger
	ServiceName string
	CORS        config.CORSConfig

	// Timeout bounds API requests. Probes and page assets are not bounded.
	Timeout time.Duration

	Health *handlers.HealthHandler
	Quotes *handlers.QuoteHandler
	Links  *handlers.LinkHandler
	Page   *handlers.PageHandler
}

// SetupRouter installs the middleware chain and routes.
//
// Middleware order: context logger, recovery, request ID, correlation ID,
// CORS, tracing, metrics, logging. The ID middleware runs before tracing so
// spans and logs share the IDs.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		contextLogger(cfg.Logger),
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.CORS(cfg.CORS),
		telemetry.TracingMiddleware(cfg.ServiceName),
		telemetry.Middleware(),
		middleware.Logging(middleware.DefaultQuietPrefixes...),
	)

	if cfg.Health != nil {
		cfg.Health.RegisterRoutes(engine)
	}

	if cfg.Page != nil {
		cfg.Page.RegisterRoutes(engine)
	}

	api := engine.Group("")
	if cfg.Timeout > 0 {
		api.Use(middleware.Timeout(cfg.Timeout))
	}

	if cfg.Quotes != nil {
		cfg.Quotes.RegisterRoutes(api)
	}

	if cfg.Links != nil {
		cfg.Links.RegisterRoutes(api)
	}
}

// contextLogger seeds the request context with the base logger so the ID
// middleware can enrich it.
func contextLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if logger != nil {
			c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), logger))
		}

		c.Next()
	}
}
