package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quoteboard/internal/platform/config"
)

const corsMaxAge = 12 * time.Hour

// CORS allows cross-origin use of the API. With no configured origins every
// origin is accepted; the request's Origin is echoed back so credentials
// still work.
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{"Location", HeaderRequestID, HeaderCorrelationID},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           corsMaxAge,
	}

	if len(cfg.AllowOrigins) == 0 || (len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*") {
		c.AllowOriginFunc = func(string) bool { return true }
	} else {
		c.AllowOrigins = cfg.AllowOrigins
	}

	return cors.New(c)
}
