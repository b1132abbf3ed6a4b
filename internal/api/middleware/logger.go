package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/RetreatCatalog/backend/internal/infrastructure/tracing"
)

// RequestLogger logs one line per request. 5xx responses log at error,
// everything else at info. Paths in skip are not logged.
func RequestLogger(logger *logging.Logger, skip ...string) gin.HandlerFunc {
	skipped := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipped[p] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.Request.URL.Path
		if _, ok := skipped[path]; ok {
			return
		}

		status := c.Writer.Status()
		fields := append([]zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("size", c.Writer.Size()),
		}, tracing.Fields(c.Request.Context())...)

		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		if status >= 500 {
			logger.Error("Request failed", fields...)
			return
		}
		logger.Info("Request handled", fields...)
	}
}
