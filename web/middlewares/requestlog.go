package middlewares

import (
	"log/slog"
	"time"

	"bizdesk.app/bizdesk/infrastructure/logging"
	"github.com/gin-gonic/gin"
)

func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	logger = logging.WithComponent(logger, logging.ComponentHTTP)
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		args := []any{
			logging.FieldMethod, c.Request.Method,
			logging.FieldPath, path,
			logging.FieldStatusCode, c.Writer.Status(),
			logging.FieldDuration, time.Since(start).Milliseconds(),
			logging.FieldClientIP, c.ClientIP(),
		}
		if identity, ok := IdentityFrom(c); ok {
			args = append(args, logging.FieldUserID, identity.ID)
		}

		switch {
		case c.Writer.Status() >= 500:
			logger.Error("request", args...)
		case c.Writer.Status() >= 400:
			logger.Warn("request", args...)
		default:
			logger.Info("request", args...)
		}
	}
}
