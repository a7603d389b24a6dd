package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yb-lee/sns-feed-backend/internal/logger"
)

func RequestLogger(baseLog *logger.Logger) gin.HandlerFunc {
	log := baseLog.With("component", "http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("Request handled",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", c.GetString(RequestIDKey),
		)
	}
}
