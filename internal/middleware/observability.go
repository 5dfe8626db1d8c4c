package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/alumniconnect/backend/internal/pkg/logger"
	"github.com/alumniconnect/backend/internal/pkg/metrics"
)

// RequestLogger logs one structured line per finished request
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("clientIP", c.ClientIP()).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("Request completed")
	}
}

// Metrics records request counters and latency. The route template is used
// as the path label so ids do not explode the cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.RecordRequest(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}
