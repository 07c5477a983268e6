package server

import (
	"bid-tracker/internal/metrics"
	"bid-tracker/utils"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing and records
// their latency, labelled by route template rather than raw path.
func RequestLoggerMiddleware(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next() // process request

		latency := time.Since(start)
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		m.ObserveRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), latency.Seconds())

		utils.Info("HTTP Request", map[string]any{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": latency.String(),
		})
	}
}
