package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spvm/records-api/internal/service"
)

// Metrics records per-route request counts and latencies. Scrapes of the
// /metrics endpoint itself are not recorded so they never inflate the
// series they report.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil || c.FullPath() == "/metrics" {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, status, duration)
	}
}
