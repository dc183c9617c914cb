package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/edutrack-api/internal/service"
)

// Metrics returns middleware that records duration and status for each
// request. Probe endpoints are excluded so scrapes and health checks do
// not drown out the traffic that matters.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil || skipObservation(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}

func skipObservation(path string) bool {
	switch path {
	case "/metrics", "/health", "/ready":
		return true
	}
	return false
}
