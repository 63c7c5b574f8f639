package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/themebuilder/internal/metrics"
)

// MetricsMiddleware records request latency by route pattern.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RequestDuration.
			WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
