package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"lankatrip/pkg/metrics"
)

func RequestCounterMiddleware(registry *metrics.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		registry.Inc("http_requests_total")
		registry.Inc(fmt.Sprintf("http_responses_%dxx_total", c.Writer.Status()/100))
	}
}
