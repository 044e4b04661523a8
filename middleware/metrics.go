package middleware

import (
	"time"

	"marketplace/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics registra contagem e duração por rota (o padrão da rota, não a URL).
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		metrics.IncInFlight()
		defer metrics.DecInFlight()

		c.Next()

		metrics.RecordHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), time.Since(start))
	}
}
