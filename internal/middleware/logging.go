package middleware

import (
	"time"

	"vaccine-village-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs one line per request. Bodies are not logged since they
// carry chat text and credentials.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []interface{}{
			"statusCode", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"clientIP", c.ClientIP(),
			"method", c.Request.Method,
			"path", c.FullPath(),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.String())
		}
		if c.Writer.Status() >= 500 {
			log.Warnw("HTTP request failed", fields...)
			return
		}
		log.Infow("HTTP request", fields...)
	}
}
