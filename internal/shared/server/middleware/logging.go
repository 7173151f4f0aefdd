package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resume-relay/internal/shared/telemetry"
)

const (
	operationKey    = "operation"
	resultSourceKey = "resultSource"
)

// SetOperation records the relay operation served by the request.
func SetOperation(c *gin.Context, operation string) {
	c.Set(operationKey, operation)
}

// SetResultSource records whether the response came from the provider or a
// fallback, and mirrors it in the X-Result-Source header.
func SetResultSource(c *gin.Context, source string) {
	c.Set(resultSourceKey, source)
	c.Header("X-Result-Source", source)
}

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		telemetry.Info("request.complete", map[string]any{
			"request_id":    RequestIDFromContext(c),
			"method":        c.Request.Method,
			"path":          c.Request.URL.Path,
			"status":        c.Writer.Status(),
			"duration_ms":   float64(latency.Microseconds()) / 1000.0,
			"operation":     c.GetString(operationKey),
			"result_source": c.GetString(resultSourceKey),
			"client_ip":     c.ClientIP(),
			"user_agent":    c.Request.UserAgent(),
		})
	}
}
