package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resume-scorer/internal/shared/telemetry"
)

// Context keys handlers may set for the request log line.
const (
	AnalysisIDKey = "analysisId"
	PresetKey     = "preset"
)

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
		status := c.Writer.Status()
		reqID := RequestIDFromContext(c)

		fields := map[string]any{
			"request_id":  reqID,
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"route":       c.FullPath(),
			"status":      status,
			"duration_ms": float64(latency.Microseconds()) / 1000.0,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
		}
		if analysisID := c.GetString(AnalysisIDKey); analysisID != "" {
			fields["analysis_id"] = analysisID
		}
		if preset := c.GetString(PresetKey); preset != "" {
			fields["preset"] = preset
		}
		telemetry.Info("request.complete", fields)
	}
}
