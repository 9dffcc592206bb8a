package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stwalsh4118/faasdoc/internal/logger"
)

const (
	loggerKey   = "logger"
	variantKey  = "doc_variant"
	faasIDKey   = "doc_faas_id"
	warningsKey = "doc_warnings"
)

// Logger creates a middleware that logs every request once it completes.
// Handlers that compose a document tag the request through SetDocument so
// the access log line names the variant, record and warning count.
func Logger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestLogger := log.WithRequestID(GetRequestID(c))
		c.Set(loggerKey, requestLogger)

		c.Next()

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		fields := map[string]interface{}{
			"method":      c.Request.Method,
			"path":        path,
			"status":      status,
			"duration_ms": time.Since(start).Milliseconds(),
			"bytes":       c.Writer.Size(),
			"ip":          c.ClientIP(),
		}
		if c.Request.URL.RawQuery != "" {
			fields["query"] = c.Request.URL.RawQuery
		}
		if v, ok := c.Get(variantKey); ok {
			fields["variant"] = v
			fields["warnings"] = c.GetInt(warningsKey)
		}
		if v, ok := c.Get(faasIDKey); ok {
			fields["faas_id"] = v
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		switch {
		case status >= 500:
			requestLogger.Error("Request completed with server error", nil, fields)
		case status >= 400:
			requestLogger.Warn("Request completed with client error", fields)
		default:
			requestLogger.Info("Request completed", fields)
		}
	}
}

// SetDocument records which document a request composed, for the access log.
func SetDocument(c *gin.Context, variant, faasID string, warnings int) {
	c.Set(variantKey, variant)
	if faasID != "" {
		c.Set(faasIDKey, faasID)
	}
	c.Set(warningsKey, warnings)
}

// GetLogger retrieves the request logger from the Gin context.
// Returns nil if not found.
func GetLogger(c *gin.Context) *logger.Logger {
	if v, exists := c.Get(loggerKey); exists {
		if l, ok := v.(*logger.Logger); ok {
			return l
		}
	}
	return nil
}
