package middleware

import (
	"time" // Request latency measurement

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// RequestLogger emits one structured access-log entry per request with
// method, path, status, latency and client IP
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()           // Start of request handling
		path := c.Request.URL.Path    // Capture before handlers can rewrite it
		c.Next()                      // Run the rest of the chain

		entry := logrus.WithFields(logrus.Fields{
			"method":     c.Request.Method,                // HTTP method
			"path":       path,                            // Request path
			"status":     c.Writer.Status(),               // Response status
			"latency_ms": time.Since(start).Milliseconds(), // Handling time
			"ip":         c.ClientIP(),                    // Client address
			"request_id": c.GetString("requestID"),        // Correlation id
		})
		if len(c.Errors) > 0 {
			entry.WithField("errors", c.Errors.String()).Warn("Request completed with errors")
		} else {
			entry.Info("Request completed")
		}
	}
}
