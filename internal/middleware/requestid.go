package middleware

import (
	"github.com/gin-gonic/gin" // Gin web framework
	"github.com/google/uuid"   // UUID generation
)

// RequestID generates or propagates an X-Request-Id header, stores it on the
// context and echoes it on the response so callers can correlate log lines
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.Request.Header.Get("X-Request-Id") // Reuse the caller's id if present
		if rid == "" {
			rid = uuid.NewString() // Otherwise mint a fresh one
		}
		c.Set("requestID", rid)                       // Expose to handlers
		c.Writer.Header().Set("X-Request-Id", rid)    // Echo on the response
		c.Next()                                      // Proceed to the next handler
	}
}
