package api

import (
	"blog_system/internal/service" // Service error taxonomy
	"errors"                       // Error classification
	"net/http"                     // HTTP status codes
	"strconv"                      // String conversion

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// respondServiceError maps a service-layer error onto an HTTP response.
// Typed domain errors (validation, conflict, missing ownership reference)
// become 400; everything else is a store failure and becomes 500 with the
// raw message surfaced for diagnostics.
func respondServiceError(c *gin.Context, err error) {
	var ve *service.ValidationError
	var ce *service.ConflictError
	var nfe *service.NotFoundError
	switch {
	case errors.As(err, &ve):
		// Field-level constraint violation
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Validation error",
			"errors":  []gin.H{{"field": ve.Field, "message": ve.Message}},
		})
	case errors.As(err, &ce):
		// Uniqueness violation on username or email
		c.JSON(http.StatusBadRequest, gin.H{
			"message": ce.Error(),
			"fields":  []string{ce.Field},
		})
	case errors.As(err, &nfe):
		// Referenced user does not exist (create or owner change)
		c.JSON(http.StatusBadRequest, gin.H{"message": nfe.Message})
	default:
		// Unexpected store failure
		logrus.WithFields(logrus.Fields{
			"path":  c.FullPath(),
			"error": err.Error(),
		}).Error("Store operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error", "error": err.Error()})
	}
}

// parseID parses the :id path parameter. A non-numeric id can never match an
// entity, so callers treat a false return as not-found.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
