package api

import (
	"blog_system/internal/domain"  // Importing domain models
	"blog_system/internal/service" // Service layer
	"blog_system/internal/utils"   // Cache helpers
	"context"                      // Context for Redis operations
	"net/http"                     // HTTP status codes
	"time"                         // Cache TTL

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// CreateUserRequest represents the body of POST /api/users. Required-field
// checks live in the service so failures carry a proper classification.
type CreateUserRequest struct {
	Username string `json:"username"` // Desired username
	Email    string `json:"email"`    // Desired email address
}

// UpdateUserRequest represents the body of PUT /api/users/:id; absent fields
// are left unchanged
type UpdateUserRequest struct {
	Username *string `json:"username"` // New username, if supplied
	Email    *string `json:"email"`    // New email, if supplied
}

// ListUsersHandler returns all users including their posts
func ListUsersHandler(svc *service.UserService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		var cached []domain.User
		// Serve the cached listing when present
		if found, err := utils.GetCache(ctx, rdb, userListCacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}
		users, err := svc.ListUsers(c.Request.Context())
		if err != nil {
			respondServiceError(c, err) // Map store failure
			return
		}
		_ = utils.SetCache(ctx, rdb, userListCacheKey, users, 60*time.Second) // Cache for 60 seconds
		c.JSON(http.StatusOK, users)
	}
}

// GetUserHandler returns a single user by id including its posts
func GetUserHandler(svc *service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		user, err := svc.GetUser(c.Request.Context(), id)
		if err != nil {
			respondServiceError(c, err) // Map store failure
			return
		}
		// Absence signal from the service
		if user == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// CreateUserHandler creates a new user
func CreateUserHandler(svc *service.UserService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateUserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// Malformed body, not a domain validation failure
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		user, err := svc.CreateUser(c.Request.Context(), service.CreateUserInput{
			Username: req.Username, // Desired username
			Email:    req.Email,    // Desired email
		})
		if err != nil {
			respondServiceError(c, err) // Map validation/conflict/store failure
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,       // Assigned id
			"username": user.Username, // Username
		}).Info("User created")
		invalidateListCaches(rdb) // Listings are stale now
		c.JSON(http.StatusCreated, user)
	}
}

// UpdateUserHandler applies a partial update to a user
func UpdateUserHandler(svc *service.UserService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		var req UpdateUserRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		user, err := svc.UpdateUser(c.Request.Context(), id, service.UpdateUserInput{
			Username: req.Username, // New username, if supplied
			Email:    req.Email,    // New email, if supplied
		})
		if err != nil {
			respondServiceError(c, err) // Map validation/conflict/store failure
			return
		}
		// Absence signal from the service
		if user == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		invalidateListCaches(rdb) // Listings are stale now
		c.JSON(http.StatusOK, user)
	}
}

// DeleteUserHandler deletes a user; the store cascades to its posts
func DeleteUserHandler(svc *service.UserService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		deleted, err := svc.DeleteUser(c.Request.Context(), id)
		if err != nil {
			respondServiceError(c, err) // Map store failure
			return
		}
		// Absence signal from the service
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		// Log deletion; owned posts went with the user
		logrus.WithFields(logrus.Fields{"user_id": id}).Info("User deleted")
		invalidateListCaches(rdb) // Cascade invalidates the post listing too
		c.Status(http.StatusNoContent)
	}
}
