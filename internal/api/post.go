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

// Cache keys for the two listing endpoints. Every successful write drops
// both: user writes change author data and cascade into posts, and post
// writes show up inside each user's posts collection.
const (
	userListCacheKey = "users:all" // GET /api/users cache key
	postListCacheKey = "posts:all" // GET /api/posts cache key
)

// invalidateListCaches drops both listing caches after any write
func invalidateListCaches(rdb *redis.Client) {
	_ = utils.DeleteCache(context.Background(), rdb, userListCacheKey, postListCacheKey)
}

// CreatePostRequest represents the body of POST /api/posts. UserID is a
// pointer so the service can classify a missing owner explicitly.
type CreatePostRequest struct {
	Title   string `json:"title"`   // Post title
	Content string `json:"content"` // Post body
	UserID  *uint  `json:"userId"`  // Owning user id
}

// UpdatePostRequest represents the body of PUT /api/posts/:id; absent fields
// are left unchanged
type UpdatePostRequest struct {
	Title   *string `json:"title"`   // New title, if supplied
	Content *string `json:"content"` // New content, if supplied
	UserID  *uint   `json:"userId"`  // New owner, if supplied
}

// ListPostsHandler returns all posts including their author
func ListPostsHandler(svc *service.PostService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		var cached []domain.Post
		// Serve the cached listing when present
		if found, err := utils.GetCache(ctx, rdb, postListCacheKey, &cached); err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}
		posts, err := svc.ListPosts(c.Request.Context())
		if err != nil {
			respondServiceError(c, err) // Map store failure
			return
		}
		_ = utils.SetCache(ctx, rdb, postListCacheKey, posts, 60*time.Second) // Cache for 60 seconds
		c.JSON(http.StatusOK, posts)
	}
}

// GetPostHandler returns a single post by id including its author
func GetPostHandler(svc *service.PostService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
			return
		}
		post, err := svc.GetPost(c.Request.Context(), id)
		if err != nil {
			respondServiceError(c, err) // Map store failure
			return
		}
		// Absence signal from the service
		if post == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// CreatePostHandler creates a new post owned by an existing user
func CreatePostHandler(svc *service.PostService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreatePostRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// Malformed body, not a domain validation failure
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		post, err := svc.CreatePost(c.Request.Context(), service.CreatePostInput{
			Title:   req.Title,   // Post title
			Content: req.Content, // Post body
			UserID:  req.UserID,  // Owning user id
		})
		if err != nil {
			respondServiceError(c, err) // Map validation/ownership/store failure
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"post_id": post.ID,     // Assigned id
			"user_id": post.UserID, // Owning user
		}).Info("Post created")
		invalidateListCaches(rdb) // Listings are stale now
		c.JSON(http.StatusCreated, post)
	}
}

// UpdatePostHandler applies a partial update to a post, re-validating
// ownership when the owner changes
func UpdatePostHandler(svc *service.PostService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
			return
		}
		var req UpdatePostRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
			return
		}
		post, err := svc.UpdatePost(c.Request.Context(), id, service.UpdatePostInput{
			Title:   req.Title,   // New title, if supplied
			Content: req.Content, // New content, if supplied
			UserID:  req.UserID,  // New owner, if supplied
		})
		if err != nil {
			respondServiceError(c, err) // Map validation/ownership/store failure
			return
		}
		// Absence signal from the service
		if post == nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
			return
		}
		invalidateListCaches(rdb) // Listings are stale now
		c.JSON(http.StatusOK, post)
	}
}

// DeletePostHandler deletes a post
func DeletePostHandler(svc *service.PostService, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
			return
		}
		deleted, err := svc.DeletePost(c.Request.Context(), id)
		if err != nil {
			respondServiceError(c, err) // Map store failure
			return
		}
		// Absence signal from the service
		if !deleted {
			c.JSON(http.StatusNotFound, gin.H{"message": "Post not found"})
			return
		}
		logrus.WithFields(logrus.Fields{"post_id": id}).Info("Post deleted")
		invalidateListCaches(rdb) // Listings are stale now
		c.Status(http.StatusNoContent)
	}
}
