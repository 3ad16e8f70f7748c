package api

import (
	"blog_system/internal/metrics"    // Prometheus HTTP metrics
	"blog_system/internal/middleware" // Request-id and access-log middleware
	"blog_system/internal/service"    // Service layer
	"net/http"                        // HTTP status codes

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"gorm.io/gorm"                 // GORM ORM library
)

// NewRouter assembles the gin engine: middleware, the user and post routes,
// health and metrics endpoints, and the catch-all 404. A nil Redis client
// disables the listing cache, nothing else.
func NewRouter(db *gorm.DB, rdb *redis.Client) *gin.Engine {
	r := gin.New() // Gin router instance
	r.Use(gin.Recovery())                // Unhandled panics become 500s
	r.Use(middleware.RequestID())        // Generate or propagate X-Request-Id
	r.Use(middleware.RequestLogger())    // Structured access log
	r.Use(metrics.Handler())             // Request counter and latency histogram

	userSvc := service.NewUserService(db) // User CRUD
	postSvc := service.NewPostService(db) // Post CRUD + ownership validation

	// User routes
	users := r.Group("/api/users")
	users.GET("", ListUsersHandler(userSvc, rdb))          // List all users
	users.GET("/:id", GetUserHandler(userSvc))             // Get one user
	users.POST("", CreateUserHandler(userSvc, rdb))        // Create user
	users.PUT("/:id", UpdateUserHandler(userSvc, rdb))     // Update user
	users.DELETE("/:id", DeleteUserHandler(userSvc, rdb))  // Delete user (cascades)

	// Post routes
	posts := r.Group("/api/posts")
	posts.GET("", ListPostsHandler(postSvc, rdb))          // List all posts
	posts.GET("/:id", GetPostHandler(postSvc))             // Get one post
	posts.POST("", CreatePostHandler(postSvc, rdb))        // Create post
	posts.PUT("/:id", UpdatePostHandler(postSvc, rdb))     // Update post
	posts.DELETE("/:id", DeletePostHandler(postSvc, rdb))  // Delete post

	r.GET("/healthz", HealthHandler(db))  // Liveness + DB ping
	r.GET("/metrics", metrics.Exposer())  // Prometheus exposition

	// Descriptive 404 for unmatched routes
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "API endpoint not found: " + c.Request.Method + " " + c.Request.URL.Path,
		})
	})
	return r
}

// HealthHandler reports process liveness and store reachability
func HealthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB() // Underlying sql.DB for the ping
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
