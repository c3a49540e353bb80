package routes

import (
	"database/sql"

	"courseboard_backend/db"
	"courseboard_backend/handlers"
	"courseboard_backend/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(r *gin.Engine, database *sql.DB, store db.DocumentStore, verifier middleware.TokenVerifier, appID string) {
	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(database)
	postHandler := handlers.NewPostHandler(store, appID)

	// Public routes
	r.GET("/", healthHandler.Root)
	r.GET("/health", healthHandler.HealthCheck)

	posts := r.Group("/api/posts")
	{
		posts.GET("", postHandler.GetPosts)
		posts.POST("", middleware.AuthMiddleware(verifier), postHandler.CreatePost)
	}
}
