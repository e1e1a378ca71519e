package handlers

import (
	"net/http"

	"github.com/MarwahManan/Hackathon-2/internal/auth"
	"github.com/MarwahManan/Hackathon-2/internal/config"
	"github.com/MarwahManan/Hackathon-2/internal/middleware"
	"github.com/MarwahManan/Hackathon-2/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter assembles the full API: CORS, optional rate limiting, the public
// auth routes, the health probe and the token-guarded task routes.
func NewRouter(cfg *config.Config, db *gorm.DB, authService services.AuthService, taskService services.TaskService, tokens *auth.TokenManager, limiter *middleware.RateLimiter) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = allowedOrigins(cfg)
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Authorization", "Content-Type"}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	if limiter != nil {
		router.Use(limiter.Middleware())
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	authHandler := NewAuthHandler(db, authService)
	authRoutes := router.Group("/api/auth")
	{
		authRoutes.POST("/signup", authHandler.Signup)
		authRoutes.POST("/login", authHandler.Login)
	}

	taskHandler := NewTaskHandler(db, taskService)
	taskRoutes := router.Group("/api/tasks")
	taskRoutes.Use(middleware.RequireAuth(tokens))
	{
		taskRoutes.GET("", taskHandler.GetTasks)
		taskRoutes.POST("", taskHandler.CreateTask)
		taskRoutes.GET("/calendar", taskHandler.GetCalendarTasks)
		taskRoutes.GET("/:id", taskHandler.GetTaskByID)
		taskRoutes.PUT("/:id", taskHandler.UpdateTask)
		taskRoutes.DELETE("/:id", taskHandler.DeleteTask)
	}

	return router
}

func allowedOrigins(cfg *config.Config) []string {
	origins := []string{"http://localhost:3000", "http://localhost:3001"}
	for _, origin := range origins {
		if origin == cfg.Server.FrontendURL {
			return origins
		}
	}
	return append(origins, cfg.Server.FrontendURL)
}
