package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/charanreddy9081/sports-vision-trainer/internal/handlers"
	"github.com/charanreddy9081/sports-vision-trainer/internal/middleware"
)

type RouterConfig struct {
	AuthMiddleware      *middleware.AuthMiddleware
	AuthHandler         *handlers.AuthHandler
	UserHandler         *handlers.UserHandler
	TrainingHandler     *handlers.TrainingHandler
	LeaderboardHandler  *handlers.LeaderboardHandler
	SubscriptionHandler *handlers.SubscriptionHandler
	AdminHandler        *handlers.AdminHandler
	CORSOrigins         []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000", "http://localhost:5173"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")

	// Public
	auth := api.Group("/auth")
	{
		auth.POST("/signup", cfg.AuthHandler.Signup)
		auth.POST("/login", cfg.AuthHandler.Login)
		auth.POST("/refresh", cfg.AuthHandler.Refresh)
	}

	// Protected
	protected := api.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	{
		protected.POST("/auth/logout", cfg.AuthHandler.Logout)
		protected.GET("/auth/me", cfg.UserHandler.GetMe)

		protected.POST("/training/create", cfg.TrainingHandler.CreateSession)
		protected.GET("/training/user/:id", cfg.TrainingHandler.GetUserSessions)
		protected.GET("/training/stats", cfg.TrainingHandler.GetStats)

		protected.GET("/leaderboard", cfg.LeaderboardHandler.GetLeaderboard)

		protected.POST("/subscription/upgrade", cfg.SubscriptionHandler.Upgrade)
		protected.GET("/subscription/status", cfg.SubscriptionHandler.Status)
	}

	// Admin
	admin := api.Group("/admin")
	admin.Use(cfg.AuthMiddleware.RequireAuth(), cfg.AuthMiddleware.RequireAdmin())
	{
		admin.GET("/users", cfg.AdminHandler.ListUsers)
		admin.DELETE("/user/:id", cfg.AdminHandler.DeleteUser)
		admin.GET("/analytics", cfg.AdminHandler.Analytics)
	}

	return router
}
