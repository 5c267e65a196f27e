package main

import (
	"log"

	"github.com/ecotrack/ecotrack-api/internal/config"
	"github.com/ecotrack/ecotrack-api/internal/database"
	"github.com/ecotrack/ecotrack-api/internal/handlers"
	"github.com/ecotrack/ecotrack-api/internal/logger"
	"github.com/ecotrack/ecotrack-api/internal/middleware"
	"github.com/ecotrack/ecotrack-api/internal/repository"
	"github.com/ecotrack/ecotrack-api/internal/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Initialize logging
	zlog, err := logger.Init(cfg.GinMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		zap.L().Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run migrations and seed reference data
	if err := database.Migrate(); err != nil {
		zap.L().Fatal("Failed to run migrations", zap.Error(err))
	}
	if err := database.SeedCategories(); err != nil {
		zap.L().Fatal("Failed to seed categories", zap.Error(err))
	}

	db := database.GetDB()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	calcRepo := repository.NewCalculationRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, []byte(cfg.JWTSecret))
	activityService := services.NewActivityService(activityRepo, categoryRepo)
	footprintService := services.NewFootprintService(calcRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(authService, statsRepo)
	activityHandler := handlers.NewActivityHandler(activityService)
	footprintHandler := handlers.NewFootprintHandler(footprintService)

	// Initialize Gin router
	r := gin.Default()
	r.Use(middleware.RequestID())

	requireAuth := middleware.RequireAuth([]byte(cfg.JWTSecret))

	// API routes
	api := r.Group("/api")
	{
		// Health check endpoint
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"message": "Ecotrack API is running",
			})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", requireAuth, authHandler.Me)
		}

		// User routes (protected)
		users := api.Group("/users")
		users.Use(requireAuth)
		{
			users.GET("/profile", userHandler.Profile)
			users.PUT("/profile", userHandler.UpdateProfile)
			users.GET("/stats", userHandler.Stats)
		}

		// Activity ledger routes (protected)
		activities := api.Group("/activities")
		activities.Use(requireAuth)
		{
			activities.GET("", activityHandler.ListActivities)
			activities.POST("", activityHandler.CreateActivity)
			activities.GET("/categories", activityHandler.ListCategories)
			activities.PUT("/:id", activityHandler.UpdateActivity)
			activities.DELETE("/:id", activityHandler.DeleteActivity)
		}

		// Footprint calculation routes (protected)
		footprint := api.Group("/carbon-footprint")
		footprint.Use(requireAuth)
		{
			footprint.POST("/calculate", footprintHandler.Calculate)
			footprint.GET("/history", footprintHandler.History)
			footprint.GET("/latest", footprintHandler.Latest)
			footprint.DELETE("/calculations/:id", footprintHandler.DeleteCalculation)
		}
	}

	// Start server
	zap.L().Info("Server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zap.L().Fatal("Failed to start server", zap.Error(err))
	}
}
