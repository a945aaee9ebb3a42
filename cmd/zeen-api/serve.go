package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/zeenhq/zeen/backend/internal/clock"
	"github.com/zeenhq/zeen/backend/internal/config"
	"github.com/zeenhq/zeen/backend/internal/handlers"
	"github.com/zeenhq/zeen/backend/internal/logger"
	"github.com/zeenhq/zeen/backend/internal/middleware"
	"github.com/zeenhq/zeen/backend/internal/repository"
	"github.com/zeenhq/zeen/backend/internal/service"
	"github.com/zeenhq/zeen/backend/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	log := logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	})
	logger.SetDefault(log)

	log.Info("starting zeen API server",
		logger.String("env", cfg.Server.Env),
		logger.String("store", cfg.Store.Path),
	)

	// Open the persistence store
	var kv store.Store
	if cfg.Store.Path == ":memory:" {
		kv = store.NewMemory()
	} else {
		kv, err = store.NewSQLite(cfg.Store.Path)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
	}
	defer kv.Close()

	// Initialize repositories
	counterRepo := repository.NewCounterRepository(kv)
	hourlyRepo := repository.NewHourlyRepository(kv)
	historyRepo := repository.NewHistoryRepository(kv)
	focusRepo := repository.NewFocusRepository(kv)
	profileRepo := repository.NewProfileRepository(kv)

	// Initialize services
	clk := clock.System()
	scoringService := service.NewScoringService()
	trackerService := service.NewTrackerService(counterRepo, hourlyRepo, historyRepo, focusRepo, scoringService, clk, log)
	aggregationService := service.NewAggregationService(trackerService, historyRepo, scoringService, clk)
	insightService := service.NewInsightService()
	focusService := service.NewFocusService(focusRepo, trackerService, clk, log)
	achievementService := service.NewAchievementService(aggregationService, focusRepo, clk)
	profileService := service.NewProfileService(profileRepo, clk)

	// Initialize handlers
	eventHandler := handlers.NewEventHandler(trackerService, focusService)
	driftHandler := handlers.NewDriftHandler(trackerService, aggregationService, insightService, profileService)
	focusHandler := handlers.NewFocusHandler(focusService)
	profileHandler := handlers.NewProfileHandler(profileService)
	achievementHandler := handlers.NewAchievementHandler(achievementService)

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimit())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Behavioral event ingestion
		events := v1.Group("/events")
		{
			events.POST("/active", eventHandler.AppBecameActive)
			events.POST("/background", eventHandler.AppEnteredBackground)
			events.POST("/notifications", eventHandler.Notifications)
			events.POST("/focus-break", eventHandler.FocusBreak)
		}

		// Drift scores and summaries
		drift := v1.Group("/drift")
		{
			drift.GET("/today", driftHandler.Today)
			drift.GET("/timeline", driftHandler.Timeline)
			drift.GET("/weekly", driftHandler.Weekly)
			drift.GET("/history", driftHandler.History)
			drift.GET("/insights", driftHandler.Insights)
		}

		// Focus sessions
		focus := v1.Group("/focus")
		{
			focus.POST("/start", focusHandler.Start)
			focus.POST("/pause", focusHandler.Pause)
			focus.POST("/resume", focusHandler.Resume)
			focus.POST("/stop", focusHandler.Stop)
			focus.GET("/status", focusHandler.Status)
			focus.GET("/today", focusHandler.Today)
		}

		// Profile and goal
		v1.GET("/profile", profileHandler.Get)
		v1.PUT("/profile", middleware.RateLimitWrites(), profileHandler.Update)
		v1.PUT("/profile/goal", middleware.RateLimitWrites(), profileHandler.UpdateGoal)

		// Achievements
		v1.GET("/achievements", achievementHandler.List)
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
