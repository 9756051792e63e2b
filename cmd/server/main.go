package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DevGleb/RealWorldApp/internal/auth"
	"github.com/DevGleb/RealWorldApp/internal/config"
	"github.com/DevGleb/RealWorldApp/internal/handler"
	"github.com/DevGleb/RealWorldApp/internal/infrastructure/database"
	"github.com/DevGleb/RealWorldApp/internal/logger"
	"github.com/DevGleb/RealWorldApp/internal/metrics"
	"github.com/DevGleb/RealWorldApp/internal/middleware"
	"github.com/DevGleb/RealWorldApp/internal/repository"
	"github.com/DevGleb/RealWorldApp/internal/service"
	"github.com/DevGleb/RealWorldApp/internal/validator"
)

func main() {
	// A .env file is a development convenience; its absence is fine.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	// Connect to database
	pool, err := database.NewPostgres(context.Background(), database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	// Start database pool metrics collector
	poolStatsCollector := metrics.NewPoolStatsCollector(pool)
	poolStatsCollector.Start(15 * time.Second)
	defer poolStatsCollector.Stop()

	// Initialize repositories
	userRepo := repository.NewPostgresUserRepository(pool)
	articleRepo := repository.NewPostgresArticleRepository(pool)
	commentRepo := repository.NewPostgresCommentRepository(pool)
	favoriteRepo := repository.NewPostgresFavoriteRepository(pool)
	tagRepo := repository.NewPostgresTagRepository(pool)

	// Initialize auth collaborators and validator
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	tokenManager := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	v := validator.NewValidator()

	// Initialize services
	userService := service.NewUserService(userRepo, hasher, tokenManager)
	profileService := service.NewProfileService(userRepo)
	articleService := service.NewArticleService(articleRepo, userRepo, favoriteRepo)
	commentService := service.NewCommentService(commentRepo, articleRepo, userRepo)
	tagService := service.NewTagService(tagRepo)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService, v)
	profileHandler := handler.NewProfileHandler(profileService)
	articleHandler := handler.NewArticleHandler(articleService, v)
	commentHandler := handler.NewCommentHandler(commentService, v)
	tagHandler := handler.NewTagHandler(tagService)
	healthHandler := handler.NewHealthHandler(pool)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(gin.Logger())

	// Health and metrics endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)
	router.GET("/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	requireAuth := middleware.Auth(tokenManager)
	optionalAuth := middleware.OptionalAuth(tokenManager)

	// API routes
	api := router.Group("/api")
	{
		users := api.Group("/users")
		{
			users.POST("", userHandler.Register)
			users.POST("/login", userHandler.Login)
		}

		user := api.Group("/user", requireAuth)
		{
			user.GET("", userHandler.Current)
			user.PUT("", userHandler.Update)
		}

		profiles := api.Group("/profiles")
		{
			profiles.GET("/:username", optionalAuth, profileHandler.Get)
			profiles.POST("/:username/follow", requireAuth, profileHandler.Follow)
			profiles.DELETE("/:username/follow", requireAuth, profileHandler.Unfollow)
		}

		articles := api.Group("/articles")
		{
			articles.GET("", optionalAuth, articleHandler.List)
			articles.GET("/feed", requireAuth, articleHandler.Feed)
			articles.POST("", requireAuth, articleHandler.Create)
			articles.GET("/:slug", optionalAuth, articleHandler.Get)
			articles.PUT("/:slug", requireAuth, articleHandler.Update)
			articles.DELETE("/:slug", requireAuth, articleHandler.Delete)
			articles.POST("/:slug/favorite", requireAuth, articleHandler.Favorite)
			articles.DELETE("/:slug/favorite", requireAuth, articleHandler.Unfavorite)
			articles.POST("/:slug/comments", requireAuth, commentHandler.Create)
			articles.GET("/:slug/comments", optionalAuth, commentHandler.List)
			articles.DELETE("/:slug/comments/:id", requireAuth, commentHandler.Delete)
		}

		api.GET("/tags", tagHandler.List)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting server",
			slog.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server",
				slog.String("error", err.Error()))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	// Shutdown HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error",
			slog.String("error", err.Error()))
	}

	logger.Info("Server exited")
}
