package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/coursehub/backend/docs"
	"github.com/coursehub/backend/internal/auth"
	"github.com/coursehub/backend/internal/clients"
	"github.com/coursehub/backend/internal/config"
	"github.com/coursehub/backend/internal/handlers"
	"github.com/coursehub/backend/internal/logger"
	"github.com/coursehub/backend/internal/middleware"
	"github.com/coursehub/backend/internal/repositories"
	"github.com/coursehub/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title CourseHub API
// @version 1.0
// @description API for the CourseHub e-learning portal: course catalog, enrollments, lesson progress and comments
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting CourseHub API")

	// Initialize JWT token generator
	tokenGenerator := auth.NewTokenGenerator(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// Initialize repositories with the seed catalog
	courseRepo := repositories.NewCourseRepository(repositories.SeedCourses(time.Now()))
	enrollmentRepo := repositories.NewEnrollmentRepository()
	userRepo := repositories.NewUserRepository()
	commentRepo := repositories.NewCommentRepository()

	// Initialize outline generator client
	geminiClient := clients.NewGeminiClient(cfg.Gemini.BaseURL, cfg.Gemini.APIKey, cfg.Gemini.Model, logger.Logger)

	// Initialize services
	authService := services.NewAuthService(userRepo, tokenGenerator, logger.Logger)
	catalogService := services.NewCatalogService(courseRepo, enrollmentRepo)
	enrollmentService := services.NewEnrollmentService(courseRepo, enrollmentRepo, logger.Logger)
	progressService := services.NewProgressService(courseRepo, enrollmentRepo, logger.Logger)
	adminCourseService := services.NewAdminCourseService(courseRepo, geminiClient, logger.Logger)
	commentService := services.NewCommentService(courseRepo, commentRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, logger.Logger)
	courseHandler := handlers.NewCourseHandler(catalogService, logger.Logger)
	enrollmentHandler := handlers.NewEnrollmentHandler(enrollmentService, authService, logger.Logger)
	progressHandler := handlers.NewProgressHandler(progressService, authService, logger.Logger)
	adminCourseHandler := handlers.NewAdminCourseHandler(adminCourseService, tokenGenerator, logger.Logger)
	commentHandler := handlers.NewCommentHandler(commentService, authService, tokenGenerator, logger.Logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware(logger.Logger))
	r.Use(middleware.RecoveryMiddleware(logger.Logger))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middleware.RequestSizeLimitMiddleware)

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Register routes; the course subtree shares one mount so its patterns
	// cannot shadow each other
	authHandler.RegisterRoutes(r)
	handlers.RegisterCourseRoutes(r, tokenGenerator, courseHandler, enrollmentHandler, progressHandler)
	adminCourseHandler.RegisterRoutes(r)
	commentHandler.RegisterRoutes(r)

	// Start the lesson release watcher
	releaseWatcher := services.NewReleaseWatcher(courseRepo, logger.Logger)
	if err := releaseWatcher.Start(); err != nil {
		logger.Logger.Fatal("Failed to start release watcher", zap.Error(err))
	}
	defer releaseWatcher.Stop()

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}
