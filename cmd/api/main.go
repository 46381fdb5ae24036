package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"go-jobmatch-backend/config"
	_ "go-jobmatch-backend/docs" // Important for Swagger
	v1 "go-jobmatch-backend/internal/delivery/http/v1"
	"go-jobmatch-backend/internal/repository/postgres"
	"go-jobmatch-backend/internal/usecase"
	"go-jobmatch-backend/pkg/auth"
	"go-jobmatch-backend/pkg/database"
	"go-jobmatch-backend/pkg/logger"
	"go-jobmatch-backend/pkg/redis"
	"go-jobmatch-backend/pkg/validation"
)

// @title           Job Matching Backend API
// @version         1.0
// @description     Backend for storing job postings and candidate profiles and ranking jobs with weighted multi-factor scoring.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job matching backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional - rate limits and match cache degrade without it)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)

	// 6. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)
	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(engine)
	}
	tokens := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)

	authUC := usecase.NewAuthUsecase(userRepo, tokens)
	jobUC := usecase.NewJobUsecase(jobRepo)
	profileUC := usecase.NewProfileUsecase(profileRepo, validate)
	matchUC := usecase.NewMatchUsecase(jobRepo, profileRepo, redis.NewCache(),
		time.Duration(cfg.MatchCacheTTLSeconds)*time.Second)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:    authUC,
		JobUC:     jobUC,
		ProfileUC: profileUC,
		MatchUC:   matchUC,
		Tokens:    tokens,
		Config:    cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
