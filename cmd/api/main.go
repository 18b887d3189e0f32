package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/showfolio/backend/config"
	"github.com/showfolio/backend/internal/api"
	"github.com/showfolio/backend/internal/database"
	"github.com/showfolio/backend/internal/middleware"
	"github.com/showfolio/backend/internal/router"
	"github.com/showfolio/backend/internal/server"
	"github.com/showfolio/backend/internal/service"
	"github.com/showfolio/backend/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret, cfg.TokenTTL)
	portfolioService := service.NewPortfolioService(db)
	movieStore := store.NewMovieStore()

	var loginLimiter *middleware.RateLimiter
	if redisClient != nil {
		loginLimiter = middleware.NewLoginRateLimiter(redisClient)
	}

	handlers := router.Handlers{
		Auth:       api.NewAuthHandler(authService),
		Project:    api.NewProjectHandler(portfolioService),
		Skill:      api.NewSkillHandler(portfolioService),
		Experience: api.NewExperienceHandler(portfolioService),
		Education:  api.NewEducationHandler(portfolioService),
		Movie:      api.NewMovieHandler(movieStore),
	}

	srv := server.New(router.Setup(handlers, authService, loginLimiter), cfg.ServerHost, cfg.ServerPort)

	errChan := make(chan error, 1)
	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received signal: %v", sig)
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")
}
