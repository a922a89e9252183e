package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hospistay/backend/config"
	"github.com/hospistay/backend/internal/api"
	"github.com/hospistay/backend/internal/database"
	"github.com/hospistay/backend/internal/middleware"
	"github.com/hospistay/backend/internal/router"
	"github.com/hospistay/backend/internal/server"
	"github.com/hospistay/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	if err := database.Seed(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	advisoryService := service.NewAdvisoryService()
	if !advisoryService.Available() {
		log.Println("Advisory generator unavailable, serving static advisories")
	}
	intakeStore := service.NewRedisIntakeStore(redisClient)
	predictionService := service.NewPredictionService(db, service.NewEstimator(nil), advisoryService, intakeStore, nil)

	authHandler := api.NewAuthHandler(authService)
	predictionHandler := api.NewPredictionHandler(predictionService)
	rateLimiter := middleware.NewPredictionRateLimiter(redisClient)

	engine := router.SetupRouter(authHandler, predictionHandler, authService, rateLimiter, db)
	srv := server.New(cfg, engine)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		log.Println("Starting server...")
		errChan <- srv.Start()
	}()

	// Channel to listen for an interrupt or terminate signal from the OS
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
