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

	"github.com/gin-gonic/gin"

	"github.com/ennes0/CryptoPredictor/internal/api"
	"github.com/ennes0/CryptoPredictor/internal/cache"
	"github.com/ennes0/CryptoPredictor/internal/config"
	"github.com/ennes0/CryptoPredictor/internal/database"
	"github.com/ennes0/CryptoPredictor/internal/forecast"
	"github.com/ennes0/CryptoPredictor/internal/logging"
	"github.com/ennes0/CryptoPredictor/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.NewLogger(cfg.LogLevel, cfg.Environment)

	// Initialize Redis; the service degrades to uncached operation without it
	var redis *database.RedisClient
	var marketCache *cache.RedisMarketCache
	redis, err = database.NewRedisConnection(cfg.Redis)
	if err != nil {
		logger.WithError(err).Warn("Redis unavailable, running without cache")
		redis = nil
	} else {
		defer redis.Close()
		marketCache = cache.NewRedisMarketCache(redis.Client, logger)
	}

	// Initialize the forecasting service client and the domain services
	forecastClient := forecast.NewClient(&cfg.Forecast, logger)
	predictionService := services.NewPredictionService(forecastClient, logger)
	marketService := services.NewMarketDataService(forecastClient, marketCache, cfg.Cache, logger)

	// Setup Gin router
	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	api.SetupRoutes(router, redis, forecastClient, predictionService, marketService, cfg.Server.AllowedOrigins)

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Infof("Server starting on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited")
}
