package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ennes0/CryptoPredictor/internal/api/handlers"
	"github.com/ennes0/CryptoPredictor/internal/database"
	"github.com/ennes0/CryptoPredictor/internal/forecast"
	"github.com/ennes0/CryptoPredictor/internal/services"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Services  Services  `json:"services"`
}

type Services struct {
	Redis    string `json:"redis"`
	Forecast string `json:"forecast"`
}

func SetupRoutes(router *gin.Engine, redis *database.RedisClient, forecastClient *forecast.Client, predictionService *services.PredictionService, marketService *services.MarketDataService, allowedOrigins []string) {
	router.Use(corsMiddleware(allowedOrigins))

	// Health check endpoint
	router.GET("/health", healthCheck(redis, forecastClient))

	predictionHandler := handlers.NewPredictionHandler(predictionService)
	marketHandler := handlers.NewMarketHandler(marketService)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		predictions := v1.Group("/predictions")
		{
			predictions.POST("", predictionHandler.CreatePrediction)
			predictions.GET("/latest", predictionHandler.GetLatestPrediction)
		}

		v1.POST("/crypto-details", marketHandler.GetCryptoDetails)
		v1.GET("/coins", marketHandler.GetCoins)
	}
}

func healthCheck(redis *database.RedisClient, forecastClient *forecast.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		response := HealthResponse{
			Status:    "ok",
			Timestamp: time.Now(),
			Version:   "1.0.0",
			Services: Services{
				Redis:    "ok",
				Forecast: "ok",
			},
		}

		if redis != nil {
			if err := redis.HealthCheck(c.Request.Context()); err != nil {
				response.Services.Redis = "error"
				response.Status = "degraded"
			}
		}

		if forecastClient != nil {
			if err := forecastClient.Health(c.Request.Context()); err != nil {
				response.Services.Forecast = "error"
				response.Status = "degraded"
			}
		}

		status := http.StatusOK
		if response.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, response)
	}
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	allowAll := false
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (allowAll || allowed[origin]) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Accept")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
