package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hospistay/backend/internal/api"
	"github.com/hospistay/backend/internal/database"
	"github.com/hospistay/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	authHandler *api.AuthHandler,
	predictionHandler *api.PredictionHandler,
	validator middleware.TokenValidator,
	rateLimiter *middleware.RateLimiter,
	db *gorm.DB,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := database.HealthCheck(ctx, db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Auth routes
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		intake := protected.Group("/intake")
		{
			intake.POST("", predictionHandler.SubmitIntake)
			intake.GET("", predictionHandler.GetIntake)
		}

		predictions := protected.Group("/predictions")
		{
			if rateLimiter != nil {
				predictions.POST("", rateLimiter.RateLimitMiddleware(), predictionHandler.RunPrediction)
			} else {
				predictions.POST("", predictionHandler.RunPrediction)
			}
			predictions.GET("", predictionHandler.History)
		}
	}

	return router
}
