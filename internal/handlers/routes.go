package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"outreach-api/internal/middleware"
	"outreach-api/internal/services"
)

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	GeocodeService    services.GeocodeService
	EngagementService services.EngagementService
	EnableSwagger     bool
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	geocodeHandler := NewGeocodeHandler(config.GeocodeService)
	engagementHandler := NewEngagementHandler(config.EngagementService)

	if config.EnableSwagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "outreach-api",
			"version": "1.0.0",
		})
	})

	api := router.Group("/api")
	{
		api.GET("/geocode", geocodeHandler.Geocode)
		api.Any("/track-engagement", engagementHandler.TrackEngagement)
	}

	// Paths the front-end uses when deployed as Netlify Functions
	netlify := router.Group("/.netlify/functions")
	{
		netlify.GET("/geocode", geocodeHandler.Geocode)
		netlify.Any("/track-engagement", engagementHandler.TrackEngagement)
	}

	router.NoRoute(middleware.NoRoute())
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine, logger *logrus.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RequestSizeLimit(middleware.DefaultMaxBodySize))
	router.Use(middleware.StructuredLogger(logger))
	router.Use(middleware.PerformanceMonitor(logger, 0))
}
