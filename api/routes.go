package api

import (
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/mauiplayer/radio-api/api/health"
	"github.com/mauiplayer/radio-api/api/radios"
	"github.com/mauiplayer/radio-api/api/status"
	"github.com/mauiplayer/radio-api/api/types"
	"github.com/mauiplayer/radio-api/api/version"
	_ "github.com/mauiplayer/radio-api/docs/swagger"
	"github.com/mauiplayer/radio-api/pkg/config"
)

// RouteConfig holds the options that shape middleware and routes
type RouteConfig struct {
	CORS            CORSPolicy
	RateLimit       config.RateLimitConfig
	MetricsPath     string
	EnableRequestID bool
}

// DefaultRouteConfig returns the options used when none are configured
func DefaultRouteConfig() RouteConfig {
	return RouteConfig{
		CORS:            CORSPolicy{Origins: config.DefaultCORSOrigins, AllowAzureWildcard: true},
		RateLimit:       config.RateLimitConfig{Enabled: true, RPS: 10, Burst: 20},
		MetricsPath:     "/metrics",
		EnableRequestID: true,
	}
}

// RouteConfigFromConfig builds route options from the application config
func RouteConfigFromConfig(cfg *config.Config) RouteConfig {
	rc := RouteConfig{
		CORS: CORSPolicy{
			Origins:            cfg.Security.CORSOrigins,
			AllowAzureWildcard: cfg.Security.AllowAzureWildcard,
		},
		RateLimit:       cfg.RateLimiting,
		EnableRequestID: cfg.Security.EnableRequestID,
	}
	if cfg.Monitoring.Enabled {
		rc.MetricsPath = cfg.Monitoring.MetricsPath
	}
	return rc
}

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rc RouteConfig, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil {
		return fmt.Errorf("dependencies are nil")
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if deps.Metrics != nil && rc.MetricsPath != "" {
		if !strings.HasPrefix(rc.MetricsPath, "/") {
			return fmt.Errorf("invalid metrics path %q", rc.MetricsPath)
		}
		engine.GET(rc.MetricsPath, gin.WrapH(deps.Metrics.Handler()))
	}

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	apiGroup := engine.Group("/api")
	status.RegisterRoutes(apiGroup, deps)

	if deps.RadioService != nil {
		radiosGroup := apiGroup.Group("/radios")
		if rc.RateLimit.Enabled {
			radiosGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rc.RateLimit.RPS, rc.RateLimit.Burst))
		}
		radios.RegisterRoutes(radiosGroup, deps)
	}

	return nil
}

// NotFoundHandler handles 404 errors
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "The requested endpoint was not found",
			"path":  c.Request.URL.Path,
		})
	}
}
