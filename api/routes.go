package api

import (
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/podqueue/playlist-api/api/health"
	"github.com/podqueue/playlist-api/api/playlists"
	"github.com/podqueue/playlist-api/api/types"
	"github.com/podqueue/playlist-api/api/version"
	_ "github.com/podqueue/playlist-api/docs/swagger"
	playlistsService "github.com/podqueue/playlist-api/internal/services/playlists"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")

	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Build the playlist service over the database if not injected
	if deps.PlaylistService == nil && deps.DB != nil && deps.DB.DB != nil {
		repo := playlistsService.NewRepository(deps.DB.DB)
		deps.PlaylistService = playlistsService.NewService(repo)
	}

	if deps.PlaylistService != nil {
		// Register playlist routes with general rate limiting (10 req/s, burst of 20)
		playlistGroup := v1.Group("/playlists")
		playlistGroup.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, 10, 20))
		playlists.RegisterRoutes(playlistGroup, deps)
	}

	return nil
}
