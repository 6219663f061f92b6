package playlists

import (
	"github.com/gin-gonic/gin"
	"github.com/podqueue/playlist-api/api/types"
)

// RegisterRoutes registers playlist-related routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("", CreatePlaylist(deps))
	router.GET("", ListPlaylists(deps))
	router.GET("/:id", GetPlaylist(deps))
	router.PUT("/:id", RenamePlaylist(deps))
	router.DELETE("/:id", DeletePlaylist(deps))

	router.POST("/:id/items", AddItem(deps))
	router.GET("/:id/items", ListItems(deps))
	router.PUT("/:id/items/:itemId/position", ChangeItemPosition(deps))
}
