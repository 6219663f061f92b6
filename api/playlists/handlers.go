package playlists

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/podqueue/playlist-api/api/types"
	playlistsService "github.com/podqueue/playlist-api/internal/services/playlists"
)

// respondServiceError maps a playlist service error to an HTTP response.
// Validation and domain-rule failures carry their own stable message; storage
// failures get the generic fallback so internals stay out of responses.
func respondServiceError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, playlistsService.ErrPlaylistNotFound):
		types.SendNotFound(c, "Playlist not found")
	case errors.Is(err, playlistsService.ErrItemNotFound):
		types.SendNotFound(c, "Playlist item not found")
	case errors.Is(err, playlistsService.ErrInvalidPlaylistID),
		errors.Is(err, playlistsService.ErrInvalidItemID),
		errors.Is(err, playlistsService.ErrInvalidEpisodeID),
		errors.Is(err, playlistsService.ErrInvalidPosition),
		errors.Is(err, playlistsService.ErrInvalidPage),
		errors.Is(err, playlistsService.ErrTitleRequired),
		errors.Is(err, playlistsService.ErrDynamicPlaylist):
		types.SendBadRequest(c, err.Error())
	default:
		var validationErr *playlistsService.ReorderValidationError
		if errors.As(err, &validationErr) {
			types.SendBadRequest(c, validationErr.Error())
			return
		}
		types.SendInternalError(c, fallback)
	}
}

// CreatePlaylist creates a new playlist
// @Summary      Create playlist
// @Description  Create a new playlist with a title; dynamic playlists get their ordering from an external source
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Param        playlist body types.CreatePlaylistRequest true "Playlist data"
// @Success      201 {object} types.Playlist "Created playlist"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/playlists [post]
func CreatePlaylist(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CreatePlaylistRequest
		if !types.BindJSONOrError(c, &req) {
			return // Error response already sent by utility
		}

		playlist, err := deps.PlaylistService.CreatePlaylist(c.Request.Context(), req.Title, req.Dynamic)
		if err != nil {
			respondServiceError(c, err, "Failed to create playlist")
			return
		}

		types.SendCreated(c, types.FromPlaylist(playlist))
	}
}

// ListPlaylists retrieves a page of playlists
// @Summary      List playlists
// @Description  Retrieve one page of active playlists, 100 per page
// @Tags         playlists
// @Produce      json
// @Param        page query int false "Zero-based page number"
// @Success      200 {object} types.PlaylistsResponse "List of playlists"
// @Failure      400 {object} types.ErrorResponse "Invalid page"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/playlists [get]
func ListPlaylists(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := types.ParsePageQuery(c)
		if !ok {
			return
		}

		playlists, err := deps.PlaylistService.ListPlaylists(c.Request.Context(), page)
		if err != nil {
			respondServiceError(c, err, "Failed to retrieve playlists")
			return
		}

		transformed := types.FromPlaylistList(playlists)
		c.JSON(http.StatusOK, types.PlaylistsResponse{
			Playlists: transformed,
			Count:     len(transformed),
			Page:      page,
		})
	}
}

// GetPlaylist retrieves a single playlist
// @Summary      Get playlist
// @Description  Retrieve a playlist by its ID
// @Tags         playlists
// @Produce      json
// @Param        id path string true "Playlist ID"
// @Success      200 {object} types.Playlist "Playlist"
// @Failure      400 {object} types.ErrorResponse "Invalid playlist ID"
// @Failure      404 {object} types.ErrorResponse "Playlist not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/playlists/{id} [get]
func GetPlaylist(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		playlist, err := deps.PlaylistService.GetPlaylist(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondServiceError(c, err, "Failed to retrieve playlist")
			return
		}

		c.JSON(http.StatusOK, types.FromPlaylist(playlist))
	}
}

// RenamePlaylist changes a playlist's title
// @Summary      Rename playlist
// @Description  Change an existing playlist's title
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Param        id path string true "Playlist ID"
// @Param        playlist body types.RenamePlaylistRequest true "New title"
// @Success      200 {object} types.Playlist "Updated playlist"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Playlist not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/playlists/{id} [put]
func RenamePlaylist(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.RenamePlaylistRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		playlist, err := deps.PlaylistService.RenamePlaylist(c.Request.Context(), c.Param("id"), req.Title)
		if err != nil {
			respondServiceError(c, err, "Failed to rename playlist")
			return
		}

		c.JSON(http.StatusOK, types.FromPlaylist(playlist))
	}
}

// DeletePlaylist soft-deletes a playlist
// @Summary      Delete playlist
// @Description  Soft-delete a playlist; its items are kept
// @Tags         playlists
// @Produce      json
// @Param        id path string true "Playlist ID"
// @Success      200 {object} types.MessageResponse "Playlist deleted"
// @Failure      400 {object} types.ErrorResponse "Invalid playlist ID"
// @Failure      404 {object} types.ErrorResponse "Playlist not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/playlists/{id} [delete]
func DeletePlaylist(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := deps.PlaylistService.DeletePlaylist(c.Request.Context(), c.Param("id")); err != nil {
			respondServiceError(c, err, "Failed to delete playlist")
			return
		}

		c.JSON(http.StatusOK, types.MessageResponse{Message: "Playlist deleted successfully"})
	}
}

// AddItem appends an episode to a playlist
// @Summary      Add item to playlist
// @Description  Append an episode to the end of a playlist
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Param        id path string true "Playlist ID"
// @Param        item body types.AddItemRequest true "Episode reference"
// @Success      201 {object} types.PlaylistItem "Created item"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Playlist not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/playlists/{id}/items [post]
func AddItem(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.AddItemRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		item, err := deps.PlaylistService.AddItem(c.Request.Context(), c.Param("id"), req.EpisodeID)
		if err != nil {
			respondServiceError(c, err, "Failed to add item to playlist")
			return
		}

		types.SendCreated(c, types.FromPlaylistItem(item))
	}
}

// ListItems retrieves a page of a playlist's items
// @Summary      List playlist items
// @Description  Retrieve one page of a playlist's items ordered by position, 100 per page
// @Tags         playlists
// @Produce      json
// @Param        id path string true "Playlist ID"
// @Param        page query int false "Zero-based page number"
// @Success      200 {object} types.PlaylistItemsResponse "List of items"
// @Failure      400 {object} types.ErrorResponse "Invalid request"
// @Failure      404 {object} types.ErrorResponse "Playlist not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/playlists/{id}/items [get]
func ListItems(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, ok := types.ParsePageQuery(c)
		if !ok {
			return
		}

		items, err := deps.PlaylistService.ListItems(c.Request.Context(), c.Param("id"), page)
		if err != nil {
			respondServiceError(c, err, "Failed to retrieve playlist items")
			return
		}

		transformed := types.FromPlaylistItemList(items)
		c.JSON(http.StatusOK, types.PlaylistItemsResponse{
			Items: transformed,
			Count: len(transformed),
			Page:  page,
		})
	}
}

// ChangeItemPosition moves an item within its playlist
// @Summary      Change item position
// @Description  Move an item to a new zero-based position; items between the old and new slot shift by one
// @Tags         playlists
// @Accept       json
// @Produce      json
// @Param        id path string true "Playlist ID"
// @Param        itemId path string true "Item ID"
// @Param        position body types.ChangeItemPositionRequest true "Target position"
// @Success      200 {object} types.MessageResponse "Item moved"
// @Failure      400 {object} types.ErrorResponse "Invalid request or rejected reorder"
// @Failure      404 {object} types.ErrorResponse "Playlist or item not found"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/playlists/{id}/items/{itemId}/position [put]
func ChangeItemPosition(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.ChangeItemPositionRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		err := deps.PlaylistService.ChangeItemPosition(
			c.Request.Context(),
			c.Param("id"),
			c.Param("itemId"),
			*req.Position,
		)
		if err != nil {
			respondServiceError(c, err, "Failed to change item position")
			return
		}

		c.JSON(http.StatusOK, types.MessageResponse{Message: "Item position changed successfully"})
	}
}
