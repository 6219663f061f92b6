package playlists

import (
	"context"

	"github.com/podqueue/playlist-api/internal/models"
)

// Repository defines the interface for playlist data access
type Repository interface {
	// Playlist operations
	CreatePlaylist(ctx context.Context, playlist *models.Playlist) error
	GetPlaylistByUUID(ctx context.Context, id string) (*models.Playlist, error)
	UpdatePlaylist(ctx context.Context, playlist *models.Playlist) error
	ListPlaylists(ctx context.Context, offset, limit int) ([]models.Playlist, error)

	// Item operations
	CreateItem(ctx context.Context, item *models.PlaylistItem) error
	GetItemByUUID(ctx context.Context, id string) (*models.PlaylistItem, error)
	ListItems(ctx context.Context, playlistID uint, offset, limit int) ([]models.PlaylistItem, error)
	CountItems(ctx context.Context, playlistID uint) (int64, error)
	NextPosition(ctx context.Context, playlistID uint) (int, error)

	// ReorderItem applies a validated reorder command atomically: the bulk
	// shift of sibling positions and the moving item's new position either
	// both take effect or neither does.
	ReorderItem(ctx context.Context, reorder *models.ItemReorder) error
}

// Service defines the interface for playlist business logic
type Service interface {
	// Playlist operations
	CreatePlaylist(ctx context.Context, title string, dynamic bool) (*models.Playlist, error)
	GetPlaylist(ctx context.Context, playlistID string) (*models.Playlist, error)
	RenamePlaylist(ctx context.Context, playlistID, title string) (*models.Playlist, error)
	DeletePlaylist(ctx context.Context, playlistID string) error
	ListPlaylists(ctx context.Context, page int) ([]models.Playlist, error)

	// Item operations
	AddItem(ctx context.Context, playlistID, episodeID string) (*models.PlaylistItem, error)
	ListItems(ctx context.Context, playlistID string, page int) ([]models.PlaylistItem, error)

	// ChangeItemPosition moves an item to a new zero-based position within
	// its playlist, shifting every item between the old and new slot by one.
	ChangeItemPosition(ctx context.Context, playlistID, itemID string, position int) error
}
