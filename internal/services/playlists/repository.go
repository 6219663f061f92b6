package playlists

import (
	"context"
	"errors"
	"fmt"

	"github.com/podqueue/playlist-api/internal/models"
	"gorm.io/gorm"
)

// RepositoryImpl implements the Repository interface
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new playlist repository
func NewRepository(db *gorm.DB) Repository {
	return &RepositoryImpl{db: db}
}

// CreatePlaylist creates a new playlist in the database
func (r *RepositoryImpl) CreatePlaylist(ctx context.Context, playlist *models.Playlist) error {
	if err := r.db.WithContext(ctx).Create(playlist).Error; err != nil {
		return fmt.Errorf("creating playlist: %w", err)
	}
	return nil
}

// GetPlaylistByUUID retrieves a playlist by its public ID
func (r *RepositoryImpl) GetPlaylistByUUID(ctx context.Context, id string) (*models.Playlist, error) {
	var playlist models.Playlist
	if err := r.db.WithContext(ctx).Where("uuid = ?", id).First(&playlist).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlaylistNotFound
		}
		return nil, fmt.Errorf("getting playlist: %w", err)
	}
	return &playlist, nil
}

// UpdatePlaylist updates an existing playlist
func (r *RepositoryImpl) UpdatePlaylist(ctx context.Context, playlist *models.Playlist) error {
	result := r.db.WithContext(ctx).Save(playlist)
	if result.Error != nil {
		return fmt.Errorf("updating playlist: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPlaylistNotFound
	}
	return nil
}

// ListPlaylists retrieves active playlists ordered by creation, paged by offset/limit
func (r *RepositoryImpl) ListPlaylists(ctx context.Context, offset, limit int) ([]models.Playlist, error) {
	var playlists []models.Playlist
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&playlists).Error; err != nil {
		return nil, fmt.Errorf("listing playlists: %w", err)
	}
	return playlists, nil
}

// CreateItem creates a new playlist item in the database
func (r *RepositoryImpl) CreateItem(ctx context.Context, item *models.PlaylistItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("creating playlist item: %w", err)
	}
	return nil
}

// GetItemByUUID retrieves a playlist item by its public ID
func (r *RepositoryImpl) GetItemByUUID(ctx context.Context, id string) (*models.PlaylistItem, error) {
	var item models.PlaylistItem
	if err := r.db.WithContext(ctx).Where("uuid = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("getting playlist item: %w", err)
	}
	return &item, nil
}

// ListItems retrieves items of a playlist ordered by position, paged by offset/limit
func (r *RepositoryImpl) ListItems(ctx context.Context, playlistID uint, offset, limit int) ([]models.PlaylistItem, error) {
	var items []models.PlaylistItem
	if err := r.db.WithContext(ctx).
		Where("playlist_id = ?", playlistID).
		Order("position ASC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("listing playlist items: %w", err)
	}
	return items, nil
}

// CountItems returns the number of live items in a playlist
func (r *RepositoryImpl) CountItems(ctx context.Context, playlistID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.PlaylistItem{}).
		Where("playlist_id = ?", playlistID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("counting playlist items: %w", err)
	}
	return count, nil
}

// NextPosition computes the append position for a playlist as
// max(position) + 1, which stays monotonic even when removed rows leave gaps.
// An empty playlist yields 0.
func (r *RepositoryImpl) NextPosition(ctx context.Context, playlistID uint) (int, error) {
	var next int
	if err := r.db.WithContext(ctx).Model(&models.PlaylistItem{}).
		Where("playlist_id = ?", playlistID).
		Select("COALESCE(MAX(position), -1) + 1").
		Scan(&next).Error; err != nil {
		return 0, fmt.Errorf("computing next position: %w", err)
	}
	return next, nil
}

// ReorderItem applies a validated reorder command in a single transaction.
// Every sibling whose position lies in the closed [min(old,new), max(old,new)]
// range shifts by one slot to make room or close the gap, then the moving
// item receives its new position. The transaction rolls back on any failure,
// so readers never observe two items on one slot or a gap inside the range.
func (r *RepositoryImpl) ReorderItem(ctx context.Context, reorder *models.ItemReorder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lo, hi := reorder.ShiftRange()

		if err := tx.Model(&models.PlaylistItem{}).
			Where("playlist_id = ? AND position >= ? AND position <= ? AND id <> ?",
				reorder.PlaylistID(), lo, hi, reorder.ItemID()).
			UpdateColumn("position", gorm.Expr("position + ?", reorder.ShiftDelta())).Error; err != nil {
			return fmt.Errorf("shifting playlist items: %w", err)
		}

		result := tx.Model(&models.PlaylistItem{}).
			Where("id = ? AND playlist_id = ?", reorder.ItemID(), reorder.PlaylistID()).
			UpdateColumn("position", reorder.NewPosition())
		if result.Error != nil {
			return fmt.Errorf("moving playlist item: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			// The shift above is rolled back with the transaction
			return ErrItemNotFound
		}

		return nil
	})
}
