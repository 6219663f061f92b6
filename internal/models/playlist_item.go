package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlaylistItem represents one episode's membership in one playlist at one position
type PlaylistItem struct {
	gorm.Model
	UUID       string `json:"uuid" gorm:"uniqueIndex"`
	PlaylistID uint   `json:"playlist_id" gorm:"not null;index:idx_playlist_position"`
	EpisodeID  string `json:"episode_id" gorm:"not null"`
	// Zero-based rank within the playlist. Unique per playlist by
	// construction, not enforced by the schema.
	Position int `json:"position" gorm:"not null;index:idx_playlist_position"`

	// Previous position before the last ChangePosition call. Informational
	// only; reorder propagation for sibling items happens in the repository
	// transaction, not through this field.
	PreviousPosition *int `json:"-" gorm:"-"`
}

// BeforeCreate generates a UUID before creating a new playlist item
func (i *PlaylistItem) BeforeCreate(tx *gorm.DB) error {
	if i.UUID == "" {
		i.UUID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the PlaylistItem model
func (PlaylistItem) TableName() string {
	return "playlist_items"
}

// ChangePosition moves the item to newPosition, remembering where it came
// from. Setting the current position again is a no-op.
func (i *PlaylistItem) ChangePosition(newPosition int) {
	if newPosition == i.Position {
		return
	}
	old := i.Position
	i.PreviousPosition = &old
	i.Position = newPosition
}

// BelongsTo reports whether the item is a member of the given playlist
func (i *PlaylistItem) BelongsTo(playlistID uint) bool {
	return i.PlaylistID == playlistID
}
