package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Playlist represents a named, orderable collection of episode references
type Playlist struct {
	gorm.Model
	UUID     string `json:"uuid" gorm:"uniqueIndex"`
	Title    string `json:"title" gorm:"not null"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
	// Dynamic playlists get their ordering from an external source and
	// reject manual item adds and reorders
	Dynamic bool `json:"dynamic" gorm:"default:false"`

	Items []PlaylistItem `json:"items,omitempty" gorm:"foreignKey:PlaylistID"`
}

// BeforeCreate generates a UUID before creating a new playlist
func (p *Playlist) BeforeCreate(tx *gorm.DB) error {
	if p.UUID == "" {
		p.UUID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Playlist model
func (Playlist) TableName() string {
	return "playlists"
}

// Deactivate marks the playlist as soft-deleted. Items are not touched.
func (p *Playlist) Deactivate() {
	p.IsActive = false
}

// Deactivated reports whether the playlist has been soft-deleted
func (p *Playlist) Deactivated() bool {
	return !p.IsActive
}
