package types

import (
	"github.com/podqueue/playlist-api/internal/database"
	"github.com/podqueue/playlist-api/internal/services/playlists"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB              *database.DB
	PlaylistService playlists.Service
}
