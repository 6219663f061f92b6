package types

import "github.com/podqueue/playlist-api/internal/models"

// FromPlaylist transforms a playlist model to its API representation
func FromPlaylist(p *models.Playlist) *Playlist {
	if p == nil {
		return nil
	}

	return &Playlist{
		ID:        p.UUID,
		Title:     p.Title,
		Dynamic:   p.Dynamic,
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt.Unix(),
	}
}

// FromPlaylistList transforms a list of playlist models
func FromPlaylistList(playlists []models.Playlist) []Playlist {
	result := make([]Playlist, 0, len(playlists))
	for i := range playlists {
		result = append(result, *FromPlaylist(&playlists[i]))
	}
	return result
}

// FromPlaylistItem transforms a playlist item model to its API representation
func FromPlaylistItem(i *models.PlaylistItem) *PlaylistItem {
	if i == nil {
		return nil
	}

	return &PlaylistItem{
		ID:        i.UUID,
		EpisodeID: i.EpisodeID,
		Position:  i.Position,
		CreatedAt: i.CreatedAt.Unix(),
	}
}

// FromPlaylistItemList transforms a list of playlist item models
func FromPlaylistItemList(items []models.PlaylistItem) []PlaylistItem {
	result := make([]PlaylistItem, 0, len(items))
	for i := range items {
		result = append(result, *FromPlaylistItem(&items[i]))
	}
	return result
}
