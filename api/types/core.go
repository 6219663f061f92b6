package types

// Core data types used across API responses

// Playlist represents a playlist with its public fields
type Playlist struct {
	ID        string `json:"id"` // Public playlist ID
	Title     string `json:"title"`
	Dynamic   bool   `json:"dynamic"`
	IsActive  bool   `json:"isActive"`
	CreatedAt int64  `json:"createdAt"` // Unix timestamp
}

// PlaylistItem represents one episode's membership in a playlist
type PlaylistItem struct {
	ID        string `json:"id"` // Public item ID
	EpisodeID string `json:"episodeId"`
	Position  int    `json:"position"` // Zero-based rank within the playlist
	CreatedAt int64  `json:"createdAt"`
}
