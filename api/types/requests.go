package types

// CreatePlaylistRequest represents a playlist creation request
type CreatePlaylistRequest struct {
	Title   string `json:"title" binding:"required" example:"Morning commute"`
	Dynamic bool   `json:"dynamic,omitempty" example:"false"`
}

// RenamePlaylistRequest represents a playlist rename request
type RenamePlaylistRequest struct {
	Title string `json:"title" binding:"required" example:"Evening run"`
}

// AddItemRequest represents a request to append an episode to a playlist
type AddItemRequest struct {
	EpisodeID string `json:"episode_id" binding:"required" example:"8b2f4f64-5f3a-4c2d-9c57-1f6d9c3f1a20"`
}

// ChangeItemPositionRequest represents a request to move an item to a new
// zero-based position within its playlist
type ChangeItemPositionRequest struct {
	Position *int `json:"position" binding:"required" example:"2"`
}
