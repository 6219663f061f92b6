package types

// PlaylistsResponse for playlist lists
type PlaylistsResponse struct {
	Playlists []Playlist `json:"playlists"`
	Count     int        `json:"count"` // Number of results in this response
	Page      int        `json:"page"`
}

// PlaylistItemsResponse for item lists
type PlaylistItemsResponse struct {
	Items []PlaylistItem `json:"items"`
	Count int            `json:"count"`
	Page  int            `json:"page"`
}

// MessageResponse for operations that return no data
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Error   string      `json:"error"`             // Error code/type
	Details interface{} `json:"details,omitempty"` // Additional error details
}
