package playlists

import "errors"

// Request validation and lookup failures. Each distinct condition gets its
// own sentinel so callers can map them to responses with errors.Is.
var (
	ErrInvalidPlaylistID = errors.New("invalid playlist id")
	ErrInvalidItemID     = errors.New("invalid playlist item id")
	ErrInvalidEpisodeID  = errors.New("invalid episode id")
	ErrInvalidPosition   = errors.New("invalid position")
	ErrInvalidPage       = errors.New("invalid page")
	ErrTitleRequired     = errors.New("title is required")
	ErrPlaylistNotFound  = errors.New("playlist not found")
	ErrItemNotFound      = errors.New("playlist item not found")
	ErrDynamicPlaylist   = errors.New("cannot add item to dynamic playlist")
)

// ReorderValidationError wraps a domain rule violation raised by the reorder
// command factory. The underlying message is the user-facing one.
type ReorderValidationError struct {
	Err error
}

func (e *ReorderValidationError) Error() string {
	return e.Err.Error()
}

func (e *ReorderValidationError) Unwrap() error {
	return e.Err
}

// StorageError wraps any failure coming out of the repository that is not a
// not-found condition: connection failures, aborted transactions, bad rows.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return "database error: " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
