package playlists

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/podqueue/playlist-api/internal/models"
)

// PageSize is the fixed page size for playlist and item listings
const PageSize = 100

// ServiceImpl implements the Service interface
type ServiceImpl struct {
	repository Repository
}

// NewService creates a new playlist service
func NewService(repository Repository) Service {
	return &ServiceImpl{repository: repository}
}

// normalizeTitle trims the title and collapses runs of whitespace
func normalizeTitle(title string) string {
	return strings.Join(strings.Fields(title), " ")
}

// storageOrNotFound keeps not-found sentinels intact and wraps everything
// else from the repository as a storage failure
func storageOrNotFound(err error) error {
	if errors.Is(err, ErrPlaylistNotFound) || errors.Is(err, ErrItemNotFound) {
		return err
	}
	return &StorageError{Err: err}
}

// CreatePlaylist creates a new active playlist with a normalized title
func (s *ServiceImpl) CreatePlaylist(ctx context.Context, title string, dynamic bool) (*models.Playlist, error) {
	title = normalizeTitle(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	playlist := &models.Playlist{
		Title:    title,
		IsActive: true,
		Dynamic:  dynamic,
	}
	if err := s.repository.CreatePlaylist(ctx, playlist); err != nil {
		return nil, &StorageError{Err: err}
	}
	return playlist, nil
}

// GetPlaylist retrieves a playlist by its public ID
func (s *ServiceImpl) GetPlaylist(ctx context.Context, playlistID string) (*models.Playlist, error) {
	if _, err := uuid.Parse(playlistID); err != nil {
		return nil, ErrInvalidPlaylistID
	}

	playlist, err := s.repository.GetPlaylistByUUID(ctx, playlistID)
	if err != nil {
		return nil, storageOrNotFound(err)
	}
	return playlist, nil
}

// RenamePlaylist changes a playlist's title
func (s *ServiceImpl) RenamePlaylist(ctx context.Context, playlistID, title string) (*models.Playlist, error) {
	title = normalizeTitle(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	playlist, err := s.GetPlaylist(ctx, playlistID)
	if err != nil {
		return nil, err
	}

	playlist.Title = title
	if err := s.repository.UpdatePlaylist(ctx, playlist); err != nil {
		return nil, storageOrNotFound(err)
	}
	return playlist, nil
}

// DeletePlaylist soft-deletes a playlist. Its items are left in place.
func (s *ServiceImpl) DeletePlaylist(ctx context.Context, playlistID string) error {
	playlist, err := s.GetPlaylist(ctx, playlistID)
	if err != nil {
		return err
	}

	playlist.Deactivate()
	if err := s.repository.UpdatePlaylist(ctx, playlist); err != nil {
		return storageOrNotFound(err)
	}
	return nil
}

// ListPlaylists retrieves one page of active playlists
func (s *ServiceImpl) ListPlaylists(ctx context.Context, page int) ([]models.Playlist, error) {
	if page < 0 {
		return nil, ErrInvalidPage
	}

	playlists, err := s.repository.ListPlaylists(ctx, page*PageSize, PageSize)
	if err != nil {
		return nil, &StorageError{Err: err}
	}
	return playlists, nil
}

// AddItem appends an episode to the end of a playlist.
// TODO: validate that the episode exists once an episode catalog is wired in.
func (s *ServiceImpl) AddItem(ctx context.Context, playlistID, episodeID string) (*models.PlaylistItem, error) {
	if _, err := uuid.Parse(playlistID); err != nil {
		return nil, ErrInvalidPlaylistID
	}
	if _, err := uuid.Parse(episodeID); err != nil {
		return nil, ErrInvalidEpisodeID
	}

	playlist, err := s.repository.GetPlaylistByUUID(ctx, playlistID)
	if err != nil {
		return nil, storageOrNotFound(err)
	}

	if playlist.Dynamic {
		return nil, ErrDynamicPlaylist
	}

	position, err := s.repository.NextPosition(ctx, playlist.ID)
	if err != nil {
		return nil, &StorageError{Err: err}
	}

	item := &models.PlaylistItem{
		PlaylistID: playlist.ID,
		EpisodeID:  episodeID,
		Position:   position,
	}
	if err := s.repository.CreateItem(ctx, item); err != nil {
		return nil, &StorageError{Err: err}
	}
	return item, nil
}

// ListItems retrieves one page of a playlist's items ordered by position
func (s *ServiceImpl) ListItems(ctx context.Context, playlistID string, page int) ([]models.PlaylistItem, error) {
	if _, err := uuid.Parse(playlistID); err != nil {
		return nil, ErrInvalidPlaylistID
	}
	if page < 0 {
		return nil, ErrInvalidPage
	}

	playlist, err := s.repository.GetPlaylistByUUID(ctx, playlistID)
	if err != nil {
		return nil, storageOrNotFound(err)
	}

	items, err := s.repository.ListItems(ctx, playlist.ID, page*PageSize, PageSize)
	if err != nil {
		return nil, &StorageError{Err: err}
	}
	return items, nil
}

// ChangeItemPosition moves an item to a new position within its playlist.
// Steps run strictly in order and the first failure aborts the request;
// nothing is written until the final reorder transaction.
func (s *ServiceImpl) ChangeItemPosition(ctx context.Context, playlistID, itemID string, position int) error {
	if _, err := uuid.Parse(playlistID); err != nil {
		return ErrInvalidPlaylistID
	}
	if _, err := uuid.Parse(itemID); err != nil {
		return ErrInvalidItemID
	}
	if position < 0 {
		return ErrInvalidPosition
	}

	playlist, err := s.repository.GetPlaylistByUUID(ctx, playlistID)
	if err != nil {
		return storageOrNotFound(err)
	}

	size, err := s.repository.CountItems(ctx, playlist.ID)
	if err != nil {
		return &StorageError{Err: err}
	}

	item, err := s.repository.GetItemByUUID(ctx, itemID)
	if err != nil {
		return storageOrNotFound(err)
	}
	if !item.BelongsTo(playlist.ID) {
		return ErrItemNotFound
	}

	reorder, err := models.NewItemReorder(item.ID, playlist.ID, int(size), item.Position, position, playlist.Dynamic)
	if err != nil {
		return &ReorderValidationError{Err: err}
	}

	if err := s.repository.ReorderItem(ctx, reorder); err != nil {
		return storageOrNotFound(err)
	}
	return nil
}
