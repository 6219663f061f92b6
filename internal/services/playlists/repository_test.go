package playlists

import (
	"context"
	"testing"

	"github.com/podqueue/playlist-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestRepo(t *testing.T) (Repository, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to connect to test database")

	err = db.AutoMigrate(&models.Playlist{}, &models.PlaylistItem{})
	require.NoError(t, err, "Failed to migrate test database")

	return NewRepository(db), db
}

func seedPlaylist(t *testing.T, db *gorm.DB, itemCount int) (*models.Playlist, []models.PlaylistItem) {
	playlist := models.Playlist{Title: "Test Playlist", IsActive: true}
	require.NoError(t, db.Create(&playlist).Error)

	items := make([]models.PlaylistItem, 0, itemCount)
	for i := 0; i < itemCount; i++ {
		item := models.PlaylistItem{
			PlaylistID: playlist.ID,
			EpisodeID:  "episode",
			Position:   i,
		}
		require.NoError(t, db.Create(&item).Error)
		items = append(items, item)
	}
	return &playlist, items
}

// positionsByID loads the playlist's current item positions keyed by item ID
func positionsByID(t *testing.T, db *gorm.DB, playlistID uint) map[uint]int {
	var items []models.PlaylistItem
	require.NoError(t, db.Where("playlist_id = ?", playlistID).Find(&items).Error)

	positions := make(map[uint]int, len(items))
	for _, item := range items {
		positions[item.ID] = item.Position
	}
	return positions
}

func TestRepositoryImpl_ReorderItem(t *testing.T) {
	ctx := context.Background()

	t.Run("moving toward the back pulls in-between items forward", func(t *testing.T) {
		repo, db := setupTestRepo(t)
		playlist, items := seedPlaylist(t, db, 5)

		reorder, err := models.NewItemReorder(items[2].ID, playlist.ID, 5, 2, 4, false)
		require.NoError(t, err)
		require.NoError(t, repo.ReorderItem(ctx, reorder))

		positions := positionsByID(t, db, playlist.ID)
		assert.Equal(t, 0, positions[items[0].ID])
		assert.Equal(t, 1, positions[items[1].ID])
		assert.Equal(t, 4, positions[items[2].ID])
		assert.Equal(t, 2, positions[items[3].ID])
		assert.Equal(t, 3, positions[items[4].ID])
	})

	t.Run("moving toward the front pushes in-between items back", func(t *testing.T) {
		repo, db := setupTestRepo(t)
		playlist, items := seedPlaylist(t, db, 5)

		reorder, err := models.NewItemReorder(items[4].ID, playlist.ID, 5, 4, 2, false)
		require.NoError(t, err)
		require.NoError(t, repo.ReorderItem(ctx, reorder))

		positions := positionsByID(t, db, playlist.ID)
		assert.Equal(t, 0, positions[items[0].ID])
		assert.Equal(t, 1, positions[items[1].ID])
		assert.Equal(t, 3, positions[items[2].ID])
		assert.Equal(t, 4, positions[items[3].ID])
		assert.Equal(t, 2, positions[items[4].ID])
	})

	t.Run("no two items share a position afterwards", func(t *testing.T) {
		repo, db := setupTestRepo(t)
		playlist, items := seedPlaylist(t, db, 5)

		reorder, err := models.NewItemReorder(items[0].ID, playlist.ID, 5, 0, 4, false)
		require.NoError(t, err)
		require.NoError(t, repo.ReorderItem(ctx, reorder))

		positions := positionsByID(t, db, playlist.ID)
		seen := make(map[int]bool)
		for _, position := range positions {
			assert.False(t, seen[position], "position %d occupied twice", position)
			seen[position] = true
		}
		assert.Len(t, seen, 5)
	})

	t.Run("rolls back the shift when the item set fails", func(t *testing.T) {
		repo, db := setupTestRepo(t)
		playlist, items := seedPlaylist(t, db, 5)

		// A command whose item does not exist: the bulk shift applies, then
		// the final set touches zero rows and the transaction must roll
		// everything back.
		reorder, err := models.NewItemReorder(items[4].ID+1000, playlist.ID, 5, 2, 4, false)
		require.NoError(t, err)

		err = repo.ReorderItem(ctx, reorder)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrItemNotFound)

		positions := positionsByID(t, db, playlist.ID)
		for i, item := range items {
			assert.Equal(t, i, positions[item.ID], "item %d moved despite rollback", i)
		}
	})

	t.Run("items in another playlist are untouched", func(t *testing.T) {
		repo, db := setupTestRepo(t)
		playlist, items := seedPlaylist(t, db, 3)
		other, otherItems := seedPlaylist(t, db, 3)

		reorder, err := models.NewItemReorder(items[0].ID, playlist.ID, 3, 0, 2, false)
		require.NoError(t, err)
		require.NoError(t, repo.ReorderItem(ctx, reorder))

		positions := positionsByID(t, db, other.ID)
		for i, item := range otherItems {
			assert.Equal(t, i, positions[item.ID])
		}
	})
}

func TestRepositoryImpl_NextPosition(t *testing.T) {
	ctx := context.Background()

	t.Run("empty playlist starts at zero", func(t *testing.T) {
		repo, db := setupTestRepo(t)
		playlist, _ := seedPlaylist(t, db, 0)

		next, err := repo.NextPosition(ctx, playlist.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, next)
	})

	t.Run("appends after the highest position", func(t *testing.T) {
		repo, db := setupTestRepo(t)
		playlist, _ := seedPlaylist(t, db, 3)

		next, err := repo.NextPosition(ctx, playlist.ID)
		require.NoError(t, err)
		assert.Equal(t, 3, next)
	})

	t.Run("stays monotonic across gaps", func(t *testing.T) {
		repo, db := setupTestRepo(t)
		playlist := models.Playlist{Title: "Gappy", IsActive: true}
		require.NoError(t, db.Create(&playlist).Error)

		item := models.PlaylistItem{PlaylistID: playlist.ID, EpisodeID: "episode", Position: 7}
		require.NoError(t, db.Create(&item).Error)

		next, err := repo.NextPosition(ctx, playlist.ID)
		require.NoError(t, err)
		assert.Equal(t, 8, next)
	})
}

func TestRepositoryImpl_Lookups(t *testing.T) {
	ctx := context.Background()

	t.Run("playlist lookup by public id", func(t *testing.T) {
		repo, db := setupTestRepo(t)
		playlist, _ := seedPlaylist(t, db, 0)

		found, err := repo.GetPlaylistByUUID(ctx, playlist.UUID)
		require.NoError(t, err)
		assert.Equal(t, playlist.ID, found.ID)

		_, err = repo.GetPlaylistByUUID(ctx, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, ErrPlaylistNotFound)
	})

	t.Run("item lookup by public id", func(t *testing.T) {
		repo, db := setupTestRepo(t)
		_, items := seedPlaylist(t, db, 1)

		found, err := repo.GetItemByUUID(ctx, items[0].UUID)
		require.NoError(t, err)
		assert.Equal(t, items[0].ID, found.ID)

		_, err = repo.GetItemByUUID(ctx, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, ErrItemNotFound)
	})

	t.Run("listing playlists skips deactivated ones", func(t *testing.T) {
		repo, db := setupTestRepo(t)
		active, _ := seedPlaylist(t, db, 0)
		deleted, _ := seedPlaylist(t, db, 0)
		deleted.Deactivate()
		require.NoError(t, db.Save(deleted).Error)

		playlists, err := repo.ListPlaylists(ctx, 0, 100)
		require.NoError(t, err)
		require.Len(t, playlists, 1)
		assert.Equal(t, active.ID, playlists[0].ID)
	})

	t.Run("listing items orders by position", func(t *testing.T) {
		repo, db := setupTestRepo(t)
		playlist, items := seedPlaylist(t, db, 3)

		reorder, err := models.NewItemReorder(items[2].ID, playlist.ID, 3, 2, 0, false)
		require.NoError(t, err)
		require.NoError(t, repo.ReorderItem(ctx, reorder))

		listed, err := repo.ListItems(ctx, playlist.ID, 0, 100)
		require.NoError(t, err)
		require.Len(t, listed, 3)
		assert.Equal(t, items[2].ID, listed[0].ID)
		assert.Equal(t, items[0].ID, listed[1].ID)
		assert.Equal(t, items[1].ID, listed[2].ID)
	})

	t.Run("counting items", func(t *testing.T) {
		repo, db := setupTestRepo(t)
		playlist, _ := seedPlaylist(t, db, 4)

		count, err := repo.CountItems(ctx, playlist.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)
	})
}
