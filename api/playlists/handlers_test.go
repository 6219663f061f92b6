package playlists_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/podqueue/playlist-api/api/playlists"
	"github.com/podqueue/playlist-api/api/types"
	"github.com/podqueue/playlist-api/internal/database"
	"github.com/podqueue/playlist-api/internal/models"
	playlistsService "github.com/podqueue/playlist-api/internal/services/playlists"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type PlaylistTestSuite struct {
	t      *testing.T
	db     *gorm.DB
	deps   *types.Dependencies
	router *gin.Engine
}

func setupPlaylistTestSuite(t *testing.T) *PlaylistTestSuite {
	// Set Gin to test mode
	gin.SetMode(gin.TestMode)

	// Create in-memory database
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to connect to test database")

	// Auto-migrate the models
	err = db.AutoMigrate(&models.Playlist{}, &models.PlaylistItem{})
	require.NoError(t, err, "Failed to migrate test database")

	// Setup dependencies with the real service over the test database
	repo := playlistsService.NewRepository(db)
	deps := &types.Dependencies{
		DB:              &database.DB{DB: db},
		PlaylistService: playlistsService.NewService(repo),
	}

	// Setup router
	router := gin.New()
	group := router.Group("/playlists")
	playlists.RegisterRoutes(group, deps)

	return &PlaylistTestSuite{
		t:      t,
		db:     db,
		deps:   deps,
		router: router,
	}
}

func (suite *PlaylistTestSuite) request(method, path string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(suite.t, err)
		body = bytes.NewBuffer(data)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *PlaylistTestSuite) createPlaylist(title string, dynamic bool) types.Playlist {
	w := suite.request(http.MethodPost, "/playlists", map[string]interface{}{
		"title":   title,
		"dynamic": dynamic,
	})
	require.Equal(suite.t, http.StatusCreated, w.Code, "create playlist failed: %s", w.Body.String())

	var playlist types.Playlist
	require.NoError(suite.t, json.Unmarshal(w.Body.Bytes(), &playlist))
	return playlist
}

func (suite *PlaylistTestSuite) addItem(playlistID, episodeID string) types.PlaylistItem {
	w := suite.request(http.MethodPost, "/playlists/"+playlistID+"/items", map[string]interface{}{
		"episode_id": episodeID,
	})
	require.Equal(suite.t, http.StatusCreated, w.Code, "add item failed: %s", w.Body.String())

	var item types.PlaylistItem
	require.NoError(suite.t, json.Unmarshal(w.Body.Bytes(), &item))
	return item
}

func (suite *PlaylistTestSuite) listItems(playlistID string) []types.PlaylistItem {
	w := suite.request(http.MethodGet, "/playlists/"+playlistID+"/items", nil)
	require.Equal(suite.t, http.StatusOK, w.Code)

	var resp types.PlaylistItemsResponse
	require.NoError(suite.t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Items
}

const testEpisodeID = "8b2f4f64-5f3a-4c2d-9c57-1f6d9c3f1a20"

func TestCreatePlaylist(t *testing.T) {
	suite := setupPlaylistTestSuite(t)

	tests := []struct {
		name           string
		payload        map[string]interface{}
		expectedStatus int
		validateFunc   func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "successful creation",
			payload:        map[string]interface{}{"title": "Morning commute"},
			expectedStatus: http.StatusCreated,
			validateFunc: func(t *testing.T, w *httptest.ResponseRecorder) {
				var playlist types.Playlist
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &playlist))
				assert.Equal(t, "Morning commute", playlist.Title)
				assert.NotEmpty(t, playlist.ID)
				assert.True(t, playlist.IsActive)
				assert.False(t, playlist.Dynamic)
			},
		},
		{
			name:           "title whitespace is normalized",
			payload:        map[string]interface{}{"title": "  late   night  "},
			expectedStatus: http.StatusCreated,
			validateFunc: func(t *testing.T, w *httptest.ResponseRecorder) {
				var playlist types.Playlist
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &playlist))
				assert.Equal(t, "late night", playlist.Title)
			},
		},
		{
			name:           "missing title rejected",
			payload:        map[string]interface{}{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "whitespace-only title rejected",
			payload:        map[string]interface{}{"title": "   "},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := suite.request(http.MethodPost, "/playlists", tt.payload)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.validateFunc != nil {
				tt.validateFunc(t, w)
			}
		})
	}
}

func TestListPlaylists(t *testing.T) {
	suite := setupPlaylistTestSuite(t)

	first := suite.createPlaylist("First", false)
	second := suite.createPlaylist("Second", false)

	// Soft-deleted playlists disappear from the listing
	w := suite.request(http.MethodDelete, "/playlists/"+second.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = suite.request(http.MethodGet, "/playlists", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.PlaylistsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, first.ID, resp.Playlists[0].ID)

	t.Run("invalid page rejected", func(t *testing.T) {
		w := suite.request(http.MethodGet, "/playlists?page=abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAddItem(t *testing.T) {
	suite := setupPlaylistTestSuite(t)
	playlist := suite.createPlaylist("Queue", false)

	t.Run("items are appended in order", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			item := suite.addItem(playlist.ID, testEpisodeID)
			assert.Equal(t, i, item.Position)
		}
	})

	t.Run("malformed episode id rejected", func(t *testing.T) {
		w := suite.request(http.MethodPost, "/playlists/"+playlist.ID+"/items", map[string]interface{}{
			"episode_id": "not-a-uuid",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown playlist yields 404", func(t *testing.T) {
		w := suite.request(http.MethodPost, "/playlists/"+testEpisodeID+"/items", map[string]interface{}{
			"episode_id": testEpisodeID,
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("dynamic playlist rejects manual adds", func(t *testing.T) {
		dynamic := suite.createPlaylist("Recently played", true)
		w := suite.request(http.MethodPost, "/playlists/"+dynamic.ID+"/items", map[string]interface{}{
			"episode_id": testEpisodeID,
		})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp types.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "cannot add item to dynamic playlist", resp.Error)
	})
}

func TestChangeItemPosition(t *testing.T) {
	suite := setupPlaylistTestSuite(t)
	playlist := suite.createPlaylist("Queue", false)

	items := make([]types.PlaylistItem, 0, 5)
	for i := 0; i < 5; i++ {
		items = append(items, suite.addItem(playlist.ID, testEpisodeID))
	}

	movePath := func(itemID string) string {
		return "/playlists/" + playlist.ID + "/items/" + itemID + "/position"
	}

	t.Run("moving toward the back shifts in-between items forward", func(t *testing.T) {
		w := suite.request(http.MethodPut, movePath(items[2].ID), map[string]interface{}{"position": 4})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		ordered := suite.listItems(playlist.ID)
		got := make([]string, 0, len(ordered))
		for _, item := range ordered {
			got = append(got, item.ID)
		}
		assert.Equal(t, []string{items[0].ID, items[1].ID, items[3].ID, items[4].ID, items[2].ID}, got)
	})

	t.Run("moving toward the front shifts in-between items back", func(t *testing.T) {
		// Undo the previous move: item 2 back from position 4 to position 2
		w := suite.request(http.MethodPut, movePath(items[2].ID), map[string]interface{}{"position": 2})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		ordered := suite.listItems(playlist.ID)
		got := make([]string, 0, len(ordered))
		for _, item := range ordered {
			got = append(got, item.ID)
		}
		assert.Equal(t, []string{items[0].ID, items[1].ID, items[2].ID, items[3].ID, items[4].ID}, got)
	})

	t.Run("reorder validation failures map to 400 with stable messages", func(t *testing.T) {
		tests := []struct {
			name        string
			position    int
			expectedMsg string
		}{
			{name: "same position", position: 2, expectedMsg: "new position has to be different than old position"},
			{name: "out of bounds", position: 6, expectedMsg: "new position outside boundaries"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				w := suite.request(http.MethodPut, movePath(items[2].ID), map[string]interface{}{"position": tt.position})
				require.Equal(t, http.StatusBadRequest, w.Code)

				var resp types.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedMsg, resp.Error)
			})
		}
	})

	t.Run("dynamic playlist cannot be reordered", func(t *testing.T) {
		dynamic := suite.createPlaylist("Recently played", true)
		// Seed an item directly; the API refuses manual adds on dynamic playlists
		var playlistRow models.Playlist
		require.NoError(t, suite.db.Where("uuid = ?", dynamic.ID).First(&playlistRow).Error)
		item := models.PlaylistItem{PlaylistID: playlistRow.ID, EpisodeID: testEpisodeID, Position: 0}
		require.NoError(t, suite.db.Create(&item).Error)

		w := suite.request(http.MethodPut,
			"/playlists/"+dynamic.ID+"/items/"+item.UUID+"/position",
			map[string]interface{}{"position": 0})
		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp types.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "dynamic playlist cannot be reordered", resp.Error)
	})

	t.Run("malformed ids rejected", func(t *testing.T) {
		w := suite.request(http.MethodPut,
			"/playlists/nope/items/"+items[0].ID+"/position",
			map[string]interface{}{"position": 1})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = suite.request(http.MethodPut, movePath("nope"), map[string]interface{}{"position": 1})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown item yields 404", func(t *testing.T) {
		w := suite.request(http.MethodPut, movePath(testEpisodeID), map[string]interface{}{"position": 1})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("missing position rejected", func(t *testing.T) {
		w := suite.request(http.MethodPut, movePath(items[0].ID), map[string]interface{}{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRenameAndGetPlaylist(t *testing.T) {
	suite := setupPlaylistTestSuite(t)
	playlist := suite.createPlaylist("Before", false)

	w := suite.request(http.MethodPut, "/playlists/"+playlist.ID, map[string]interface{}{"title": "After"})
	require.Equal(t, http.StatusOK, w.Code)

	w = suite.request(http.MethodGet, "/playlists/"+playlist.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched types.Playlist
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, "After", fetched.Title)

	t.Run("unknown playlist yields 404", func(t *testing.T) {
		w := suite.request(http.MethodGet, fmt.Sprintf("/playlists/%s", testEpisodeID), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
