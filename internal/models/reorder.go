package models

import "errors"

// Reorder validation failures. The messages are part of the API contract and
// are surfaced verbatim to callers.
var (
	ErrReorderDynamicPlaylist = errors.New("dynamic playlist cannot be reordered")
	ErrReorderSamePosition    = errors.New("new position has to be different than old position")
	ErrReorderOutOfBounds     = errors.New("new position outside boundaries")
)

// ItemReorder is a validated, immutable command describing one position
// change: move item itemID in playlist playlistID from oldPosition to
// newPosition. It can only be built through NewItemReorder, so holding one
// means every domain rule already passed. It is consumed exactly once by the
// repository's reorder transaction and never persisted itself.
type ItemReorder struct {
	itemID       uint
	playlistID   uint
	playlistSize int
	oldPosition  int
	newPosition  int
}

// NewItemReorder validates a reorder request and returns the command object.
// Checks run in a fixed order and the first failure wins:
// dynamic playlist, no-op move, target out of [0, size-1].
func NewItemReorder(itemID, playlistID uint, playlistSize, oldPosition, newPosition int, dynamicPlaylist bool) (*ItemReorder, error) {
	if dynamicPlaylist {
		return nil, ErrReorderDynamicPlaylist
	}
	if newPosition == oldPosition {
		return nil, ErrReorderSamePosition
	}
	if newPosition < 0 || newPosition+1 > playlistSize {
		return nil, ErrReorderOutOfBounds
	}

	return &ItemReorder{
		itemID:       itemID,
		playlistID:   playlistID,
		playlistSize: playlistSize,
		oldPosition:  oldPosition,
		newPosition:  newPosition,
	}, nil
}

// ItemID returns the database ID of the moving item
func (r *ItemReorder) ItemID() uint { return r.itemID }

// PlaylistID returns the database ID of the owning playlist
func (r *ItemReorder) PlaylistID() uint { return r.playlistID }

// OldPosition returns the item's position at validation time
func (r *ItemReorder) OldPosition() int { return r.oldPosition }

// NewPosition returns the position the item moves to
func (r *ItemReorder) NewPosition() int { return r.newPosition }

// ShiftRange returns the inclusive position range [lo, hi] whose occupants
// (excluding the moving item) must shift by ShiftDelta. The range is always
// min/max of the two positions, so the same selection serves both directions.
func (r *ItemReorder) ShiftRange() (lo, hi int) {
	if r.oldPosition < r.newPosition {
		return r.oldPosition, r.newPosition
	}
	return r.newPosition, r.oldPosition
}

// ShiftDelta returns +1 when the item moves toward the front (siblings get
// pushed back to make room) and -1 when it moves toward the back (siblings
// get pulled forward to close the gap).
func (r *ItemReorder) ShiftDelta() int {
	if r.oldPosition > r.newPosition {
		return 1
	}
	return -1
}
