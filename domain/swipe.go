package domain

import (
	"time"

	"github.com/google/uuid"
)

type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
	DirectionSuper Direction = "super"
)

// IsPositive reports whether the vote counts as a "yes".
func (d Direction) IsPositive() bool {
	return d == DirectionRight || d == DirectionSuper
}

func (d Direction) Valid() bool {
	return d == DirectionLeft || d.IsPositive()
}

type Swipe struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"room_id"`
	UserID    uuid.UUID `json:"user_id"`
	ItemID    int64     `json:"item_id"`
	Direction Direction `json:"direction"`
	Timestamp time.Time `json:"timestamp"`
}

type Match struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"room_id"`
	ItemID    int64     `json:"item_id"`
	MatchedAt time.Time `json:"matched_at"`
}

// SwipeResult is the outcome of a single vote submission.
type SwipeResult struct {
	Swipe Swipe `json:"swipe"`
	// Match is set only when this vote completed convergence for the item.
	Match *Match `json:"match,omitempty"`
	// RoomMatched is true when this vote moved the room into the matched state.
	RoomMatched bool `json:"room_matched"`
}
