package domain

import (
	"time"

	"github.com/google/uuid"
)

// Room event types published after a committed change.
const (
	EventRoomCreated  = "room_created"
	EventRoomDeleted  = "room_deleted"
	EventPlayerJoined = "player_joined"
	EventPlayerLeft   = "player_left"
	EventGameStarted  = "game_started"
	EventMatchFound   = "match_found"
	EventRoomMatched  = "room_matched"
)

type RoomEvent struct {
	Type      string      `json:"type"`
	RoomID    uuid.UUID   `json:"room_id"`
	Content   interface{} `json:"content,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

func NewRoomEvent(eventType string, roomID uuid.UUID, content interface{}) RoomEvent {
	return RoomEvent{
		Type:      eventType,
		RoomID:    roomID,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
}
