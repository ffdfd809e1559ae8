package domain

import (
	"time"

	"github.com/google/uuid"
)

// Member is a participant of one room. SessionID is the caller-supplied identity.
type Member struct {
	ID        uuid.UUID `json:"id"`
	RoomID    uuid.UUID `json:"room_id"`
	SessionID string    `json:"-"`
	Name      string    `json:"name"`
	JoinedAt  time.Time `json:"joined_at"`
}

type JoinRoomResult struct {
	RoomID uuid.UUID `json:"room_id"`
	UserID uuid.UUID `json:"user_id"`
}
