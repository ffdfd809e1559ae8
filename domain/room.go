package domain

import (
	"math"
	"time"

	"swipe-service/pkg/deck"

	"github.com/google/uuid"
)

type RoomStatus string

const (
	RoomStatusWaiting RoomStatus = "waiting"
	RoomStatusActive  RoomStatus = "active"
	RoomStatusMatched RoomStatus = "matched"
)

type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
)

// RoomMode decides what happens after the first full match.
type RoomMode string

const (
	// RoomModeFirst stops every participant at the first full match.
	RoomModeFirst RoomMode = "first"
	// RoomModeAll lets participants exhaust the deck and collects every match.
	RoomModeAll RoomMode = "all"
)

// RoomConfig is fixed at creation.
type RoomConfig struct {
	MediaType   MediaType `json:"media_type"`
	GenreIDs    []int64   `json:"genre_ids"`
	Region      string    `json:"region,omitempty"`
	ProviderIDs []int64   `json:"provider_ids"`
	Limit       int       `json:"limit,omitempty"`
	Mode        RoomMode  `json:"mode"`
	// ServerConfig is an opaque, client-encrypted blob. It is stored and returned verbatim.
	ServerConfig string `json:"server_config,omitempty"`
}

type Room struct {
	ID         uuid.UUID  `json:"id"`
	Code       string     `json:"code"`
	Status     RoomStatus `json:"status"`
	CreatorID  string     `json:"creator_id"`
	RandomSeed float64    `json:"random_seed"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	RoomConfig
}

// StopsAtFirstMatch reports whether a full match ends the game for everyone.
// Anything but "all" behaves like "first".
func (r *Room) StopsAtFirstMatch() bool {
	return r.Mode != RoomModeAll
}

// DeckSeed turns the stored float seed into the integer seed used by deck.Shuffle.
// A zero result would freeze the generator, so it falls back to the creation time.
func (r *Room) DeckSeed() int64 {
	seed := int64(math.Floor(r.RandomSeed * float64(deck.Modulus)))
	if seed != 0 {
		return seed
	}
	seed = r.CreatedAt.UnixMilli() % deck.Modulus
	if seed == 0 {
		seed = 1
	}
	return seed
}

// CreateRoomResult is returned by room creation.
type CreateRoomResult struct {
	RoomID uuid.UUID `json:"room_id"`
	Code   string    `json:"code"`
	UserID uuid.UUID `json:"user_id"`
}

// LeaveRoomResult describes what a leave did.
type LeaveRoomResult struct {
	Left        bool `json:"left"`
	RoomDeleted bool `json:"room_deleted"`
}
