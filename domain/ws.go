package domain

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
)

type WebSocketErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Code    int    `json:"code,omitempty"`
}

// Client is one WebSocket subscriber of a room's event stream, keyed by session.
type Client struct {
	SessionID string
	RoomID    uuid.UUID
	Send      chan []byte
	Conn      *websocket.Conn
	WriteLock sync.Mutex
	// Done is closed by the hub once the client is unregistered.
	Done chan struct{}
}
