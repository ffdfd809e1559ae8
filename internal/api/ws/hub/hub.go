package hub

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"swipe-service/domain"

	"github.com/gofiber/contrib/websocket"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Message is what clients send to the hub and what the hub answers directly.
type Message struct {
	Type    string      `json:"type"`
	Content interface{} `json:"content,omitempty"`
}

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 64
)

var ErrHubStopped = errors.New("hub stopped")

// Hub tracks the WebSocket clients of every room and fans room events out to them.
// With a Redis client the events arrive through per-room subscriptions; without one
// the hub itself is registered as an in-process publisher.
type Hub struct {
	roomsClients map[uuid.UUID]map[string]*domain.Client
	mutex        sync.RWMutex

	register   chan *domain.Client
	unregister chan *domain.Client
	stopped    chan struct{}

	roomHub *roomHub
}

func NewHub(redisClient *redis.Client) *Hub {
	hub := &Hub{
		roomsClients: make(map[uuid.UUID]map[string]*domain.Client),
		register:     make(chan *domain.Client),
		unregister:   make(chan *domain.Client),
		stopped:      make(chan struct{}),
	}
	if redisClient != nil {
		hub.roomHub = NewRoomHub(redisClient, hub)
	}
	return hub
}

func NewClient(conn *websocket.Conn, roomID uuid.UUID, sessionID string) *domain.Client {
	return &domain.Client{
		SessionID: sessionID,
		RoomID:    roomID,
		Conn:      conn,
		Send:      make(chan []byte, sendBuffer),
		Done:      make(chan struct{}),
	}
}

// Run serves registrations until ctx is done, then disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	defer h.shutdown()

	for {
		select {
		case client := <-h.register:
			h.registerClient(client)
		case client := <-h.unregister:
			h.unregisterClient(client)
		case <-ctx.Done():
			return
		}
	}
}

func (h *Hub) RegisterClient(client *domain.Client) error {
	select {
	case h.register <- client:
		return nil
	case <-h.stopped:
		return ErrHubStopped
	}
}

// Serve registers the client and pumps its connection until either side closes.
// It returns only after both pumps stopped, so the connection can be released.
func (h *Hub) Serve(client *domain.Client) error {
	if err := h.RegisterClient(client); err != nil {
		return err
	}

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		h.writePump(client)
	}()

	h.readPump(client)
	h.UnregisterClient(client)
	<-writerDone
	return nil
}

func (h *Hub) UnregisterClient(client *domain.Client) {
	select {
	case h.unregister <- client:
	case <-h.stopped:
	}
}

func (h *Hub) registerClient(client *domain.Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	roomClients, ok := h.roomsClients[client.RoomID]
	if !ok {
		roomClients = make(map[string]*domain.Client)
		h.roomsClients[client.RoomID] = roomClients
	}

	if existing, ok := roomClients[client.SessionID]; ok {
		zap.L().Info("Session reconnected, closing old connection",
			zap.String("room_id", client.RoomID.String()),
		)
		h.closeClient(existing)
	}

	roomClients[client.SessionID] = client

	if len(roomClients) == 1 && h.roomHub != nil {
		h.roomHub.StartSubscriber(client.RoomID)
	}
}

// unregisterClient ignores clients that were already replaced or removed.
func (h *Hub) unregisterClient(client *domain.Client) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	roomClients, ok := h.roomsClients[client.RoomID]
	if !ok || roomClients[client.SessionID] != client {
		return
	}

	h.closeClient(client)
	delete(roomClients, client.SessionID)
	zap.L().Debug("Client unregistered",
		zap.String("room_id", client.RoomID.String()),
		zap.Int("remaining", len(roomClients)),
	)

	if len(roomClients) == 0 {
		delete(h.roomsClients, client.RoomID)
		if h.roomHub != nil {
			h.roomHub.StopSubscriber(client.RoomID)
		}
	}
}

// closeClient must be called with the write lock held, once per registered client.
func (h *Hub) closeClient(client *domain.Client) {
	close(client.Send)
	close(client.Done)
}

func (h *Hub) closeRoom(roomID uuid.UUID) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	roomClients, ok := h.roomsClients[roomID]
	if !ok {
		return
	}
	for _, client := range roomClients {
		h.closeClient(client)
	}
	delete(h.roomsClients, roomID)
	if h.roomHub != nil {
		h.roomHub.StopSubscriber(roomID)
	}
}

func (h *Hub) shutdown() {
	close(h.stopped)

	h.mutex.Lock()
	defer h.mutex.Unlock()
	for roomID, roomClients := range h.roomsClients {
		for _, client := range roomClients {
			h.closeClient(client)
		}
		delete(h.roomsClients, roomID)
		if h.roomHub != nil {
			h.roomHub.StopSubscriber(roomID)
		}
	}
	zap.L().Info("WebSocket hub stopped")
}

// PublishMessage delivers an event to the room's local clients.
func (h *Hub) PublishMessage(ctx context.Context, roomID uuid.UUID, msgType string, dataContent interface{}) {
	payload, err := json.Marshal(domain.NewRoomEvent(msgType, roomID, dataContent))
	if err != nil {
		zap.L().Error("Failed to marshal room event", zap.Error(err))
		return
	}
	h.deliverEvent(roomID, msgType, payload)
}

// deliverEvent broadcasts an encoded event; a deleted room also loses its connections.
func (h *Hub) deliverEvent(roomID uuid.UUID, msgType string, payload []byte) {
	h.BroadcastMessage(roomID, payload)
	if msgType == domain.EventRoomDeleted {
		h.closeRoom(roomID)
	}
}

func (h *Hub) BroadcastMessage(roomID uuid.UUID, payload []byte) {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	for _, client := range h.roomsClients[roomID] {
		select {
		case client.Send <- payload:
		default:
			zap.L().Warn("Client send channel is full, dropping message",
				zap.String("room_id", roomID.String()),
			)
		}
	}
}

func (h *Hub) GetRoomClientCount(roomID uuid.UUID) int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.roomsClients[roomID])
}

// SendMessageToClient queues a direct reply for one client.
func (h *Hub) SendMessageToClient(client *domain.Client, msg *Message) {
	payload, err := json.Marshal(msg)
	if err != nil {
		zap.L().Error("Failed to marshal message", zap.Error(err))
		return
	}

	h.mutex.RLock()
	defer h.mutex.RUnlock()

	if h.roomsClients[client.RoomID][client.SessionID] != client {
		return
	}
	select {
	case client.Send <- payload:
	default:
		zap.L().Warn("Client send channel is full, dropping reply")
	}
}

// readPump handles the client side of the stream. Clients only ping; everything
// else is answered with an error frame.
func (h *Hub) readPump(client *domain.Client) {
	client.Conn.SetReadLimit(maxMessageSize)
	_ = client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	client.Conn.SetPongHandler(func(string) error {
		return client.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, payload, err := client.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				zap.L().Debug("Client read error", zap.Error(err))
			}
			return
		}

		var msg Message
		if err := json.Unmarshal(payload, &msg); err != nil {
			h.SendMessageToClient(client, &Message{Type: "error", Content: "invalid message"})
			continue
		}

		switch msg.Type {
		case "ping":
			h.SendMessageToClient(client, &Message{Type: "pong"})
		default:
			h.SendMessageToClient(client, &Message{Type: "error", Content: "unsupported message type"})
		}
	}
}

func (h *Hub) writePump(client *domain.Client) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		// unblocks readPump
		client.Conn.Close()
	}()

	for {
		select {
		case msg, ok := <-client.Send:
			client.WriteLock.Lock()
			_ = client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = client.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				client.WriteLock.Unlock()
				return
			}
			err := client.Conn.WriteMessage(websocket.TextMessage, msg)
			client.WriteLock.Unlock()
			if err != nil {
				zap.L().Debug("WebSocket write error", zap.Error(err))
				return
			}

		case <-ticker.C:
			client.WriteLock.Lock()
			_ = client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			err := client.Conn.WriteMessage(websocket.PingMessage, nil)
			client.WriteLock.Unlock()
			if err != nil {
				return
			}
		}
	}
}
