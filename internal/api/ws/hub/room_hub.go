package hub

import (
	"context"
	"encoding/json"
	"sync"

	"swipe-service/domain"
	redisInfra "swipe-service/infra/redis"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// roomHub keeps one Redis subscription per room that has local clients.
type roomHub struct {
	redisClient *redis.Client
	hub         *Hub
	subscribers map[uuid.UUID]*redis.PubSub
	mutex       sync.Mutex
}

func NewRoomHub(redisClient *redis.Client, hub *Hub) *roomHub {
	return &roomHub{
		redisClient: redisClient,
		hub:         hub,
		subscribers: make(map[uuid.UUID]*redis.PubSub),
	}
}

func (rm *roomHub) StartSubscriber(roomID uuid.UUID) {
	rm.mutex.Lock()
	defer rm.mutex.Unlock()

	if _, ok := rm.subscribers[roomID]; ok {
		return
	}

	channel := redisInfra.RoomChannel(roomID)
	pubsub := rm.redisClient.Subscribe(context.Background(), channel)
	rm.subscribers[roomID] = pubsub

	go func() {
		zap.L().Debug("Subscribed to Redis channel", zap.String("channel", channel))
		for msg := range pubsub.Channel() {
			var event domain.RoomEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				zap.L().Warn("Failed to unmarshal Redis message", zap.String("channel", channel), zap.Error(err))
				continue
			}
			rm.hub.deliverEvent(roomID, event.Type, []byte(msg.Payload))
		}
		zap.L().Debug("Unsubscribed from Redis channel", zap.String("channel", channel))
	}()
}

func (rm *roomHub) StopSubscriber(roomID uuid.UUID) {
	rm.mutex.Lock()
	defer rm.mutex.Unlock()

	if pubsub, ok := rm.subscribers[roomID]; ok {
		if err := pubsub.Close(); err != nil {
			zap.L().Debug("Failed to close Redis subscription", zap.Error(err))
		}
		delete(rm.subscribers, roomID)
	}
}
