package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"swipe-service/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisManager publishes room events on per-room Pub/Sub channels.
type RedisManager struct {
	client *redis.Client
}

func NewRedisManager(ctx context.Context, redisAddr string, password string, db int) (*RedisManager, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: password,
		DB:       db,
	})

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", redisAddr, err)
	}

	return &RedisManager{client: rdb}, nil
}

func (rm *RedisManager) GetRedisClient() *redis.Client {
	return rm.client
}

func (rm *RedisManager) Close() error {
	return rm.client.Close()
}

// RoomChannel is the Pub/Sub channel carrying a room's events.
func RoomChannel(roomID uuid.UUID) string {
	return fmt.Sprintf("room:%s", roomID.String())
}

func (rm *RedisManager) PublishMessage(ctx context.Context, roomID uuid.UUID, msgType string, dataContent interface{}) {
	payload, err := json.Marshal(domain.NewRoomEvent(msgType, roomID, dataContent))
	if err != nil {
		zap.L().Error("Failed to marshal Redis message", zap.Error(err))
		return
	}

	channel := RoomChannel(roomID)
	if err := rm.client.Publish(ctx, channel, payload).Err(); err != nil {
		zap.L().Error("Failed to publish message to Redis channel",
			zap.String("channel", channel),
			zap.String("type", msgType),
			zap.Error(err),
		)
	}
}
