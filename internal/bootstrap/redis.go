package bootstrap

import (
	"context"

	"swipe-service/config"
	"swipe-service/internal/initializer"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RoomRedisManager interface {
	PublishMessage(ctx context.Context, roomID uuid.UUID, msgType string, dataContent interface{})
	GetRedisClient() *redis.Client
	Close() error
}

// InitRoomRedis returns nil when redis is disabled.
func InitRoomRedis(config config.Config) RoomRedisManager {
	if !config.Redis.Enabled {
		return nil
	}
	return initializer.InitRoomRedis(config)
}
