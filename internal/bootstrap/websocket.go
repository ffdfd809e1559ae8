package bootstrap

import (
	"context"

	"swipe-service/domain"
	"swipe-service/internal/initializer"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type Hub interface {
	Serve(client *domain.Client) error
	PublishMessage(ctx context.Context, roomID uuid.UUID, msgType string, dataContent interface{})
}

func InitWebsocket(ctx context.Context, roomRedis RoomRedisManager) Hub {
	var client *redis.Client
	if roomRedis != nil {
		client = roomRedis.GetRedisClient()
	}
	return initializer.InitWebsocket(ctx, client)
}
