package initializer

import (
	"context"

	roomHub "swipe-service/internal/api/ws/hub"

	"github.com/redis/go-redis/v9"
)

// InitWebsocket starts the room hub. client may be nil, in which case events are fed in-process.
func InitWebsocket(ctx context.Context, client *redis.Client) *roomHub.Hub {
	hub := roomHub.NewHub(client)
	go hub.Run(ctx)
	return hub
}
