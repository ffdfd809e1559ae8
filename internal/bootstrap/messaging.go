package bootstrap

import (
	"context"

	"swipe-service/config"
	"swipe-service/internal/initializer"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Messaging interface {
	PublishMessage(ctx context.Context, roomID uuid.UUID, msgType string, dataContent interface{})
	Close() error
}

// SetupMessaging returns nil when kafka is disabled.
func SetupMessaging(config config.Config) Messaging {
	if !config.Kafka.Enabled {
		return nil
	}
	publisher := initializer.InitMessaging(config)
	zap.L().Info("Kafka publisher ready", zap.Strings("brokers", config.Kafka.Brokers), zap.String("topic", config.Kafka.Topic))
	return publisher
}
