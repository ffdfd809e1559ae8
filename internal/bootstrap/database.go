package bootstrap

import (
	"context"

	"swipe-service/config"
	httpUsecase "swipe-service/internal/api/http/usecase"
	"swipe-service/internal/initializer"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RoomRepository interface {
	httpUsecase.RoomRepository
	IsMemberRoom(ctx context.Context, roomID uuid.UUID, sessionID string) (bool, error)
	Close() error
}

func InitDatabase(config config.Config) RoomRepository {
	driver, err := initializer.StorageDriver(config)
	if err != nil {
		zap.L().Fatal("Invalid storage configuration", zap.Error(err))
	}

	if driver == "memory" {
		return initializer.InitMemoryStore()
	}
	return initializer.InitDatabase(config)
}
