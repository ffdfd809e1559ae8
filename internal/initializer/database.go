package initializer

import (
	"fmt"

	"swipe-service/config"
	"swipe-service/infra/memory"
	"swipe-service/infra/postgres"

	"go.uber.org/zap"
)

func InitDatabase(appConfig config.Config) *postgres.Repository {
	repo, err := postgres.NewRepository(appConfig.Postgres.PostgresDSN())
	if err != nil {
		zap.L().Fatal("Failed to initialize PostgreSQL", zap.Error(err))
	}
	return repo
}

func InitMemoryStore() *memory.Store {
	zap.L().Warn("Using in-memory room store; rooms do not survive restarts and are not shared between instances")
	return memory.NewStore()
}

// StorageDriver validates the configured driver name.
func StorageDriver(appConfig config.Config) (string, error) {
	switch appConfig.Storage.Driver {
	case "postgres", "memory":
		return appConfig.Storage.Driver, nil
	default:
		return "", fmt.Errorf("unknown storage driver %q", appConfig.Storage.Driver)
	}
}
