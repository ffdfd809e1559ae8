package bootstrap

import (
	"context"

	"swipe-service/config"
	httpUsecase "swipe-service/internal/api/http/usecase"
	"swipe-service/internal/initializer"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// SetupJanitor schedules stale room cleanup. Returns nil when disabled.
func SetupJanitor(config config.Config, repo RoomRepository, publisher httpUsecase.RoomEventPublisher) gocron.Scheduler {
	if !config.Janitor.Enabled {
		return nil
	}

	reap := httpUsecase.NewReapRoomsUseCase(repo, publisher, config.Janitor.RoomTTL)
	sched, err := initializer.InitScheduler("room-janitor", config.Janitor.Interval, func(ctx context.Context) error {
		_, err := reap.Execute(ctx)
		return err
	})
	if err != nil {
		zap.L().Fatal("Failed to start room janitor", zap.Error(err))
	}
	return sched
}
