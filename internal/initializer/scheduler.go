package initializer

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

// InitScheduler runs task every interval until the returned scheduler is shut down.
// Runs never overlap.
func InitScheduler(name string, interval time.Duration, task func(ctx context.Context) error) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func(ctx context.Context) {
			if err := task(ctx); err != nil {
				zap.L().Error("Scheduled job failed", zap.String("job", name), zap.Error(err))
			}
		}),
		gocron.WithName(name),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = sched.Shutdown()
		return nil, err
	}

	sched.Start()
	zap.L().Info("Scheduler started", zap.String("job", name), zap.Duration("interval", interval))
	return sched, nil
}
