package bootstrap

import (
	"context"
	"time"

	"swipe-service/config"
	"swipe-service/internal/server"
	"swipe-service/pkg/graceful"

	"github.com/go-co-op/gocron/v2"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type App struct {
	config       config.Config
	repo         RoomRepository
	roomRedis    RoomRedisManager
	kafka        Messaging
	hub          Hub
	publisher    *EventPublisher
	janitor      gocron.Scheduler
	fiberApp     *fiber.App
	httpHandlers map[string]interface{}
	wsHandlers   map[string]interface{}
	stopHub      context.CancelFunc
}

func NewApp(config config.Config) *App {
	app := &App{
		config: config,
	}
	app.initDependencies()
	return app
}

func (a *App) initDependencies() {
	hubCtx, cancel := context.WithCancel(context.Background())
	a.stopHub = cancel

	a.repo = InitDatabase(a.config)
	a.roomRedis = InitRoomRedis(a.config)
	a.kafka = SetupMessaging(a.config)
	a.hub = InitWebsocket(hubCtx, a.roomRedis)
	a.publisher = SetupEventPublisher(a.hub, a.roomRedis, a.kafka)
	a.janitor = SetupJanitor(a.config, a.repo, a.publisher)
	a.httpHandlers = SetupHTTPHandlers(a.config, a.repo, a.publisher)
	a.wsHandlers = SetupWSHandlers(a.repo, a.hub)
	a.fiberApp = SetupServer(a.config, a.httpHandlers, a.wsHandlers)
}

func (a *App) Start() {
	go func() {
		if err := server.Start(a.fiberApp, a.config.Server.Host, a.config.Server.Port); err != nil {
			zap.L().Error("Failed to start server", zap.Error(err))
		}
	}()

	zap.L().Info("Server started on port", zap.String("port", a.config.Server.Port))

	graceful.WaitForShutdown(a.fiberApp, 5*time.Second, context.Background(), a.cleanup)
}

func (a *App) cleanup() {
	if a.janitor != nil {
		if err := a.janitor.Shutdown(); err != nil {
			zap.L().Error("Failed to stop room janitor", zap.Error(err))
		}
	}

	// deliver what the last requests published before the transports go away
	a.publisher.Wait()
	a.stopHub()

	if a.kafka != nil {
		if err := a.kafka.Close(); err != nil {
			zap.L().Error("Failed to close kafka publisher", zap.Error(err))
		}
	}
	if a.roomRedis != nil {
		if err := a.roomRedis.Close(); err != nil {
			zap.L().Error("Failed to close redis", zap.Error(err))
		}
	}
	if err := a.repo.Close(); err != nil {
		zap.L().Error("Failed to close database", zap.Error(err))
	}
}
