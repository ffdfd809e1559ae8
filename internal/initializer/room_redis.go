package initializer

import (
	"context"
	"fmt"
	"time"

	"swipe-service/config"
	"swipe-service/infra/redis"

	"go.uber.org/zap"
)

func InitRoomRedis(appConfig config.Config) *redis.RedisManager {
	address := fmt.Sprintf("%s:%s", appConfig.Redis.Host, appConfig.Redis.Port)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	redisManager, err := redis.NewRedisManager(ctx, address, appConfig.Redis.Password, appConfig.Redis.DB)
	if err != nil {
		zap.L().Fatal("Redis connection could not be established", zap.Error(err))
	}
	zap.L().Info("Connected to Redis", zap.String("address", address))
	return redisManager
}
