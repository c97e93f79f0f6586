package app

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/luckycunningwolf/HRMS/internal/middleware"
	"github.com/luckycunningwolf/HRMS/internal/shared/connection"
)

// BuildApp connects infrastructure and registers every module under
// /api/v1. Redis is optional: when REDIS_ADDR is unset the caching and
// idempotency paths simply switch off.
func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}

	rdb := connectRedisIfConfigured(logger)

	router.Use(middleware.RequestID())

	return registerModules(router, sqlDB, gormDB, rdb)
}

func connectRedisIfConfigured(logger *zap.Logger) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		logger.Warn("REDIS_ADDR not set, caching and idempotency disabled")
		return nil
	}
	client, err := connection.ConnectRedisWithRetry(addr, 5)
	if err != nil {
		logger.Warn("redis unavailable, caching and idempotency disabled", zap.Error(err))
		return nil
	}
	logger.Info("redis connection established")
	return client
}
