package lock

import (
	"log/slog"

	"geofence/config"
	"geofence/internal/domain/service"
	"geofence/internal/infra/redis"
)

// NewUserLocker picks the Redis lock when a client is configured
func NewUserLocker(client *redis.Client, cfg *config.Config, logger *slog.Logger) (service.UserLocker, error) {
	if client == nil {
		logger.Info("Using in-process user lock")

		return NewLocalLocker(), nil
	}

	logger.Info("Using Redis user lock", slog.Duration("ttl", cfg.Redis.LockTTL))

	return NewRedisLocker(client, cfg.Redis.LockTTL, cfg.Redis.LockRetryInterval, logger)
}
