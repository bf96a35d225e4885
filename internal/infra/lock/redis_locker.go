// Package lock serializes proximity evaluation per user.
package lock

import (
	"context"
	"log/slog"
	"time"

	"geofence/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix      = "geofence:lock:user:"
	releaseTimeout = 2 * time.Second
)

const lockReleaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`

type redisLocker struct {
	client        redis.Cmdable
	script        *redis.Script
	ttl           time.Duration
	retryInterval time.Duration
	logger        *slog.Logger
}

// NewRedisLocker creates a locker shared by every replica using the same Redis
func NewRedisLocker(client redis.Cmdable, ttl, retryInterval time.Duration, logger *slog.Logger) (service.UserLocker, error) {
	if client == nil {
		return nil, errors.New("redis client is required")
	}
	if ttl <= 0 {
		return nil, errors.New("lock ttl must be positive")
	}
	if retryInterval <= 0 {
		return nil, errors.New("lock retry interval must be positive")
	}

	return &redisLocker{
		client:        client,
		script:        redis.NewScript(lockReleaseScript),
		ttl:           ttl,
		retryInterval: retryInterval,
		logger:        logger,
	}, nil
}

func (l *redisLocker) Lock(ctx context.Context, userID string) (func(), error) {
	if userID == "" {
		return nil, errors.New("lock key is empty")
	}

	key := keyPrefix + userID
	token := uuid.NewString()

	ticker := time.NewTicker(l.retryInterval)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "acquire lock %s", key)
		}
		if ok {
			return func() { l.release(key, token) }, nil
		}

		select {
		case <-ctx.Done():
			return nil, errors.Wrapf(ctx.Err(), "wait for lock %s", key)
		case <-ticker.C:
		}
	}
}

// release deletes the key only while it still holds our token
func (l *redisLocker) release(key, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()

	if err := l.script.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
		l.logger.Warn("Failed to release user lock", slog.Any("error", err), slog.String("key", key))
	}
}
