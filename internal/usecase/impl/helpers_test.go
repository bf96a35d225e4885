package impl

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"geofence/config"
	"geofence/internal/domain/constants"
)

func createTestConfig() *config.Config {
	return &config.Config{
		Proximity: &config.ProximityConfig{
			SearchRadius:    constants.DefaultSearchRadiusMeters,
			MaxSearchRadius: 50000,
			MaxRegionRadius: constants.MaxRegionRadiusMeters,
			Cooldown:        constants.NotificationCooldown,
		},
		Push: &config.PushConfig{
			MaxConcurrency:  constants.DefaultDispatchConcurrency,
			DeliveryTimeout: time.Second,
			DeepLinkBaseURL: "https://app.example.com/",
		},
	}
}

func createTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// fakeClock is a settable service.Clock
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(now time.Time) *fakeClock {
	return &fakeClock{now: now}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}
