package main

import (
	"context"
	"log/slog"
	"os"

	"geofence/config"
	"geofence/internal/delivery"
	"geofence/internal/delivery/api"
	"geofence/internal/delivery/api/router/handler"
	"geofence/internal/domain/repository"
	"geofence/internal/domain/service"
	"geofence/internal/infra/auth"
	"geofence/internal/infra/lock"
	logs "geofence/internal/infra/log"
	"geofence/internal/infra/metrics"
	"geofence/internal/infra/pubsub"
	"geofence/internal/infra/push"
	"geofence/internal/infra/qrcode"
	"geofence/internal/infra/redis"
	"geofence/internal/usecase"
	"geofence/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			redis.NewClient,
		),
		metrics.Module,
		pubsub.Module,
		push.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Provide(newRepositories)
}

func injectService() fx.Option {
	return fx.Provide(
		auth.NewJWTService,
		qrcode.NewQRCodeServiceFromConfig,
		lock.NewUserLocker,
		service.NewSystemClock,
	)
}

type proximityParams struct {
	fx.In

	LocationRepo   repository.LocationRepository
	RegionRepo     repository.RegionRepository
	ExperienceRepo repository.ExperienceRepository
	LedgerRepo     repository.LedgerRepository
	Dispatcher     usecase.DispatchUsecase
	Locker         service.UserLocker
	Publisher      service.EventPublisher
	Metrics        service.MetricsRecorder
	Clock          service.Clock
	Config         *config.Config
	Logger         *slog.Logger
}

func newProximityService(params proximityParams) usecase.ProximityUsecase {
	return impl.NewProximityService(impl.ProximityDeps{
		LocationRepo:   params.LocationRepo,
		RegionRepo:     params.RegionRepo,
		ExperienceRepo: params.ExperienceRepo,
		LedgerRepo:     params.LedgerRepo,
		Dispatcher:     params.Dispatcher,
		Locker:         params.Locker,
		Publisher:      params.Publisher,
		Metrics:        params.Metrics,
		Clock:          params.Clock,
	}, params.Config, params.Logger)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewRegionService,
		impl.NewLocationService,
		impl.NewDispatchService,
		impl.NewNotificationService,
		newProximityService,
	)
}

type healthParams struct {
	fx.In

	Storage handler.HealthChecker `name:"storage" optional:"true"`
	Redis   *redis.Client
}

func newHealthHandler(params healthParams) *handler.HealthHandler {
	checks := make(map[string]handler.HealthChecker)
	if params.Storage != nil {
		checks["storage"] = params.Storage
	}
	if params.Redis != nil {
		checks["redis"] = params.Redis
	}

	return handler.NewHealthHandler(checks)
}

func injectDelivery() fx.Option {
	return fx.Options(
		api.Module,
		fx.Provide(newHealthHandler),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
