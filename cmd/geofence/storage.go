package main

import (
	"context"
	"log/slog"

	"geofence/config"
	"geofence/internal/delivery/api/router/handler"
	"geofence/internal/domain/constants"
	"geofence/internal/domain/repository"
	"geofence/internal/infra/persistence/memory"
	"geofence/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// repositories is the storage-backed half of the graph, chosen by storage.driver
type repositories struct {
	fx.Out

	RegionRepo       repository.RegionRepository
	LocationRepo     repository.LocationRepository
	ExperienceRepo   repository.ExperienceRepository
	LedgerRepo       repository.LedgerRepository
	SubscriptionRepo repository.PushSubscriptionRepository
	TxManager        repository.TransactionManager
	StorageCheck     handler.HealthChecker `name:"storage"`
}

func newRepositories(lc fx.Lifecycle, cfg *config.Config, logger *slog.Logger) (repositories, error) {
	switch cfg.Storage.Driver {
	case constants.StorageDriverMemory:
		store := memory.NewStore()
		if cfg.Storage.SeedPath != "" {
			if err := store.LoadSeed(cfg.Storage.SeedPath); err != nil {
				return repositories{}, err
			}
		}
		logger.Info("Using in-memory storage", slog.String("seed", cfg.Storage.SeedPath))

		return repositories{
			RegionRepo:       memory.NewRegionRepository(store),
			LocationRepo:     memory.NewLocationRepository(store),
			ExperienceRepo:   memory.NewExperienceRepository(store),
			LedgerRepo:       memory.NewLedgerRepository(store),
			SubscriptionRepo: memory.NewPushSubscriptionRepository(store),
			TxManager:        memory.NewTransactionManager(store),
		}, nil

	case constants.StorageDriverPostgres:
		db, err := postgres.New(postgres.Params{Lifecycle: lc, Config: cfg, Logger: logger})
		if err != nil {
			return repositories{}, err
		}

		return repositories{
			RegionRepo:       postgres.NewRegionRepository(db),
			LocationRepo:     postgres.NewLocationRepository(db),
			ExperienceRepo:   postgres.NewExperienceRepository(db),
			LedgerRepo:       postgres.NewLedgerRepository(db),
			SubscriptionRepo: postgres.NewPushSubscriptionRepository(db),
			TxManager:        postgres.NewTransactionManager(db),
			StorageCheck: handler.HealthCheckFunc(func(ctx context.Context) error {
				sqlDB, err := db.DB()
				if err != nil {
					return err
				}

				return sqlDB.PingContext(ctx)
			}),
		}, nil

	default:
		return repositories{}, errors.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}
}
