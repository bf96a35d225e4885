package postgres

import (
	"context"

	"geofence/internal/domain/entity"
	domainerrors "geofence/internal/domain/errors"
	"geofence/internal/domain/repository"
	"geofence/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

var locationUpdateColumns = []string{"latitude", "longitude", "accuracy", "observed_at", "recorded_at"}

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// Upsert writes the location with INSERT ... ON CONFLICT (user_id) DO UPDATE.
func (repo *locationRepository) Upsert(ctx context.Context, location *entity.UserLocation) error {
	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns(locationUpdateColumns),
		}).
		Create(fromLocationDomain(location)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert location")
	}

	return nil
}

// UpsertIfNewer only overwrites a stored row whose observed_at is not after the incoming one.
func (repo *locationRepository) UpsertIfNewer(ctx context.Context, location *entity.UserLocation) (bool, error) {
	result := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns(locationUpdateColumns),
			Where: clause.Where{Exprs: []clause.Expression{
				clause.Expr{SQL: "user_locations.observed_at <= excluded.observed_at"},
			}},
		}).
		Create(fromLocationDomain(location))
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to upsert location")
	}

	return result.RowsAffected > 0, nil
}

// FindByUserID retrieves the stored location of a user.
func (repo *locationRepository) FindByUserID(ctx context.Context, userID string) (*entity.UserLocation, error) {
	var locationM model.UserLocationModel

	// The proximity check runs right after the write
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("user_id = ?", userID).
		First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by user ID")
	}

	return toLocationDomain(&locationM), nil
}

// --- Mapper Functions ---

func toLocationDomain(data *model.UserLocationModel) *entity.UserLocation {
	if data == nil {
		return nil
	}

	return &entity.UserLocation{
		UserID:     data.UserID,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Accuracy:   data.Accuracy,
		ObservedAt: data.ObservedAt.UTC(),
		RecordedAt: data.RecordedAt.UTC(),
	}
}

func fromLocationDomain(data *entity.UserLocation) *model.UserLocationModel {
	if data == nil {
		return nil
	}

	return &model.UserLocationModel{
		UserID:     data.UserID,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Accuracy:   data.Accuracy,
		ObservedAt: data.ObservedAt,
		RecordedAt: data.RecordedAt,
	}
}
