package postgres

import (
	"context"
	"time"

	"geofence/internal/domain/entity"
	domainerrors "geofence/internal/domain/errors"
	"geofence/internal/domain/repository"
	"geofence/internal/geo"
	"geofence/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// regionRepository implements the repository.RegionRepository interface.
type regionRepository struct {
	db *gorm.DB
}

// NewRegionRepository is the constructor for regionRepository.
func NewRegionRepository(db *gorm.DB) repository.RegionRepository {
	return &regionRepository{
		db: db,
	}
}

// Create persists a new region.
func (repo *regionRepository) Create(ctx context.Context, region *entity.GeofenceRegion) error {
	regionM := fromRegionDomain(region)

	if err := repo.db.WithContext(ctx).Create(regionM).Error; err != nil {
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRadius.WrapMessage("region rejected by database constraint")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required region information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create region")
	}

	// Update the entity with generated values
	region.ID = regionM.ID
	region.CreatedAt = regionM.CreatedAt

	return nil
}

// FindByID retrieves a region regardless of its active flag.
func (repo *regionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.GeofenceRegion, error) {
	var regionM model.GeofenceRegionModel

	// Ownership checks read their own writes
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("id = ?", id).
		First(&regionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegionNotFound
		}

		return nil, errors.Wrap(err, "failed to find region by ID")
	}

	return toRegionDomain(&regionM), nil
}

// FindActiveInBox returns active regions whose center lies inside the box.
func (repo *regionRepository) FindActiveInBox(ctx context.Context, box geo.Box) ([]*entity.GeofenceRegion, error) {
	var regionModels []*model.GeofenceRegionModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Scopes(inBox(box)).
		Order("id").
		Find(&regionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find regions in box")
	}

	return toRegionDomains(regionModels), nil
}

// inBox limits rows to centers inside the box; a box across the antimeridian matches either side.
func inBox(box geo.Box) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("latitude BETWEEN ? AND ?", box.MinLat, box.MaxLat)
		if box.CrossesAntimeridian() {
			return db.Where("(longitude >= ? OR longitude <= ?)", box.MinLon, box.MaxLon)
		}

		return db.Where("longitude BETWEEN ? AND ?", box.MinLon, box.MaxLon)
	}
}

// FindAllActive returns every active region, newest first.
func (repo *regionRepository) FindAllActive(ctx context.Context) ([]*entity.GeofenceRegion, error) {
	var regionModels []*model.GeofenceRegionModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&regionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active regions")
	}

	return toRegionDomains(regionModels), nil
}

// Deactivate soft-deletes a region.
func (repo *regionRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GeofenceRegionModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_active":  false,
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate region")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRegionNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toRegionDomains(regionModels []*model.GeofenceRegionModel) []*entity.GeofenceRegion {
	regions := make([]*entity.GeofenceRegion, 0, len(regionModels))
	for _, regionM := range regionModels {
		regions = append(regions, toRegionDomain(regionM))
	}

	return regions
}

// toRegionDomain converts a GORM GeofenceRegionModel to a domain GeofenceRegion entity.
func toRegionDomain(data *model.GeofenceRegionModel) *entity.GeofenceRegion {
	if data == nil {
		return nil
	}

	return &entity.GeofenceRegion{
		ID:           data.ID,
		ExperienceID: data.ExperienceID,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		RadiusMeters: data.RadiusMeters,
		IsActive:     data.IsActive,
		CreatedBy:    data.CreatedBy,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromRegionDomain converts a domain GeofenceRegion entity to a GORM GeofenceRegionModel.
func fromRegionDomain(data *entity.GeofenceRegion) *model.GeofenceRegionModel {
	if data == nil {
		return nil
	}

	return &model.GeofenceRegionModel{
		ID:           data.ID,
		ExperienceID: data.ExperienceID,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		RadiusMeters: data.RadiusMeters,
		IsActive:     data.IsActive,
		CreatedBy:    data.CreatedBy,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
