package postgres

import (
	"context"
	"time"

	"geofence/internal/domain/entity"
	domainerrors "geofence/internal/domain/errors"
	"geofence/internal/domain/repository"
	"geofence/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// ledgerRepository implements the repository.LedgerRepository interface.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository is the constructor for ledgerRepository.
func NewLedgerRepository(db *gorm.DB) repository.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

// HasRecentNotification reports whether a record exists for the pair created after since.
func (repo *ledgerRepository) HasRecentNotification(ctx context.Context, userID string, regionID uuid.UUID, since time.Time) (bool, error) {
	return hasRecent(repo.db.WithContext(ctx).Clauses(dbresolver.Write), userID, regionID, since)
}

// Record appends a record unconditionally.
func (repo *ledgerRepository) Record(ctx context.Context, record *entity.ProximityNotification) error {
	return insertRecord(repo.db.WithContext(ctx), record)
}

// RecordIfNoneSince takes a transaction-scoped advisory lock on the (user, region) pair,
// so concurrent replicas cannot both pass the cooldown check.
func (repo *ledgerRepository) RecordIfNoneSince(ctx context.Context, record *entity.ProximityNotification, since time.Time) (bool, error) {
	inserted := false

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(
			"SELECT pg_advisory_xact_lock(hashtext(?))",
			record.UserID+"|"+record.RegionID.String(),
		).Error; err != nil {
			return errors.Wrap(err, "failed to lock notification pair")
		}

		recent, err := hasRecent(tx, record.UserID, record.RegionID, since)
		if err != nil {
			return err
		}
		if recent {
			return nil
		}

		if err := insertRecord(tx, record); err != nil {
			return err
		}
		inserted = true

		return nil
	})
	if err != nil {
		return false, err
	}

	return inserted, nil
}

// MarkDelivered sets the delivered flag of a record.
func (repo *ledgerRepository) MarkDelivered(ctx context.Context, id uuid.UUID, delivered bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProximityNotificationModel{}).
		Where("id = ?", id).
		Update("delivered", delivered)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification delivered")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// FindByUserID lists a user's records, newest first.
func (repo *ledgerRepository) FindByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.ProximityNotification, error) {
	var recordModels []*model.ProximityNotificationModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by user")
	}

	records := make([]*entity.ProximityNotification, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toNotificationDomain(recordM))
	}

	return records, nil
}

func hasRecent(db *gorm.DB, userID string, regionID uuid.UUID, since time.Time) (bool, error) {
	var count int64

	if err := db.Model(&model.ProximityNotificationModel{}).
		Where("user_id = ? AND region_id = ? AND created_at > ?", userID, regionID, since).
		Limit(1).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check recent notifications")
	}

	return count > 0, nil
}

func insertRecord(db *gorm.DB, record *entity.ProximityNotification) error {
	recordM := fromNotificationDomain(record)

	if err := db.Create(recordM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required notification information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to record notification")
	}

	// Update the entity with generated values
	record.ID = recordM.ID

	return nil
}

// --- Mapper Functions ---

func toNotificationDomain(data *model.ProximityNotificationModel) *entity.ProximityNotification {
	if data == nil {
		return nil
	}

	return &entity.ProximityNotification{
		ID:             data.ID,
		UserID:         data.UserID,
		RegionID:       data.RegionID,
		ExperienceID:   data.ExperienceID,
		DistanceMeters: data.DistanceMeters,
		Delivered:      data.Delivered,
		CreatedAt:      data.CreatedAt.UTC(),
	}
}

func fromNotificationDomain(data *entity.ProximityNotification) *model.ProximityNotificationModel {
	if data == nil {
		return nil
	}

	return &model.ProximityNotificationModel{
		ID:             data.ID,
		UserID:         data.UserID,
		RegionID:       data.RegionID,
		ExperienceID:   data.ExperienceID,
		DistanceMeters: data.DistanceMeters,
		Delivered:      data.Delivered,
		CreatedAt:      data.CreatedAt,
	}
}
