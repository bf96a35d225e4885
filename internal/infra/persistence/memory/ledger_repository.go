package memory

import (
	"bytes"
	"context"
	"slices"
	"time"

	"geofence/internal/domain/entity"
	"geofence/internal/domain/repository"

	"github.com/google/uuid"
)

type ledgerRepository struct {
	store *Store
}

// NewLedgerRepository creates a notification ledger over the store
func NewLedgerRepository(store *Store) repository.LedgerRepository {
	return &ledgerRepository{store: store}
}

func (repo *ledgerRepository) HasRecentNotification(ctx context.Context, userID string, regionID uuid.UUID, since time.Time) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	return repo.hasRecentLocked(userID, regionID, since), nil
}

// hasRecentLocked requires store.mu
func (repo *ledgerRepository) hasRecentLocked(userID string, regionID uuid.UUID, since time.Time) bool {
	return slices.ContainsFunc(repo.store.ledger, func(record entity.ProximityNotification) bool {
		return record.UserID == userID && record.RegionID == regionID && record.CreatedAt.After(since)
	})
}

func (repo *ledgerRepository) Record(ctx context.Context, record *entity.ProximityNotification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	repo.store.ledger = append(repo.store.ledger, *record)

	return nil
}

func (repo *ledgerRepository) RecordIfNoneSince(ctx context.Context, record *entity.ProximityNotification, since time.Time) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if repo.hasRecentLocked(record.UserID, record.RegionID, since) {
		return false, nil
	}
	repo.store.ledger = append(repo.store.ledger, *record)

	return true, nil
}

func (repo *ledgerRepository) MarkDelivered(ctx context.Context, id uuid.UUID, delivered bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	idx := slices.IndexFunc(repo.store.ledger, func(record entity.ProximityNotification) bool {
		return record.ID == id
	})
	if idx < 0 {
		return repository.ErrNotificationNotFound
	}
	repo.store.ledger[idx].Delivered = delivered

	return nil
}

func (repo *ledgerRepository) FindByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.ProximityNotification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	records := make([]*entity.ProximityNotification, 0)
	for _, record := range repo.store.ledger {
		if record.UserID == userID {
			records = append(records, &record)
		}
	}

	// same order as the postgres driver: created_at DESC, id DESC
	slices.SortFunc(records, func(a, b *entity.ProximityNotification) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return bytes.Compare(b.ID[:], a.ID[:])
	})

	if offset >= len(records) {
		return []*entity.ProximityNotification{}, nil
	}
	records = records[offset:]
	if limit > 0 && limit < len(records) {
		records = records[:limit]
	}

	return records, nil
}
