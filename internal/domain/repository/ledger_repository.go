package repository

import (
	"context"
	"time"

	"geofence/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for the notification ledger.
var (
	// ErrNotificationNotFound is returned when a ledger record is not found.
	ErrNotificationNotFound = errors.New("notification not found")
)

// LedgerRepository is the append-only record of proximity notifications used for cooldown.
type LedgerRepository interface {
	// HasRecentNotification reports whether a record exists for the pair created after since.
	HasRecentNotification(ctx context.Context, userID string, regionID uuid.UUID, since time.Time) (bool, error)

	// Record appends a record unconditionally.
	Record(ctx context.Context, record *entity.ProximityNotification) error

	// RecordIfNoneSince appends the record only if no record for the same (user, region)
	// pair was created after since. Check and insert are atomic; it reports whether it inserted.
	RecordIfNoneSince(ctx context.Context, record *entity.ProximityNotification, since time.Time) (bool, error)

	// MarkDelivered sets the delivered flag of a record.
	MarkDelivered(ctx context.Context, id uuid.UUID, delivered bool) error

	// FindByUserID lists a user's records, newest first.
	FindByUserID(ctx context.Context, userID string, limit, offset int) ([]*entity.ProximityNotification, error)
}
