package repository

import (
	"context"

	"geofence/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for experience lookups.
var (
	// ErrExperienceNotFound is returned when an experience is not found.
	ErrExperienceNotFound = errors.New("experience not found")
)

// ExperienceRepository is the read side of the experience collaborator.
type ExperienceRepository interface {
	// FindByID retrieves a single experience.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Experience, error)

	// FindByIDs retrieves experiences keyed by ID. Missing IDs are absent from the map.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.Experience, error)
}
