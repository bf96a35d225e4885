package entity

import (
	"github.com/google/uuid"
)

// Experience is the read-only view of a reported experience used for notification copy.
type Experience struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}
