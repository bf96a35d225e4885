package model

import (
	"time"

	"github.com/google/uuid"
)

// ExperienceModel maps the 'experiences' table owned by the experience service.
// Only the columns used for notification copy are read.
type ExperienceModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Title       string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (ExperienceModel) TableName() string {
	return "experiences"
}

// PushSubscriptionModel maps the 'push_subscriptions' table owned by the subscription service.
type PushSubscriptionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    string    `gorm:"type:text;not null;index"`
	Platform  string    `gorm:"type:text;not null"`
	Endpoint  string    `gorm:"type:text;not null;uniqueIndex"`
	P256dh    string    `gorm:"type:text"`
	Auth      string    `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushSubscriptionModel) TableName() string {
	return "push_subscriptions"
}
