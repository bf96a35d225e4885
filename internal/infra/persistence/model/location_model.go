package model

import "time"

// UserLocationModel is the GORM-specific struct for the 'user_locations' table.
// There is one row per user.
type UserLocationModel struct {
	UserID     string    `gorm:"type:text;primary_key"`
	Latitude   float64   `gorm:"type:double precision;not null"`
	Longitude  float64   `gorm:"type:double precision;not null"`
	Accuracy   float64   `gorm:"type:double precision;not null"`
	ObservedAt time.Time `gorm:"not null"`
	RecordedAt time.Time `gorm:"not null;autoUpdateTime:false;autoCreateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (UserLocationModel) TableName() string {
	return "user_locations"
}
