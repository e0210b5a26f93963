package model

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceModel is the GORM-specific struct for the 'attendances' table.
// The active-record uniqueness lives in a partial index created by Migrate.
type AttendanceModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	EventID          uuid.UUID  `gorm:"type:uuid;not null;index:idx_attendances_event_checked_in_at,priority:1"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	IsCheckedIn      bool       `gorm:"not null;default:true"`
	CheckedInAt      time.Time  `gorm:"not null;index:idx_attendances_event_checked_in_at,priority:2,sort:desc"`
	CheckedOutAt     *time.Time
	EntryMethod      string     `gorm:"type:varchar(32);not null"`
	CheckedInBy      uuid.UUID  `gorm:"type:uuid;not null"`
	CheckedOutByKind *string    `gorm:"type:varchar(16)"`
	CheckedOutBy     *uuid.UUID `gorm:"type:uuid"`
	LastLocationLat  *float64   `gorm:"type:decimal(10,8)"`
	LastLocationLng  *float64   `gorm:"type:decimal(11,8)"`
	LastLocationAt   *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Event *EventModel `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AttendanceModel) TableName() string {
	return "attendances"
}
