package model

import (
	"time"

	"github.com/google/uuid"
)

// EventModel is the GORM-specific struct for the 'events' table.
// Only the venue columns are written by this service.
type EventModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Location    string    `gorm:"type:text"`
	LocationLat *float64  `gorm:"type:decimal(10,8)"`
	LocationLng *float64  `gorm:"type:decimal(11,8)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}
