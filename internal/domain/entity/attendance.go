// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// EntryMethod records how an attendee was checked in.
type EntryMethod string

const (
	// EntryMethodQRScan indicates the attendee's check-in QR code was scanned.
	EntryMethodQRScan EntryMethod = "qr_scan"
	// EntryMethodManual indicates an administrator checked the attendee in by hand.
	EntryMethodManual EntryMethod = "manual"
)

// LocationSample is the most recent position reported by a checked-in attendee.
type LocationSample struct {
	Coordinates
	RecordedAt time.Time `json:"recorded_at"`
}

// Attendance is one check-in period of a user at an event. At most one record
// per (EventID, UserID) is active at a time.
type Attendance struct {
	ID           uuid.UUID       // The Global Unique Identifier (GUID) for this attendance record.
	EventID      uuid.UUID       // The event the user attends.
	UserID       uuid.UUID       // The attendee.
	IsCheckedIn  bool            // True while the record is active.
	CheckedInAt  time.Time       // When the check-in happened.
	CheckedOutAt *time.Time      // Set once the record is closed.
	EntryMethod  EntryMethod     // How the attendee was admitted.
	CheckedInBy  uuid.UUID       // Administrator that performed the check-in.
	CheckedOutBy *Initiator      // Who closed the record, nil while active.
	LastLocation *LocationSample // Latest tracked position, nil when none was recorded.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Close marks the record as checked out by initiator at the given time.
func (a *Attendance) Close(at time.Time, initiator Initiator) {
	a.IsCheckedIn = false
	a.CheckedOutAt = &at
	a.CheckedOutBy = &initiator
	a.UpdatedAt = at
}
