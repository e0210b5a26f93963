// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"attendance/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for attendance persistence.
var (
	// ErrAttendanceNotFound is returned when no active attendance matches.
	ErrAttendanceNotFound = errors.New("attendance not found")
	// ErrActiveAttendanceExists is returned when a second active record for the same (event, user) is created.
	ErrActiveAttendanceExists = errors.New("active attendance already exists")
)

// AttendanceRepository persists attendance records. Implementations must keep
// at most one active record per (event, user) even under concurrent writers.
type AttendanceRepository interface {
	// CreateAttendance inserts an active record, or returns ErrActiveAttendanceExists.
	CreateAttendance(ctx context.Context, attendance *entity.Attendance) error

	// FindActiveAttendance returns the active record of a user at an event.
	FindActiveAttendance(ctx context.Context, eventID, userID uuid.UUID) (*entity.Attendance, error)

	// FindActiveAttendancesByEvent returns every active record of an event, newest check-in first.
	FindActiveAttendancesByEvent(ctx context.Context, eventID uuid.UUID) ([]*entity.Attendance, error)

	// CloseAttendance closes an active record. It returns ErrAttendanceNotFound
	// when the record is already closed, so only one of two racing closers wins.
	CloseAttendance(ctx context.Context, id uuid.UUID, checkedOutAt time.Time, initiator entity.Initiator) error

	// UpdateLastLocation overwrites the last location of an active record.
	UpdateLastLocation(ctx context.Context, id uuid.UUID, sample entity.LocationSample) error
}
