package usecase

import (
	"context"

	"attendance/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// RadiusCheckInput is a position to evaluate against an event's venue
type RadiusCheckInput struct {
	EventID uuid.UUID
	UserID  uuid.UUID
	Coords  entity.Coordinates
	// RadiusMeters <= 0 or non-finite selects the configured default
	RadiusMeters float64
}

// RadiusResult is the outcome of a radius evaluation
type RadiusResult struct {
	InRadius       bool    `json:"in_radius"`
	DistanceMeters float64 `json:"distance"`
	RadiusMeters   float64 `json:"radius"`
}

// AttendeeGeofenceStatus describes one checked-in attendee relative to the venue
type AttendeeGeofenceStatus struct {
	Attendance     *entity.Attendance
	DistanceMeters *float64 // nil without a last location or venue position
	InRadius       *bool
}

// GeofenceReport is the admin view of an event's geofence
type GeofenceReport struct {
	EventID      uuid.UUID
	Venue        *entity.Coordinates
	RadiusMeters float64
	Attendees    []*AttendeeGeofenceStatus
	// Bounds covers the venue and every known attendee position; nil when none is known
	Bounds *orb.Bound
}

// GeofenceUsecase evaluates positions against venues and performs automatic check-out
type GeofenceUsecase interface {
	// TrackLocation records a tracked position of a checked-in user
	TrackLocation(ctx context.Context, eventID, userID uuid.UUID, coords entity.Coordinates) (*entity.Attendance, error)

	// CheckInRadius reports whether a position lies within the venue radius
	CheckInRadius(ctx context.Context, input *RadiusCheckInput) (*RadiusResult, error)

	// AutoCheckOut closes the user's record after re-validating the stored location
	AutoCheckOut(ctx context.Context, eventID, userID uuid.UUID) (*entity.Attendance, error)

	// GeofenceStatus lists checked-in attendees with their distance to the venue
	GeofenceStatus(ctx context.Context, eventID uuid.UUID, radiusMeters float64) (*GeofenceReport, error)
}
