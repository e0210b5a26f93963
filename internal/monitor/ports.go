package monitor

import (
	"context"
	"time"

	"attendance/internal/domain/entity"
	"attendance/internal/errors"
	"attendance/internal/usecase"

	"github.com/google/uuid"
)

var (
	// ErrPermissionDenied is reported when location access is refused.
	ErrPermissionDenied = errors.New("Location access denied. Manual check-out will be required.")
	// ErrGeolocationUnsupported is reported when the device cannot produce positions.
	ErrGeolocationUnsupported = errors.New("Geolocation is not supported by this device")
	// ErrPositionUnavailable is reported when a permission probe could not obtain a position.
	ErrPositionUnavailable = errors.New("Failed to get location")
)

// PermissionState mirrors the platform's location permission.
type PermissionState string

const (
	PermissionStateUnknown     PermissionState = ""
	PermissionStatePrompt      PermissionState = "prompt"
	PermissionStateGranted     PermissionState = "granted"
	PermissionStateDenied      PermissionState = "denied"
	PermissionStateUnsupported PermissionState = "unsupported"
)

// PermissionSource reports the platform location permission.
type PermissionSource interface {
	// Query returns the current permission without prompting the user.
	Query(ctx context.Context) (PermissionState, error)
	// Subscribe registers fn for permission changes and returns a function
	// that removes the subscription.
	Subscribe(fn func(PermissionState)) (unsubscribe func())
}

// SampleOptions tune a single position request.
type SampleOptions struct {
	HighAccuracy bool
	Timeout      time.Duration
	// MaxAge is the oldest cached position the source may return; zero forces a fresh fix.
	MaxAge time.Duration
}

// PositionSource produces device positions. A refusal must be reported as an
// error matching ErrPermissionDenied.
type PositionSource interface {
	CurrentPosition(ctx context.Context, opts SampleOptions) (entity.Coordinates, error)
}

// Tracker is the server side of the monitor. usecase.GeofenceUsecase
// satisfies it in-process and trackerclient over HTTP. Expected outcomes are
// reported as domain errors: ErrBackInRadius from AutoCheckOut and
// ErrVenueCoordinatesRequired from CheckInRadius.
type Tracker interface {
	TrackLocation(ctx context.Context, eventID, userID uuid.UUID, coords entity.Coordinates) (*entity.Attendance, error)
	CheckInRadius(ctx context.Context, input *usecase.RadiusCheckInput) (*usecase.RadiusResult, error)
	AutoCheckOut(ctx context.Context, eventID, userID uuid.UUID) (*entity.Attendance, error)
}
