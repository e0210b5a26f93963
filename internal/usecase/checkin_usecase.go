package usecase

import (
	"context"

	"attendance/internal/domain/entity"

	"github.com/google/uuid"
)

// CheckInInput carries an administrator's scan of an attendee's check-in code
type CheckInInput struct {
	EventID uuid.UUID
	UserID  uuid.UUID
	QRCode  string
	AdminID uuid.UUID
}

// CheckinUsecase is the attendance store: it opens, closes and tracks
// check-in periods. Every operation is safe under concurrent callers.
type CheckinUsecase interface {
	// CheckIn opens an attendance record after validating the scanned code
	CheckIn(ctx context.Context, input *CheckInInput) (*entity.Attendance, error)

	// CheckOut closes the active record on behalf of initiator
	CheckOut(ctx context.Context, eventID, userID uuid.UUID, initiator entity.Initiator) (*entity.Attendance, error)

	// RecordLocation overwrites the last known position of a checked-in user
	RecordLocation(ctx context.Context, eventID, userID uuid.UUID, coords entity.Coordinates) (*entity.Attendance, error)

	// ListCheckedIn returns the active records of an event, newest check-in first
	ListCheckedIn(ctx context.Context, eventID uuid.UUID) ([]*entity.Attendance, error)

	// IsCheckedIn reports whether the user has an active record at the event
	IsCheckedIn(ctx context.Context, eventID, userID uuid.UUID) (bool, error)

	// GetActiveCheckin returns the active record or ErrNotCheckedIn
	GetActiveCheckin(ctx context.Context, eventID, userID uuid.UUID) (*entity.Attendance, error)

	// GenerateCheckinQR renders the attendee's check-in code for an event
	GenerateCheckinQR(ctx context.Context, eventID, userID uuid.UUID) ([]byte, error)
}
