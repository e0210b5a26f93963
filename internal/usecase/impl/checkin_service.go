package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	deliverycontext "attendance/internal/delivery/context"
	"attendance/internal/domain/entity"
	domainerrors "attendance/internal/domain/errors"
	"attendance/internal/domain/repository"
	"attendance/internal/domain/service"
	"attendance/internal/usecase"
	"attendance/internal/util/clock"

	"github.com/google/uuid"
)

type checkinService struct {
	attendanceRepo repository.AttendanceRepository
	qrService      service.QRCodeService
	publisher      service.EventPublisher
	clock          clock.Clock
	logger         *slog.Logger
}

// NewCheckinService creates a new check-in service instance
func NewCheckinService(
	attendanceRepo repository.AttendanceRepository,
	qrService service.QRCodeService,
	publisher service.EventPublisher,
	clk clock.Clock,
	logger *slog.Logger,
) usecase.CheckinUsecase {
	return &checkinService{
		attendanceRepo: attendanceRepo,
		qrService:      qrService,
		publisher:      publisher,
		clock:          clk,
		logger:         logger,
	}
}

// CheckIn validates the scanned code and opens an attendance record
func (s *checkinService) CheckIn(ctx context.Context, input *usecase.CheckInInput) (*entity.Attendance, error) {
	if input == nil || input.EventID == uuid.Nil || input.UserID == uuid.Nil || input.AdminID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("event, user and admin IDs are required")
	}

	codeUserID, codeEventID, err := s.qrService.ParseCheckinCode(input.QRCode)
	if err != nil {
		return nil, err
	}

	if codeUserID != input.UserID {
		return nil, domainerrors.ErrQRCodeUserMismatch
	}

	if codeEventID != input.EventID {
		return nil, domainerrors.ErrQRCodeEventMismatch
	}

	existing, err := s.findActive(ctx, input.EventID, input.UserID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return nil, domainerrors.ErrAlreadyCheckedIn
	}

	now := s.clock.Now()
	attendance := &entity.Attendance{
		ID:          uuid.New(),
		EventID:     input.EventID,
		UserID:      input.UserID,
		IsCheckedIn: true,
		CheckedInAt: now,
		EntryMethod: entity.EntryMethodQRScan,
		CheckedInBy: input.AdminID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.attendanceRepo.CreateAttendance(ctx, attendance); err != nil {
		switch {
		case errors.Is(err, repository.ErrActiveAttendanceExists):
			return nil, domainerrors.ErrAlreadyCheckedIn
		case errors.Is(err, repository.ErrEventNotFound):
			return nil, domainerrors.ErrEventNotFound
		}

		return nil, fmt.Errorf("failed to create attendance: %w", err)
	}

	s.publish(ctx, service.AttendanceEventCheckedIn, attendance, entity.AdminInitiator(input.AdminID))

	return attendance, nil
}

// CheckOut closes the active record of a user at an event
func (s *checkinService) CheckOut(ctx context.Context, eventID, userID uuid.UUID, initiator entity.Initiator) (*entity.Attendance, error) {
	if eventID == uuid.Nil || userID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("event and user IDs are required")
	}

	if !initiator.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("check-out initiator is invalid")
	}

	attendance, err := s.findActive(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}

	if attendance == nil {
		return nil, domainerrors.ErrNotCheckedIn
	}

	now := s.clock.Now()
	if err := s.attendanceRepo.CloseAttendance(ctx, attendance.ID, now, initiator); err != nil {
		// Lost a race against another check-out of the same record
		if errors.Is(err, repository.ErrAttendanceNotFound) {
			return nil, domainerrors.ErrNotCheckedIn
		}

		return nil, fmt.Errorf("failed to close attendance: %w", err)
	}

	attendance.Close(now, initiator)

	eventType := service.AttendanceEventCheckedOut
	if initiator.IsAutomatic() {
		eventType = service.AttendanceEventAutoCheckedOut
	}
	s.publish(ctx, eventType, attendance, initiator)

	return attendance, nil
}

// RecordLocation overwrites the last known position of a checked-in user
func (s *checkinService) RecordLocation(ctx context.Context, eventID, userID uuid.UUID, coords entity.Coordinates) (*entity.Attendance, error) {
	if eventID == uuid.Nil || userID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("event and user IDs are required")
	}

	if !coords.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("coordinates are out of range")
	}

	attendance, err := s.findActive(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}

	if attendance == nil {
		return nil, domainerrors.ErrNotCheckedIn
	}

	sample := entity.LocationSample{Coordinates: coords, RecordedAt: s.clock.Now()}
	if err := s.attendanceRepo.UpdateLastLocation(ctx, attendance.ID, sample); err != nil {
		if errors.Is(err, repository.ErrAttendanceNotFound) {
			return nil, domainerrors.ErrNotCheckedIn
		}

		return nil, fmt.Errorf("failed to update last location: %w", err)
	}

	attendance.LastLocation = &sample
	attendance.UpdatedAt = sample.RecordedAt

	return attendance, nil
}

// ListCheckedIn returns the active records of an event
func (s *checkinService) ListCheckedIn(ctx context.Context, eventID uuid.UUID) ([]*entity.Attendance, error) {
	if eventID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("event ID is required")
	}

	attendances, err := s.attendanceRepo.FindActiveAttendancesByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to find active attendances by event: %w", err)
	}

	return attendances, nil
}

// IsCheckedIn reports whether the user has an active record at the event
func (s *checkinService) IsCheckedIn(ctx context.Context, eventID, userID uuid.UUID) (bool, error) {
	attendance, err := s.GetActiveCheckin(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotCheckedIn) {
			return false, nil
		}

		return false, err
	}

	return attendance != nil, nil
}

// GetActiveCheckin returns the full active record
func (s *checkinService) GetActiveCheckin(ctx context.Context, eventID, userID uuid.UUID) (*entity.Attendance, error) {
	if eventID == uuid.Nil || userID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("event and user IDs are required")
	}

	attendance, err := s.findActive(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}

	if attendance == nil {
		return nil, domainerrors.ErrNotCheckedIn
	}

	return attendance, nil
}

// GenerateCheckinQR renders the attendee's code for the event
func (s *checkinService) GenerateCheckinQR(_ context.Context, eventID, userID uuid.UUID) ([]byte, error) {
	if eventID == uuid.Nil || userID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("event and user IDs are required")
	}

	png, err := s.qrService.GenerateCheckinQR(userID, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate check-in QR code: %w", err)
	}

	return png, nil
}

// findActive returns nil without error when the user has no active record
func (s *checkinService) findActive(ctx context.Context, eventID, userID uuid.UUID) (*entity.Attendance, error) {
	attendance, err := s.attendanceRepo.FindActiveAttendance(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrAttendanceNotFound) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to find active attendance: %w", err)
	}

	return attendance, nil
}

// publish announces a state change; failures are logged and never reach the caller
func (s *checkinService) publish(ctx context.Context, eventType service.AttendanceEventType, attendance *entity.Attendance, initiator entity.Initiator) {
	if s.publisher == nil {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	event := &service.AttendanceEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		Type:         eventType,
		AttendanceID: attendance.ID.String(),
		EventID:      attendance.EventID.String(),
		UserID:       attendance.UserID.String(),
		Initiator:    initiator.String(),
		OccurredAt:   attendance.UpdatedAt,
	}

	if err := s.publisher.PublishAttendanceEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish attendance event",
			slog.String("type", string(eventType)),
			slog.String("attendance_id", event.AttendanceID),
			slog.Any("error", err),
		)
	}
}
