package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"attendance/config"
	deliverycontext "attendance/internal/delivery/context"
	"attendance/internal/domain/entity"
	domainerrors "attendance/internal/domain/errors"
	"attendance/internal/domain/geo"
	"attendance/internal/usecase"
	"attendance/internal/util"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

type geofenceService struct {
	checkinUsecase usecase.CheckinUsecase
	venueUsecase   usecase.VenueUsecase
	config         *config.Config
	logger         *slog.Logger
}

// NewGeofenceService creates a new geofence service instance
func NewGeofenceService(
	checkinUsecase usecase.CheckinUsecase,
	venueUsecase usecase.VenueUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.GeofenceUsecase {
	cfg.Geofence.ApplyDefaults()

	return &geofenceService{
		checkinUsecase: checkinUsecase,
		venueUsecase:   venueUsecase,
		config:         cfg,
		logger:         logger,
	}
}

// TrackLocation records a tracked position of a checked-in user
func (s *geofenceService) TrackLocation(ctx context.Context, eventID, userID uuid.UUID, coords entity.Coordinates) (*entity.Attendance, error) {
	attendance, err := s.checkinUsecase.RecordLocation(ctx, eventID, userID, coords)
	if err != nil {
		return nil, err
	}

	return attendance, nil
}

// CheckInRadius evaluates a position against the event's venue
func (s *geofenceService) CheckInRadius(ctx context.Context, input *usecase.RadiusCheckInput) (*usecase.RadiusResult, error) {
	if input == nil || input.EventID == uuid.Nil || input.UserID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("event and user IDs are required")
	}

	if !input.Coords.Valid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("coordinates are out of range")
	}

	venue, ok := s.venueUsecase.ResolveEventCoordinates(ctx, input.EventID)
	if !ok {
		return nil, domainerrors.ErrVenueCoordinatesRequired
	}

	radius := s.normalizeRadius(input.RadiusMeters)
	distance := geo.Distance(input.Coords.Point(), venue.Point())

	return &usecase.RadiusResult{
		InRadius:       distance <= radius,
		DistanceMeters: distance,
		RadiusMeters:   radius,
	}, nil
}

// AutoCheckOut closes the record on behalf of the geofence. A stored location
// inside the radius wins over the client's claim and yields ErrBackInRadius.
// Without a stored location the check-out proceeds.
func (s *geofenceService) AutoCheckOut(ctx context.Context, eventID, userID uuid.UUID) (*entity.Attendance, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("event_id", eventID.String()),
		slog.String("user_id", userID.String()),
	)

	attendance, err := s.checkinUsecase.GetActiveCheckin(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}

	if attendance.LastLocation != nil {
		result, err := s.CheckInRadius(ctx, &usecase.RadiusCheckInput{
			EventID: eventID,
			UserID:  userID,
			Coords:  attendance.LastLocation.Coordinates,
		})
		if err != nil {
			return nil, err
		}

		if result.InRadius {
			logger.Info("Auto check-out rejected, stored location is inside the radius",
				slog.String("distance", util.FormatMeters(result.DistanceMeters)),
				slog.String("radius", util.FormatMeters(result.RadiusMeters)),
			)

			return nil, domainerrors.ErrBackInRadius
		}
	} else {
		logger.Info("Auto check-out without stored location")
	}

	closed, err := s.checkinUsecase.CheckOut(ctx, eventID, userID, entity.AutomaticInitiator())
	if err != nil {
		return nil, err
	}

	logger.Info("User automatically checked out")

	return closed, nil
}

// GeofenceStatus lists checked-in attendees with their distance to the venue
func (s *geofenceService) GeofenceStatus(ctx context.Context, eventID uuid.UUID, radiusMeters float64) (*usecase.GeofenceReport, error) {
	attendances, err := s.checkinUsecase.ListCheckedIn(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list checked-in attendees: %w", err)
	}

	report := &usecase.GeofenceReport{
		EventID:      eventID,
		RadiusMeters: s.normalizeRadius(radiusMeters),
		Attendees:    make([]*usecase.AttendeeGeofenceStatus, 0, len(attendances)),
	}

	var points orb.MultiPoint
	if venue, ok := s.venueUsecase.ResolveEventCoordinates(ctx, eventID); ok {
		report.Venue = &venue
		points = append(points, venue.Point())
	}

	for _, attendance := range attendances {
		status := &usecase.AttendeeGeofenceStatus{Attendance: attendance}
		if attendance.LastLocation != nil {
			point := attendance.LastLocation.Point()
			points = append(points, point)

			if report.Venue != nil {
				distance := geo.Distance(point, report.Venue.Point())
				inRadius := distance <= report.RadiusMeters
				status.DistanceMeters = &distance
				status.InRadius = &inRadius
			}
		}
		report.Attendees = append(report.Attendees, status)
	}

	if len(points) > 0 {
		bound := points.Bound()
		report.Bounds = &bound
	}

	return report, nil
}

func (s *geofenceService) normalizeRadius(radius float64) float64 {
	if radius <= 0 || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return s.config.Geofence.DefaultRadius
	}

	return radius
}
