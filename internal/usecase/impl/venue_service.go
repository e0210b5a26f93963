package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "attendance/internal/delivery/context"
	"attendance/internal/domain/entity"
	"attendance/internal/domain/geo"
	"attendance/internal/domain/repository"
	"attendance/internal/domain/service"
	"attendance/internal/usecase"

	"github.com/google/uuid"
)

type venueService struct {
	eventRepo repository.EventRepository
	geocoder  service.Geocoder
	logger    *slog.Logger
}

// NewVenueService creates a new venue service instance
func NewVenueService(eventRepo repository.EventRepository, geocoder service.Geocoder, logger *slog.Logger) usecase.VenueUsecase {
	return &venueService{
		eventRepo: eventRepo,
		geocoder:  geocoder,
		logger:    logger,
	}
}

// ResolveEventCoordinates returns the venue position of an event. Cached
// coordinates are returned as-is and never re-resolved, even if the event's
// location text has changed since.
func (s *venueService) ResolveEventCoordinates(ctx context.Context, eventID uuid.UUID) (entity.Coordinates, bool) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(slog.String("event_id", eventID.String()))

	event, err := s.eventRepo.FindEventByID(ctx, eventID)
	if err != nil {
		logger.Warn("Failed to load event for coordinate resolution", slog.Any("error", err))

		return entity.Coordinates{}, false
	}

	if coords, ok := event.CachedCoordinates(); ok {
		return coords, true
	}

	location := strings.TrimSpace(event.Location)
	if location == "" {
		return entity.Coordinates{}, false
	}

	var coords entity.Coordinates
	if point, ok := geo.ParseLiteral(location); ok {
		coords = entity.CoordinatesFromPoint(point)
	} else {
		resolved, ok := s.geocoder.Geocode(ctx, location)
		if !ok {
			logger.Info("Venue address could not be geocoded", slog.String("location", location))

			return entity.Coordinates{}, false
		}
		coords = resolved
	}

	if err := s.eventRepo.UpdateEventCoordinates(ctx, eventID, coords); err != nil {
		logger.Warn("Failed to cache event coordinates", slog.Any("error", err))
	}

	return coords, true
}
