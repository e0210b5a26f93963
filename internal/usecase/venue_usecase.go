package usecase

import (
	"context"

	"attendance/internal/domain/entity"

	"github.com/google/uuid"
)

// VenueUsecase resolves where an event takes place
type VenueUsecase interface {
	// ResolveEventCoordinates returns the cached venue position, resolving and
	// caching it on first use. It reports false when no position can be found.
	ResolveEventCoordinates(ctx context.Context, eventID uuid.UUID) (entity.Coordinates, bool)
}
