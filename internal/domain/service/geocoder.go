package service

import (
	"context"

	"attendance/internal/domain/entity"
)

// Geocoder turns a free-text address into coordinates.
type Geocoder interface {
	// Geocode returns the first match for address. It reports false on an
	// empty result or any failure and never returns an error.
	Geocode(ctx context.Context, address string) (entity.Coordinates, bool)
}
