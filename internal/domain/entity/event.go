// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event is the venue an attendance is recorded against. Events are owned by an
// upstream system; this service only reads them and back-fills coordinates.
type Event struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the event.
	Title       string    // Display title.
	Location    string    // Free-text venue: a street address or a literal "lat,lng" pair.
	LocationLat *float64  // Cached venue latitude, nil until resolved.
	LocationLng *float64  // Cached venue longitude, nil until resolved.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CachedCoordinates returns the stored venue position when both components are present.
func (e *Event) CachedCoordinates() (Coordinates, bool) {
	if e.LocationLat == nil || e.LocationLng == nil {
		return Coordinates{}, false
	}

	return Coordinates{Lat: *e.LocationLat, Lng: *e.LocationLng}, true
}
