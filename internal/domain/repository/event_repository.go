// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"attendance/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrEventNotFound is returned when an event does not exist.
var ErrEventNotFound = errors.New("event not found")

// EventRepository reads events and stores their resolved venue coordinates.
type EventRepository interface {
	// FindEventByID retrieves an event by its unique ID.
	FindEventByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)

	// UpdateEventCoordinates stores the resolved venue position of an event.
	UpdateEventCoordinates(ctx context.Context, id uuid.UUID, coords entity.Coordinates) error
}
