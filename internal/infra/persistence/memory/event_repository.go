package memory

import (
	"context"
	"sync"

	"attendance/internal/domain/entity"
	"attendance/internal/domain/repository"

	"github.com/google/uuid"
)

// EventRepository is an in-memory repository.EventRepository.
type EventRepository struct {
	mu     sync.RWMutex
	events map[uuid.UUID]entity.Event
}

// NewEventRepository returns a store seeded with events.
func NewEventRepository(events ...*entity.Event) *EventRepository {
	repo := &EventRepository{events: make(map[uuid.UUID]entity.Event, len(events))}
	for _, event := range events {
		repo.Save(event)
	}

	return repo
}

// Save inserts or replaces an event.
func (repo *EventRepository) Save(event *entity.Event) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.events[event.ID] = cloneEvent(*event)
}

// FindEventByID retrieves a copy of an event.
func (repo *EventRepository) FindEventByID(_ context.Context, id uuid.UUID) (*entity.Event, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	event, ok := repo.events[id]
	if !ok {
		return nil, repository.ErrEventNotFound
	}

	out := cloneEvent(event)

	return &out, nil
}

// UpdateEventCoordinates stores the resolved venue position of an event.
func (repo *EventRepository) UpdateEventCoordinates(_ context.Context, id uuid.UUID, coords entity.Coordinates) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	event, ok := repo.events[id]
	if !ok {
		return repository.ErrEventNotFound
	}

	lat, lng := coords.Lat, coords.Lng
	event.LocationLat = &lat
	event.LocationLng = &lng
	repo.events[id] = event

	return nil
}

func cloneEvent(e entity.Event) entity.Event {
	if e.LocationLat != nil {
		lat := *e.LocationLat
		e.LocationLat = &lat
	}
	if e.LocationLng != nil {
		lng := *e.LocationLng
		e.LocationLng = &lng
	}

	return e
}
