package position

import (
	"context"
	"sync"

	"attendance/internal/domain/entity"
	"attendance/internal/errors"
	"attendance/internal/monitor"
)

// FixedSource always reports the same position.
type FixedSource struct {
	coords entity.Coordinates
}

// NewFixedSource creates a source pinned at coords.
func NewFixedSource(coords entity.Coordinates) (*FixedSource, error) {
	if !coords.Valid() {
		return nil, errors.Errorf("invalid coordinates %v,%v", coords.Lat, coords.Lng)
	}

	return &FixedSource{coords: coords}, nil
}

// CurrentPosition implements monitor.PositionSource.
func (s *FixedSource) CurrentPosition(ctx context.Context, _ monitor.SampleOptions) (entity.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return entity.Coordinates{}, errors.WithStack(err)
	}

	return s.coords, nil
}

// StaticPermission is a permission source whose state only changes through Set.
type StaticPermission struct {
	mu          sync.Mutex
	state       monitor.PermissionState
	subscribers map[int]func(monitor.PermissionState)
	nextID      int
}

// NewStaticPermission creates a permission source in the given state.
func NewStaticPermission(state monitor.PermissionState) *StaticPermission {
	return &StaticPermission{
		state:       state,
		subscribers: make(map[int]func(monitor.PermissionState)),
	}
}

// Query implements monitor.PermissionSource.
func (p *StaticPermission) Query(context.Context) (monitor.PermissionState, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.state, nil
}

// Subscribe implements monitor.PermissionSource.
func (p *StaticPermission) Subscribe(fn func(monitor.PermissionState)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	p.subscribers[id] = fn

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subscribers, id)
	}
}

// Set changes the state and notifies subscribers outside the lock.
func (p *StaticPermission) Set(state monitor.PermissionState) {
	p.mu.Lock()
	if p.state == state {
		p.mu.Unlock()

		return
	}
	p.state = state
	subscribers := make([]func(monitor.PermissionState), 0, len(p.subscribers))
	for _, fn := range p.subscribers {
		subscribers = append(subscribers, fn)
	}
	p.mu.Unlock()

	for _, fn := range subscribers {
		fn(state)
	}
}
