// Package memory keeps attendance and events in process memory. It backs
// local development and tests and honours the same uniqueness guarantees
// as the PostgreSQL store.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"attendance/internal/domain/entity"
	"attendance/internal/domain/repository"

	"github.com/google/uuid"
)

type activeKey struct {
	eventID uuid.UUID
	userID  uuid.UUID
}

// AttendanceRepository is a mutex-guarded repository.AttendanceRepository.
type AttendanceRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*entity.Attendance
	active  map[activeKey]uuid.UUID
}

// NewAttendanceRepository returns an empty in-memory attendance store.
func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{
		records: make(map[uuid.UUID]*entity.Attendance),
		active:  make(map[activeKey]uuid.UUID),
	}
}

// CreateAttendance inserts an active record unless one already exists for the pair.
func (repo *AttendanceRepository) CreateAttendance(_ context.Context, attendance *entity.Attendance) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	key := activeKey{eventID: attendance.EventID, userID: attendance.UserID}
	if _, exists := repo.active[key]; exists {
		return repository.ErrActiveAttendanceExists
	}

	if attendance.ID == uuid.Nil {
		attendance.ID = uuid.New()
	}
	now := time.Now()
	if attendance.CreatedAt.IsZero() {
		attendance.CreatedAt = now
	}
	attendance.UpdatedAt = attendance.CreatedAt

	repo.records[attendance.ID] = cloneAttendance(attendance)
	repo.active[key] = attendance.ID

	return nil
}

// FindActiveAttendance returns a copy of the active record of a user at an event.
func (repo *AttendanceRepository) FindActiveAttendance(_ context.Context, eventID, userID uuid.UUID) (*entity.Attendance, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	id, ok := repo.active[activeKey{eventID: eventID, userID: userID}]
	if !ok {
		return nil, repository.ErrAttendanceNotFound
	}

	return cloneAttendance(repo.records[id]), nil
}

// FindActiveAttendancesByEvent returns copies of the active records of an event, newest first.
func (repo *AttendanceRepository) FindActiveAttendancesByEvent(_ context.Context, eventID uuid.UUID) ([]*entity.Attendance, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	attendances := make([]*entity.Attendance, 0)
	for key, id := range repo.active {
		if key.eventID == eventID {
			attendances = append(attendances, cloneAttendance(repo.records[id]))
		}
	}

	slices.SortFunc(attendances, func(a, b *entity.Attendance) int {
		return b.CheckedInAt.Compare(a.CheckedInAt)
	})

	return attendances, nil
}

// CloseAttendance closes the record if it is still active.
func (repo *AttendanceRepository) CloseAttendance(_ context.Context, id uuid.UUID, checkedOutAt time.Time, initiator entity.Initiator) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	record, ok := repo.records[id]
	if !ok || !record.IsCheckedIn {
		return repository.ErrAttendanceNotFound
	}

	record.Close(checkedOutAt, initiator)
	delete(repo.active, activeKey{eventID: record.EventID, userID: record.UserID})

	return nil
}

// UpdateLastLocation overwrites the last location of an active record.
func (repo *AttendanceRepository) UpdateLastLocation(_ context.Context, id uuid.UUID, sample entity.LocationSample) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	record, ok := repo.records[id]
	if !ok || !record.IsCheckedIn {
		return repository.ErrAttendanceNotFound
	}

	record.LastLocation = &sample
	record.UpdatedAt = sample.RecordedAt

	return nil
}

func cloneAttendance(a *entity.Attendance) *entity.Attendance {
	if a == nil {
		return nil
	}

	out := *a
	if a.CheckedOutAt != nil {
		at := *a.CheckedOutAt
		out.CheckedOutAt = &at
	}
	if a.CheckedOutBy != nil {
		by := *a.CheckedOutBy
		out.CheckedOutBy = &by
	}
	if a.LastLocation != nil {
		loc := *a.LastLocation
		out.LastLocation = &loc
	}

	return &out
}
