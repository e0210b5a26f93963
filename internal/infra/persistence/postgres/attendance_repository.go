// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"attendance/internal/domain/entity"
	domainerrors "attendance/internal/domain/errors"
	"attendance/internal/domain/repository"
	"attendance/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// attendanceRepository implements the repository.AttendanceRepository interface.
type attendanceRepository struct {
	db *gorm.DB
}

// NewAttendanceRepository is the constructor for attendanceRepository.
func NewAttendanceRepository(db *gorm.DB) repository.AttendanceRepository {
	return &attendanceRepository{
		db: db,
	}
}

// CreateAttendance inserts an active record. The partial unique index
// uniq_attendances_active rejects a second active record for the same pair.
func (repo *attendanceRepository) CreateAttendance(ctx context.Context, attendance *entity.Attendance) error {
	attendanceM := fromAttendanceDomain(attendance)

	if err := repo.db.WithContext(ctx).Omit("Event").Create(attendanceM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrActiveAttendanceExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrEventNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create attendance")
	}

	attendance.ID = attendanceM.ID
	attendance.CreatedAt = attendanceM.CreatedAt
	attendance.UpdatedAt = attendanceM.UpdatedAt

	return nil
}

// FindActiveAttendance returns the active record of a user at an event.
func (repo *attendanceRepository) FindActiveAttendance(ctx context.Context, eventID, userID uuid.UUID) (*entity.Attendance, error) {
	var attendanceM model.AttendanceModel

	if err := repo.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ? AND is_checked_in = ?", eventID, userID, true).
		First(&attendanceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAttendanceNotFound
		}

		return nil, errors.Wrap(err, "failed to find active attendance")
	}

	return toAttendanceDomain(&attendanceM), nil
}

// FindActiveAttendancesByEvent returns every active record of an event, newest check-in first.
func (repo *attendanceRepository) FindActiveAttendancesByEvent(ctx context.Context, eventID uuid.UUID) ([]*entity.Attendance, error) {
	var attendanceModels []*model.AttendanceModel

	if err := repo.db.WithContext(ctx).
		Where("event_id = ? AND is_checked_in = ?", eventID, true).
		Order("checked_in_at DESC").
		Find(&attendanceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active attendances")
	}

	attendances := make([]*entity.Attendance, len(attendanceModels))
	for i, attendanceM := range attendanceModels {
		attendances[i] = toAttendanceDomain(attendanceM)
	}

	return attendances, nil
}

// CloseAttendance closes an active record. The is_checked_in guard makes a
// racing second close affect zero rows.
func (repo *attendanceRepository) CloseAttendance(ctx context.Context, id uuid.UUID, checkedOutAt time.Time, initiator entity.Initiator) error {
	kind := string(initiator.Kind())
	updates := map[string]any{
		"is_checked_in":       false,
		"checked_out_at":      checkedOutAt,
		"checked_out_by_kind": kind,
		"checked_out_by":      nil,
		"updated_at":          checkedOutAt,
	}
	if adminID, ok := initiator.AdminID(); ok {
		updates["checked_out_by"] = adminID
	}

	result := repo.db.WithContext(ctx).
		Model(&model.AttendanceModel{}).
		Where("id = ? AND is_checked_in = ?", id, true).
		Updates(updates)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to close attendance")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAttendanceNotFound
	}

	return nil
}

// UpdateLastLocation overwrites the last location of an active record.
func (repo *attendanceRepository) UpdateLastLocation(ctx context.Context, id uuid.UUID, sample entity.LocationSample) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AttendanceModel{}).
		Where("id = ? AND is_checked_in = ?", id, true).
		Updates(map[string]any{
			"last_location_lat": sample.Lat,
			"last_location_lng": sample.Lng,
			"last_location_at":  sample.RecordedAt,
			"updated_at":        sample.RecordedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update last location")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAttendanceNotFound
	}

	return nil
}

func toAttendanceDomain(data *model.AttendanceModel) *entity.Attendance {
	if data == nil {
		return nil
	}

	attendance := &entity.Attendance{
		ID:           data.ID,
		EventID:      data.EventID,
		UserID:       data.UserID,
		IsCheckedIn:  data.IsCheckedIn,
		CheckedInAt:  data.CheckedInAt,
		CheckedOutAt: data.CheckedOutAt,
		EntryMethod:  entity.EntryMethod(data.EntryMethod),
		CheckedInBy:  data.CheckedInBy,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.CheckedOutByKind != nil {
		if initiator, ok := entity.InitiatorFromParts(*data.CheckedOutByKind, data.CheckedOutBy); ok {
			attendance.CheckedOutBy = &initiator
		}
	}

	if data.LastLocationLat != nil && data.LastLocationLng != nil {
		sample := entity.LocationSample{
			Coordinates: entity.Coordinates{Lat: *data.LastLocationLat, Lng: *data.LastLocationLng},
		}
		if data.LastLocationAt != nil {
			sample.RecordedAt = *data.LastLocationAt
		}
		attendance.LastLocation = &sample
	}

	return attendance
}

func fromAttendanceDomain(data *entity.Attendance) *model.AttendanceModel {
	if data == nil {
		return nil
	}

	attendanceM := &model.AttendanceModel{
		ID:           data.ID,
		EventID:      data.EventID,
		UserID:       data.UserID,
		IsCheckedIn:  data.IsCheckedIn,
		CheckedInAt:  data.CheckedInAt,
		CheckedOutAt: data.CheckedOutAt,
		EntryMethod:  string(data.EntryMethod),
		CheckedInBy:  data.CheckedInBy,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}

	if data.CheckedOutBy != nil {
		kind := string(data.CheckedOutBy.Kind())
		attendanceM.CheckedOutByKind = &kind
		if adminID, ok := data.CheckedOutBy.AdminID(); ok {
			attendanceM.CheckedOutBy = &adminID
		}
	}

	if data.LastLocation != nil {
		lat, lng, at := data.LastLocation.Lat, data.LastLocation.Lng, data.LastLocation.RecordedAt
		attendanceM.LastLocationLat = &lat
		attendanceM.LastLocationLng = &lng
		attendanceM.LastLocationAt = &at
	}

	return attendanceM
}
