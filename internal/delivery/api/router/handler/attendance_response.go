package handler

import (
	"time"

	"attendance/internal/domain/entity"
	"attendance/internal/usecase"

	"github.com/google/uuid"
)

// AttendanceResponse is the wire form of an attendance record
type AttendanceResponse struct {
	ID           uuid.UUID              `json:"id"`
	EventID      uuid.UUID              `json:"event_id"`
	UserID       uuid.UUID              `json:"user_id"`
	IsCheckedIn  bool                   `json:"is_checked_in"`
	CheckedInAt  time.Time              `json:"checked_in_at"`
	CheckedOutAt *time.Time             `json:"checked_out_at,omitempty"`
	EntryMethod  entity.EntryMethod     `json:"entry_method"`
	CheckedInBy  uuid.UUID              `json:"checked_in_by"`
	CheckedOutBy *InitiatorResponse     `json:"checked_out_by,omitempty"`
	LastLocation *entity.LocationSample `json:"last_location,omitempty"`
}

// InitiatorResponse names who closed a record
type InitiatorResponse struct {
	Kind    entity.InitiatorKind `json:"kind"`
	AdminID *uuid.UUID           `json:"admin_id,omitempty"`
}

// AttendeeGeofenceResponse is one row of the geofence report
type AttendeeGeofenceResponse struct {
	Attendance     *AttendanceResponse `json:"attendance"`
	DistanceMeters *float64            `json:"distance,omitempty"`
	InRadius       *bool               `json:"in_radius,omitempty"`
}

// GeofenceReportResponse is the admin geofence view of an event
type GeofenceReportResponse struct {
	EventID      uuid.UUID                   `json:"event_id"`
	Venue        *entity.Coordinates         `json:"venue,omitempty"`
	RadiusMeters float64                     `json:"radius"`
	Attendees    []*AttendeeGeofenceResponse `json:"attendees"`
	Bounds       *BoundsResponse             `json:"bounds,omitempty"`
}

// BoundsResponse is the south-west and north-east corner of the report area
type BoundsResponse struct {
	Min entity.Coordinates `json:"min"`
	Max entity.Coordinates `json:"max"`
}

func toAttendanceResponse(a *entity.Attendance) *AttendanceResponse {
	if a == nil {
		return nil
	}

	resp := &AttendanceResponse{
		ID:           a.ID,
		EventID:      a.EventID,
		UserID:       a.UserID,
		IsCheckedIn:  a.IsCheckedIn,
		CheckedInAt:  a.CheckedInAt,
		CheckedOutAt: a.CheckedOutAt,
		EntryMethod:  a.EntryMethod,
		CheckedInBy:  a.CheckedInBy,
		LastLocation: a.LastLocation,
	}

	if a.CheckedOutBy != nil {
		initiator := &InitiatorResponse{Kind: a.CheckedOutBy.Kind()}
		if adminID, ok := a.CheckedOutBy.AdminID(); ok {
			initiator.AdminID = &adminID
		}
		resp.CheckedOutBy = initiator
	}

	return resp
}

func toAttendanceResponses(list []*entity.Attendance) []*AttendanceResponse {
	result := make([]*AttendanceResponse, 0, len(list))
	for _, a := range list {
		result = append(result, toAttendanceResponse(a))
	}

	return result
}

func toGeofenceReportResponse(report *usecase.GeofenceReport) *GeofenceReportResponse {
	resp := &GeofenceReportResponse{
		EventID:      report.EventID,
		Venue:        report.Venue,
		RadiusMeters: report.RadiusMeters,
		Attendees:    make([]*AttendeeGeofenceResponse, 0, len(report.Attendees)),
	}

	for _, attendee := range report.Attendees {
		resp.Attendees = append(resp.Attendees, &AttendeeGeofenceResponse{
			Attendance:     toAttendanceResponse(attendee.Attendance),
			DistanceMeters: attendee.DistanceMeters,
			InRadius:       attendee.InRadius,
		})
	}

	if report.Bounds != nil {
		resp.Bounds = &BoundsResponse{
			Min: entity.CoordinatesFromPoint(report.Bounds.Min),
			Max: entity.CoordinatesFromPoint(report.Bounds.Max),
		}
	}

	return resp
}
