package service

import (
	"context"
	"time"
)

// AttendanceEventType names the attendance change being announced.
type AttendanceEventType string

const (
	// AttendanceEventCheckedIn is published after a successful check-in.
	AttendanceEventCheckedIn AttendanceEventType = "checked_in"
	// AttendanceEventCheckedOut is published after an administrator check-out.
	AttendanceEventCheckedOut AttendanceEventType = "checked_out"
	// AttendanceEventAutoCheckedOut is published after a geofence check-out.
	AttendanceEventAutoCheckedOut AttendanceEventType = "auto_checked_out"
)

// AttendanceEvent is the message body announcing an attendance change
type AttendanceEvent struct {
	RequestID    string              `json:"request_id,omitempty"` // For distributed tracing
	Type         AttendanceEventType `json:"type"`
	AttendanceID string              `json:"attendance_id"`
	EventID      string              `json:"event_id"`
	UserID       string              `json:"user_id"`
	Initiator    string              `json:"initiator"`
	OccurredAt   time.Time           `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAttendanceEvent publishes an attendance change for downstream consumers
	PublishAttendanceEvent(ctx context.Context, event *AttendanceEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
