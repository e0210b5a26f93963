package pubsub

import (
	"attendance/internal/domain/constants"
	"attendance/internal/domain/service"
)

// messageAttributes builds the attributes subscribers filter and trace on.
func messageAttributes(event *service.AttendanceEvent) map[string]string {
	attributes := map[string]string{
		constants.AttendanceEventTypeAttribute: string(event.Type),
		"event_id":                             event.EventID,
		"user_id":                              event.UserID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

func eventLogAttrs(event *service.AttendanceEvent) []any {
	return []any{
		"event_type", string(event.Type),
		"attendance_id", event.AttendanceID,
		"event_id", event.EventID,
	}
}
