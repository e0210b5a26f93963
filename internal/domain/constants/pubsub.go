// Package constants holds identifiers shared between publishers and consumers.
package constants

const (
	// AttendanceEventsTopic is the topic attendance changes are published to.
	AttendanceEventsTopic = "attendance-events"

	// AttendanceEventTypeAttribute is the message attribute carrying the event type.
	AttendanceEventTypeAttribute = "event_type"
)

// Pub/Sub provider names accepted by the pubsub.provider setting.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
