package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for attendee check-in codes
type QRCodeService interface {
	// CheckinPayload returns the text encoded in a user's check-in code for an event
	CheckinPayload(userID, eventID uuid.UUID) string

	// GenerateCheckinQR renders the check-in payload as a PNG QR code
	GenerateCheckinQR(userID, eventID uuid.UUID) ([]byte, error)

	// ParseCheckinCode extracts the user and event IDs from a scanned payload
	ParseCheckinCode(code string) (userID uuid.UUID, eventID uuid.UUID, err error)
}
