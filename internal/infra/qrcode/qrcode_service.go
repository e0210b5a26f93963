package qrcode

import (
	"strings"

	domainerrors "attendance/internal/domain/errors"
	"attendance/internal/domain/service"
	"attendance/internal/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

// checkinPrefix starts every attendee check-in payload: user-{userID}-{eventID}.
const checkinPrefix = "user-"

// uuidTextLength is the length of a canonical hyphenated UUID.
const uuidTextLength = 36

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(errorCorrectionLevel),
	}
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// CheckinPayload returns the text an attendee presents at the door
func (s *qrcodeService) CheckinPayload(userID, eventID uuid.UUID) string {
	return checkinPrefix + userID.String() + "-" + eventID.String()
}

// GenerateCheckinQR renders the attendee's check-in payload as a PNG
func (s *qrcodeService) GenerateCheckinQR(userID, eventID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.CheckinPayload(userID, eventID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseCheckinCode splits a scanned payload into user and event IDs.
// UUIDs contain hyphens, so the IDs are cut by their fixed length.
func (s *qrcodeService) ParseCheckinCode(code string) (uuid.UUID, uuid.UUID, error) {
	code = strings.TrimSpace(code)

	rest, ok := strings.CutPrefix(code, checkinPrefix)
	if !ok || len(rest) != 2*uuidTextLength+1 || rest[uuidTextLength] != '-' {
		return uuid.Nil, uuid.Nil, domainerrors.ErrInvalidQRCode
	}

	userID, err := uuid.Parse(rest[:uuidTextLength])
	if err != nil {
		return uuid.Nil, uuid.Nil, domainerrors.ErrInvalidQRCode.WithDetails("malformed user ID")
	}

	eventID, err := uuid.Parse(rest[uuidTextLength+1:])
	if err != nil {
		return uuid.Nil, uuid.Nil, domainerrors.ErrInvalidQRCode.WithDetails("malformed event ID")
	}

	return userID, eventID, nil
}
