package qrcode

import (
	"testing"

	domainerrors "attendance/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		input string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"low", qrcode.Low},
		{"M", qrcode.Medium},
		{"medium", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.input))
		})
	}
}

func TestQRCodeService_CheckinPayload(t *testing.T) {
	service := NewQRCodeService(256, "M")
	userID := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	eventID := uuid.MustParse("22222222-2222-2222-2222-222222222222")

	assert.Equal(t,
		"user-11111111-1111-1111-1111-111111111111-22222222-2222-2222-2222-222222222222",
		service.CheckinPayload(userID, eventID),
	)
}

func TestQRCodeService_GenerateCheckinQR(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M")

			qrBytes, err := service.GenerateCheckinQR(uuid.New(), uuid.New())
			require.NoError(t, err)
			require.Greater(t, len(qrBytes), 4)

			// PNG magic number
			assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
		})
	}
}

func TestQRCodeService_ParseCheckinCode(t *testing.T) {
	service := NewQRCodeService(256, "M")
	userID := uuid.New()
	eventID := uuid.New()

	t.Run("round trip", func(t *testing.T) {
		gotUser, gotEvent, err := service.ParseCheckinCode(service.CheckinPayload(userID, eventID))
		require.NoError(t, err)
		assert.Equal(t, userID, gotUser)
		assert.Equal(t, eventID, gotEvent)
	})

	t.Run("surrounding whitespace", func(t *testing.T) {
		gotUser, _, err := service.ParseCheckinCode("  " + service.CheckinPayload(userID, eventID) + "\n")
		require.NoError(t, err)
		assert.Equal(t, userID, gotUser)
	})

	invalid := []struct {
		name string
		code string
	}{
		{"empty", ""},
		{"missing prefix", userID.String() + "-" + eventID.String()},
		{"wrong prefix", "member-" + userID.String() + "-" + eventID.String()},
		{"missing event", "user-" + userID.String()},
		{"trailing garbage", service.CheckinPayload(userID, eventID) + "-x"},
		{"bad user id", "user-zzzzzzzz-1111-1111-1111-111111111111-" + eventID.String()},
		{"bad event id", "user-" + userID.String() + "-zzzzzzzz-2222-2222-2222-222222222222"},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := service.ParseCheckinCode(tt.code)
			require.ErrorIs(t, err, domainerrors.ErrInvalidQRCode)
		})
	}
}
