package trackerclient

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"attendance/internal/domain/entity"
	domainerrors "attendance/internal/domain/errors"
	"attendance/internal/errors"
	"attendance/internal/monitor"
	"attendance/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ monitor.Tracker = (*Client)(nil)

type recordedRequest struct {
	method string
	path   string
	auth   string
	body   map[string]any
}

func newTestClient(t *testing.T, status int, payload string) (*Client, *recordedRequest) {
	t.Helper()

	recorded := &recordedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		recorded.method = r.Method
		recorded.path = r.URL.Path
		recorded.auth = r.Header.Get("Authorization")

		raw, _ := io.ReadAll(r.Body)
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &recorded.body)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(server.Close)

	client := New(Options{BaseURL: server.URL + "/api/v1/", Token: "secret", Timeout: time.Second}, slog.New(slog.DiscardHandler))

	return client, recorded
}

func TestClient_CheckInRadius(t *testing.T) {
	client, recorded := newTestClient(t, http.StatusOK,
		`{"data":{"in_radius":false,"distance":312.4,"radius":150},"meta":{"request_id":"r1"}}`)
	eventID := uuid.New()

	result, err := client.CheckInRadius(t.Context(), &usecase.RadiusCheckInput{
		EventID: eventID,
		UserID:  uuid.New(),
		Coords:  entity.Coordinates{Lat: 40.7, Lng: -74},
	})

	require.NoError(t, err)
	assert.Equal(t, &usecase.RadiusResult{InRadius: false, DistanceMeters: 312.4, RadiusMeters: 150}, result)
	assert.Equal(t, http.MethodPost, recorded.method)
	assert.Equal(t, "/api/v1/events/"+eventID.String()+"/radius-check", recorded.path)
	assert.Equal(t, "Bearer secret", recorded.auth)
	assert.Equal(t, map[string]any{"latitude": 40.7, "longitude": -74.0}, recorded.body)
}

func TestClient_AutoCheckOut(t *testing.T) {
	t.Run("returns the closed record", func(t *testing.T) {
		attendanceID := uuid.New()
		client, recorded := newTestClient(t, http.StatusOK, `{"data":{"id":"`+attendanceID.String()+
			`","is_checked_in":false,"checked_out_at":"2026-03-01T22:00:00Z","checked_out_by":{"kind":"automatic"}},"meta":{}}`)

		attendance, err := client.AutoCheckOut(t.Context(), uuid.New(), uuid.New())

		require.NoError(t, err)
		assert.Nil(t, recorded.body)
		assert.Equal(t, attendanceID, attendance.ID)
		assert.False(t, attendance.IsCheckedIn)
		require.NotNil(t, attendance.CheckedOutBy)
		assert.True(t, attendance.CheckedOutBy.IsAutomatic())
	})

	t.Run("back in radius maps to the domain error", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusConflict,
			`{"error":{"code":"BACK_IN_RADIUS","message":"User is back in radius"},"meta":{}}`)

		_, err := client.AutoCheckOut(t.Context(), uuid.New(), uuid.New())

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrBackInRadius)
	})
}

func TestClient_Errors(t *testing.T) {
	t.Run("venue coordinates required", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusUnprocessableEntity,
			`{"error":{"code":"VENUE_COORDINATES_REQUIRED","message":"Event location is required"},"meta":{}}`)

		_, err := client.CheckInRadius(t.Context(), &usecase.RadiusCheckInput{EventID: uuid.New()})

		assert.ErrorIs(t, err, domainerrors.ErrVenueCoordinatesRequired)
	})

	t.Run("unknown code keeps status and code", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusUnauthorized,
			`{"error":{"code":"INVALID_TOKEN","message":"Invalid or expired token"},"meta":{}}`)

		_, err := client.TrackLocation(t.Context(), uuid.New(), uuid.New(), entity.Coordinates{})

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
		assert.Equal(t, "INVALID_TOKEN", appErr.ErrorCode())
	})

	t.Run("non json body", func(t *testing.T) {
		client, _ := newTestClient(t, http.StatusBadGateway, `<html>bad gateway</html>`)

		_, err := client.TrackLocation(t.Context(), uuid.New(), uuid.New(), entity.Coordinates{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected response 502")
	})
}
