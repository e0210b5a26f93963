package router

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	apimiddleware "attendance/internal/delivery/api/middleware"
	"attendance/internal/delivery/api/router/handler"
	"attendance/internal/delivery/api/validator"
	"attendance/internal/domain/entity"
	domainerrors "attendance/internal/domain/errors"
	"attendance/internal/domain/service"
	"attendance/internal/errors"
	mockService "attendance/internal/mocks/service"
	mockUsecase "attendance/internal/mocks/usecase"
	"attendance/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	adminToken  = "admin-token"
	memberToken = "member-token"
)

// routerFixtures holds the echo instance and the mocks behind it.
type routerFixtures struct {
	echo       *echo.Echo
	checkinUC  *mockUsecase.MockCheckinUsecase
	geofenceUC *mockUsecase.MockGeofenceUsecase
	tokenSvc   *mockService.MockTokenService
	authorizer *mockService.MockAdminAuthorizer
	adminID    uuid.UUID
	memberID   uuid.UUID
	eventID    uuid.UUID
}

func createTestRouter(t *testing.T) routerFixtures {
	logger := slog.New(slog.DiscardHandler)
	fx := routerFixtures{
		echo:       echo.New(),
		checkinUC:  mockUsecase.NewMockCheckinUsecase(t),
		geofenceUC: mockUsecase.NewMockGeofenceUsecase(t),
		tokenSvc:   mockService.NewMockTokenService(t),
		authorizer: mockService.NewMockAdminAuthorizer(t),
		adminID:    uuid.New(),
		memberID:   uuid.New(),
		eventID:    uuid.New(),
	}

	fx.echo.Validator = validator.New()
	fx.echo.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		CheckinHandler:  handler.NewCheckinHandler(handler.CheckinHandlerParams{CheckinUC: fx.checkinUC, Logger: logger}),
		GeofenceHandler: handler.NewGeofenceHandler(handler.GeofenceHandlerParams{GeofenceUC: fx.geofenceUC, Logger: logger}),
		AuthMiddleware:  apimiddleware.NewAuthMiddleware(fx.tokenSvc, fx.authorizer),
	})
	r.RegisterRoutes(fx.echo)

	return fx
}

func (fx routerFixtures) expectAdmin(allowed bool) {
	fx.tokenSvc.EXPECT().ValidateToken(adminToken).
		Return(&service.Claims{UserID: fx.adminID, Roles: []string{"admin"}}, nil)
	fx.authorizer.EXPECT().
		CanManageEvent(mock.Anything, fx.adminID, fx.eventID, entity.Roles{entity.RoleAdmin}).
		Return(allowed, nil)
}

func (fx routerFixtures) expectMember() {
	fx.tokenSvc.EXPECT().ValidateToken(memberToken).
		Return(&service.Claims{UserID: fx.memberID, Roles: []string{"member"}}, nil)
}

func (fx routerFixtures) do(method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	return rec
}

func (fx routerFixtures) eventPath(suffix string) string {
	return fmt.Sprintf("/api/v1/events/%s%s", fx.eventID, suffix)
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestRouter_Health(t *testing.T) {
	fx := createTestRouter(t)

	rec := fx.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(decode(t, rec).Data))
}

func TestRouter_Authentication(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		fx := createTestRouter(t)

		rec := fx.do(http.MethodGet, fx.eventPath("/checkins/me"), "", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "MISSING_TOKEN", decode(t, rec).Error.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestRouter(t)
		fx.tokenSvc.EXPECT().ValidateToken("bogus").Return(nil, errors.New("expired"))

		rec := fx.do(http.MethodGet, fx.eventPath("/checkins/me"), "bogus", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_TOKEN", decode(t, rec).Error.Code)
	})

	t.Run("non admin is forbidden from admin routes", func(t *testing.T) {
		fx := createTestRouter(t)
		fx.expectAdmin(false)

		rec := fx.do(http.MethodGet, fx.eventPath("/checkins"), adminToken, "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", decode(t, rec).Error.Code)
	})
}

func TestRouter_CheckIn(t *testing.T) {
	t.Run("admin checks attendee in", func(t *testing.T) {
		fx := createTestRouter(t)
		fx.expectAdmin(true)

		attendance := &entity.Attendance{
			ID:          uuid.New(),
			EventID:     fx.eventID,
			UserID:      fx.memberID,
			IsCheckedIn: true,
			CheckedInAt: time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC),
			EntryMethod: entity.EntryMethodQRScan,
			CheckedInBy: fx.adminID,
		}
		fx.checkinUC.EXPECT().CheckIn(mock.Anything, &usecase.CheckInInput{
			EventID: fx.eventID,
			UserID:  fx.memberID,
			QRCode:  "user-code",
			AdminID: fx.adminID,
		}).Return(attendance, nil)

		body := fmt.Sprintf(`{"user_id":%q,"qr_code":"user-code"}`, fx.memberID)
		rec := fx.do(http.MethodPost, fx.eventPath("/checkins"), adminToken, body)

		require.Equal(t, http.StatusCreated, rec.Code)

		var got handler.AttendanceResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
		assert.Equal(t, attendance.ID, got.ID)
		assert.True(t, got.IsCheckedIn)
		assert.Equal(t, entity.EntryMethodQRScan, got.EntryMethod)
		assert.Nil(t, got.CheckedOutBy)
	})

	t.Run("missing qr code fails validation", func(t *testing.T) {
		fx := createTestRouter(t)
		fx.expectAdmin(true)

		body := fmt.Sprintf(`{"user_id":%q}`, fx.memberID)
		rec := fx.do(http.MethodPost, fx.eventPath("/checkins"), adminToken, body)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.JSONEq(t, `[{"field":"qr_code","rule":"required"}]`, string(env.Error.Details))
	})

	t.Run("already checked in", func(t *testing.T) {
		fx := createTestRouter(t)
		fx.expectAdmin(true)
		fx.checkinUC.EXPECT().CheckIn(mock.Anything, mock.AnythingOfType("*usecase.CheckInInput")).
			Return(nil, domainerrors.ErrAlreadyCheckedIn)

		body := fmt.Sprintf(`{"user_id":%q,"qr_code":"user-code"}`, fx.memberID)
		rec := fx.do(http.MethodPost, fx.eventPath("/checkins"), adminToken, body)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "ALREADY_CHECKED_IN", decode(t, rec).Error.Code)
	})
}

func TestRouter_CheckOut(t *testing.T) {
	t.Run("closes with the admin as initiator", func(t *testing.T) {
		fx := createTestRouter(t)
		fx.expectAdmin(true)

		closedAt := time.Date(2026, 3, 1, 22, 0, 0, 0, time.UTC)
		initiator := entity.AdminInitiator(fx.adminID)
		fx.checkinUC.EXPECT().CheckOut(mock.Anything, fx.eventID, fx.memberID, initiator).
			Return(&entity.Attendance{
				ID:           uuid.New(),
				EventID:      fx.eventID,
				UserID:       fx.memberID,
				CheckedOutAt: &closedAt,
				CheckedOutBy: &initiator,
			}, nil)

		rec := fx.do(http.MethodDelete, fx.eventPath("/checkins/"+fx.memberID.String()), adminToken, "")

		require.Equal(t, http.StatusOK, rec.Code)

		var got handler.AttendanceResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
		require.NotNil(t, got.CheckedOutBy)
		assert.Equal(t, entity.InitiatorKindAdmin, got.CheckedOutBy.Kind)
		assert.Equal(t, fx.adminID, *got.CheckedOutBy.AdminID)
	})

	t.Run("not checked in", func(t *testing.T) {
		fx := createTestRouter(t)
		fx.expectAdmin(true)
		fx.checkinUC.EXPECT().CheckOut(mock.Anything, fx.eventID, fx.memberID, mock.Anything).
			Return(nil, domainerrors.ErrNotCheckedIn)

		rec := fx.do(http.MethodDelete, fx.eventPath("/checkins/"+fx.memberID.String()), adminToken, "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "NOT_CHECKED_IN", decode(t, rec).Error.Code)
	})

	t.Run("malformed user id", func(t *testing.T) {
		fx := createTestRouter(t)
		fx.expectAdmin(true)

		rec := fx.do(http.MethodDelete, fx.eventPath("/checkins/not-a-uuid"), adminToken, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid user ID", decode(t, rec).Error.Message)
	})
}

func TestRouter_CheckinQueries(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		fx := createTestRouter(t)
		fx.expectMember()
		fx.checkinUC.EXPECT().IsCheckedIn(mock.Anything, fx.eventID, fx.memberID).Return(true, nil)

		rec := fx.do(http.MethodGet, fx.eventPath("/checkins/"+fx.memberID.String()+"/status"), memberToken, "")

		require.Equal(t, http.StatusOK, rec.Code)

		var got handler.CheckinStatusResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
		assert.True(t, got.IsCheckedIn)
	})

	t.Run("me resolves to the caller", func(t *testing.T) {
		fx := createTestRouter(t)
		fx.expectMember()
		fx.checkinUC.EXPECT().GetActiveCheckin(mock.Anything, fx.eventID, fx.memberID).
			Return(&entity.Attendance{ID: uuid.New(), EventID: fx.eventID, UserID: fx.memberID, IsCheckedIn: true}, nil)

		rec := fx.do(http.MethodGet, fx.eventPath("/checkins/me"), memberToken, "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("list", func(t *testing.T) {
		fx := createTestRouter(t)
		fx.expectAdmin(true)
		fx.checkinUC.EXPECT().ListCheckedIn(mock.Anything, fx.eventID).Return([]*entity.Attendance{}, nil)

		rec := fx.do(http.MethodGet, fx.eventPath("/checkins"), adminToken, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, string(decode(t, rec).Data))
	})

	t.Run("qr code image", func(t *testing.T) {
		fx := createTestRouter(t)
		fx.expectMember()
		fx.checkinUC.EXPECT().GenerateCheckinQR(mock.Anything, fx.eventID, fx.memberID).
			Return([]byte{0x89, 'P', 'N', 'G'}, nil)

		rec := fx.do(http.MethodGet, fx.eventPath("/checkin-qr"), memberToken, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, rec.Body.Bytes())
	})
}

func TestRouter_Geofence(t *testing.T) {
	t.Run("radius check", func(t *testing.T) {
		fx := createTestRouter(t)
		fx.expectMember()
		fx.geofenceUC.EXPECT().CheckInRadius(mock.Anything, &usecase.RadiusCheckInput{
			EventID:      fx.eventID,
			UserID:       fx.memberID,
			Coords:       entity.Coordinates{Lat: 40.7128, Lng: -74.006},
			RadiusMeters: 200,
		}).Return(&usecase.RadiusResult{InRadius: true, DistanceMeters: 12.5, RadiusMeters: 200}, nil)

		rec := fx.do(http.MethodPost, fx.eventPath("/radius-check"), memberToken,
			`{"latitude":40.7128,"longitude":-74.006,"radius":200}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"in_radius":true,"distance":12.5,"radius":200}`, string(decode(t, rec).Data))
	})

	t.Run("zero latitude is a valid coordinate", func(t *testing.T) {
		fx := createTestRouter(t)
		fx.expectMember()
		fx.geofenceUC.EXPECT().CheckInRadius(mock.Anything, mock.AnythingOfType("*usecase.RadiusCheckInput")).
			Return(&usecase.RadiusResult{RadiusMeters: 150}, nil)

		rec := fx.do(http.MethodPost, fx.eventPath("/radius-check"), memberToken, `{"latitude":0,"longitude":0}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("out of range latitude", func(t *testing.T) {
		fx := createTestRouter(t)
		fx.expectMember()

		rec := fx.do(http.MethodPost, fx.eventPath("/radius-check"), memberToken, `{"latitude":91,"longitude":0}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
	})

	t.Run("venue without coordinates", func(t *testing.T) {
		fx := createTestRouter(t)
		fx.expectMember()
		fx.geofenceUC.EXPECT().CheckInRadius(mock.Anything, mock.Anything).
			Return(nil, domainerrors.ErrVenueCoordinatesRequired)

		rec := fx.do(http.MethodPost, fx.eventPath("/radius-check"), memberToken, `{"latitude":1,"longitude":1}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "VENUE_COORDINATES_REQUIRED", decode(t, rec).Error.Code)
	})

	t.Run("track location", func(t *testing.T) {
		fx := createTestRouter(t)
		fx.expectMember()
		fx.geofenceUC.EXPECT().TrackLocation(mock.Anything, fx.eventID, fx.memberID, entity.Coordinates{Lat: 1.5, Lng: 2.5}).
			Return(&entity.Attendance{ID: uuid.New(), IsCheckedIn: true}, nil)

		rec := fx.do(http.MethodPost, fx.eventPath("/location"), memberToken, `{"latitude":1.5,"longitude":2.5}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("auto checkout back in radius", func(t *testing.T) {
		fx := createTestRouter(t)
		fx.expectMember()
		fx.geofenceUC.EXPECT().AutoCheckOut(mock.Anything, fx.eventID, fx.memberID).
			Return(nil, domainerrors.ErrBackInRadius)

		rec := fx.do(http.MethodPost, fx.eventPath("/auto-checkout"), memberToken, "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "BACK_IN_RADIUS", decode(t, rec).Error.Code)
	})

	t.Run("status report", func(t *testing.T) {
		fx := createTestRouter(t)
		fx.expectAdmin(true)
		fx.geofenceUC.EXPECT().GeofenceStatus(mock.Anything, fx.eventID, 75.0).
			Return(&usecase.GeofenceReport{EventID: fx.eventID, RadiusMeters: 75}, nil)

		rec := fx.do(http.MethodGet, fx.eventPath("/geofence?radius=75"), adminToken, "")

		require.Equal(t, http.StatusOK, rec.Code)

		var got handler.GeofenceReportResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &got))
		assert.Equal(t, 75.0, got.RadiusMeters)
		assert.Empty(t, got.Attendees)
		assert.Nil(t, got.Bounds)
	})

	t.Run("status report rejects non numeric radius", func(t *testing.T) {
		fx := createTestRouter(t)
		fx.expectAdmin(true)

		rec := fx.do(http.MethodGet, fx.eventPath("/geofence?radius=far"), adminToken, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRouter_UnexpectedErrorIsHidden(t *testing.T) {
	fx := createTestRouter(t)
	fx.expectMember()
	fx.geofenceUC.EXPECT().AutoCheckOut(mock.Anything, fx.eventID, fx.memberID).
		Return(nil, errors.New("connection reset by peer"))

	rec := fx.do(http.MethodPost, fx.eventPath("/auto-checkout"), memberToken, "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, env.Error.Message, "connection reset")
}
