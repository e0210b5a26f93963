package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"attendance/config"
	apimiddleware "attendance/internal/delivery/api/middleware"
	"attendance/internal/delivery/api/router"
	"attendance/internal/delivery/api/router/handler"
	deliverycontext "attendance/internal/delivery/context"
	mockService "attendance/internal/mocks/service"
	mockUsecase "attendance/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.HTTP.Timeouts.WriteTimeout = 5 * time.Second

	logger := slog.New(slog.DiscardHandler)
	e := newEcho(cfg, logger)

	r := router.NewRouter(router.RouterParams{
		CheckinHandler:  handler.NewCheckinHandler(handler.CheckinHandlerParams{CheckinUC: mockUsecase.NewMockCheckinUsecase(t), Logger: logger}),
		GeofenceHandler: handler.NewGeofenceHandler(handler.GeofenceHandlerParams{GeofenceUC: mockUsecase.NewMockGeofenceUsecase(t), Logger: logger}),
		AuthMiddleware:  apimiddleware.NewAuthMiddleware(mockService.NewMockTokenService(t), mockService.NewMockAdminAuthorizer(t)),
	})
	r.RegisterRoutes(e)

	return e
}

func TestServer_OversizedBodyIsRejected(t *testing.T) {
	e := createTestEcho(t)

	body := `{"latitude":37.87,"longitude":-122.25,"pad":"` + strings.Repeat("x", 2048) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/events/5f0c3c3e-6a51-4a53-9b55-4c4f4f8e2a11/radius-check", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer token")
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "HTTP_ERROR", payload.Error.Code)
}

func TestServer_CORSPreflight(t *testing.T) {
	e := createTestEcho(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/events/5f0c3c3e-6a51-4a53-9b55-4c4f4f8e2a11/checkins/me", nil)
	req.Header.Set(echo.HeaderOrigin, "https://app.example.org")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodDelete)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	allowMethods := rec.Header().Get(echo.HeaderAccessControlAllowMethods)
	assert.Contains(t, allowMethods, http.MethodDelete)
	assert.NotContains(t, allowMethods, http.MethodPut)
	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowHeaders), echo.HeaderAuthorization)
}

func TestServer_HealthCarriesRequestID(t *testing.T) {
	e := createTestEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}
