package handler

import (
	"log/slog"
	"net/http"

	"attendance/internal/delivery/api/middleware"
	"attendance/internal/delivery/api/response"
	"attendance/internal/domain/entity"
	"attendance/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GeofenceHandlerParams holds dependencies for GeofenceHandler, injected by Fx.
type GeofenceHandlerParams struct {
	fx.In

	GeofenceUC usecase.GeofenceUsecase
	Logger     *slog.Logger
}

// GeofenceHandler serves location tracking, radius checks and auto check-out
type GeofenceHandler struct {
	geofenceUC usecase.GeofenceUsecase
	logger     *slog.Logger
}

// NewGeofenceHandler is the constructor for GeofenceHandler
func NewGeofenceHandler(params GeofenceHandlerParams) *GeofenceHandler {
	return &GeofenceHandler{
		geofenceUC: params.GeofenceUC,
		logger:     params.Logger,
	}
}

// LocationRequest represents a reported position
type LocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

// RadiusCheckRequest represents a position to evaluate, with an optional radius in meters
type RadiusCheckRequest struct {
	LocationRequest
	Radius float64 `json:"radius"`
}

func (r *LocationRequest) coordinates() entity.Coordinates {
	return entity.Coordinates{Lat: *r.Latitude, Lng: *r.Longitude}
}

// TrackLocation handles POST /events/:eventId/location
func (h *GeofenceHandler) TrackLocation(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	var req LocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	attendance, err := h.geofenceUC.TrackLocation(c.Request().Context(), eventID, userID, req.coordinates())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAttendanceResponse(attendance))
}

// CheckInRadius handles POST /events/:eventId/radius-check
func (h *GeofenceHandler) CheckInRadius(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	var req RadiusCheckRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid radius check input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	result, err := h.geofenceUC.CheckInRadius(c.Request().Context(), &usecase.RadiusCheckInput{
		EventID:      eventID,
		UserID:       userID,
		Coords:       req.coordinates(),
		RadiusMeters: req.Radius,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// AutoCheckOut handles POST /events/:eventId/auto-checkout
func (h *GeofenceHandler) AutoCheckOut(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	attendance, err := h.geofenceUC.AutoCheckOut(c.Request().Context(), eventID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAttendanceResponse(attendance))
}

// GeofenceStatus handles GET /events/:eventId/geofence?radius=
func (h *GeofenceHandler) GeofenceStatus(c echo.Context) error {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	var radius float64
	if err := echo.QueryParamsBinder(c).Float64("radius", &radius).BindError(); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "radius must be a number")
	}

	report, err := h.geofenceUC.GeofenceStatus(c.Request().Context(), eventID, radius)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toGeofenceReportResponse(report))
}
