package handler

import (
	"log/slog"
	"net/http"

	"attendance/internal/delivery/api/middleware"
	"attendance/internal/delivery/api/response"
	"attendance/internal/domain/entity"
	"attendance/internal/errors"
	"attendance/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CheckinHandlerParams holds dependencies for CheckinHandler, injected by Fx.
type CheckinHandlerParams struct {
	fx.In

	CheckinUC usecase.CheckinUsecase
	Logger    *slog.Logger
}

// CheckinHandler serves check-in, check-out and attendance queries
type CheckinHandler struct {
	checkinUC usecase.CheckinUsecase
	logger    *slog.Logger
}

// NewCheckinHandler is the constructor for CheckinHandler
func NewCheckinHandler(params CheckinHandlerParams) *CheckinHandler {
	return &CheckinHandler{
		checkinUC: params.CheckinUC,
		logger:    params.Logger,
	}
}

// CheckInRequest represents the request body for an administrator's scan
type CheckInRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	QRCode string `json:"qr_code" validate:"required"`
}

// CheckinStatusResponse answers whether a user is checked in
type CheckinStatusResponse struct {
	EventID     uuid.UUID `json:"event_id"`
	UserID      uuid.UUID `json:"user_id"`
	IsCheckedIn bool      `json:"is_checked_in"`
}

// CheckIn handles POST /events/:eventId/checkins
func (h *CheckinHandler) CheckIn(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	var req CheckInRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid check-in input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	attendance, err := h.checkinUC.CheckIn(c.Request().Context(), &usecase.CheckInInput{
		EventID: eventID,
		UserID:  uuid.MustParse(req.UserID),
		QRCode:  req.QRCode,
		AdminID: adminID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAttendanceResponse(attendance))
}

// CheckOut handles DELETE /events/:eventId/checkins/:userId
func (h *CheckinHandler) CheckOut(c echo.Context) error {
	adminID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	eventID, userID, err := parseEventAndUser(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	attendance, err := h.checkinUC.CheckOut(c.Request().Context(), eventID, userID, entity.AdminInitiator(adminID))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAttendanceResponse(attendance))
}

// ListCheckedIn handles GET /events/:eventId/checkins
func (h *CheckinHandler) ListCheckedIn(c echo.Context) error {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	list, err := h.checkinUC.ListCheckedIn(c.Request().Context(), eventID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAttendanceResponses(list))
}

// GetMyCheckin handles GET /events/:eventId/checkins/me
func (h *CheckinHandler) GetMyCheckin(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	attendance, err := h.checkinUC.GetActiveCheckin(c.Request().Context(), eventID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAttendanceResponse(attendance))
}

// GetCheckinStatus handles GET /events/:eventId/checkins/:userId/status
func (h *CheckinHandler) GetCheckinStatus(c echo.Context) error {
	eventID, userID, err := parseEventAndUser(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	checkedIn, err := h.checkinUC.IsCheckedIn(c.Request().Context(), eventID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &CheckinStatusResponse{
		EventID:     eventID,
		UserID:      userID,
		IsCheckedIn: checkedIn,
	})
}

// GetCheckinQR handles GET /events/:eventId/checkin-qr and returns the caller's PNG code
func (h *CheckinHandler) GetCheckinQR(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
	}

	png, err := h.checkinUC.GenerateCheckinQR(c.Request().Context(), eventID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

var (
	errInvalidEventID = errors.New("Invalid event ID")
	errInvalidUserID  = errors.New("Invalid user ID")
)

func parseEventAndUser(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	eventID, err := uuid.Parse(c.Param("eventId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, errInvalidEventID
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, errInvalidUserID
	}

	return eventID, userID, nil
}
