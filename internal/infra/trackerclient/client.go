// Package trackerclient drives the geofence endpoints of the attendance API
// on behalf of one attendee.
package trackerclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"attendance/internal/domain/entity"
	domainerrors "attendance/internal/domain/errors"
	"attendance/internal/errors"
	"attendance/internal/usecase"

	"github.com/google/uuid"
)

// maxErrorBody caps how much of an unparseable error response is kept.
const maxErrorBody = 512

// knownErrors maps API error codes back to the domain errors the monitor
// branches on.
var knownErrors = map[string]*domainerrors.BaseError{}

func init() {
	for _, e := range []*domainerrors.BaseError{
		domainerrors.ErrBackInRadius,
		domainerrors.ErrNotCheckedIn,
		domainerrors.ErrVenueCoordinatesRequired,
		domainerrors.ErrEventNotFound,
		domainerrors.ErrValidationFailed,
		domainerrors.ErrForbidden,
	} {
		knownErrors[e.ErrorCode()] = e
	}
}

// Options configures a Client
type Options struct {
	BaseURL string
	Token   string
	Timeout time.Duration
}

// Client implements monitor.Tracker over HTTP.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type locationBody struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Radius    float64 `json:"radius,omitempty"`
}

type attendanceBody struct {
	ID           uuid.UUID              `json:"id"`
	EventID      uuid.UUID              `json:"event_id"`
	UserID       uuid.UUID              `json:"user_id"`
	IsCheckedIn  bool                   `json:"is_checked_in"`
	CheckedInAt  time.Time              `json:"checked_in_at"`
	CheckedOutAt *time.Time             `json:"checked_out_at"`
	EntryMethod  entity.EntryMethod     `json:"entry_method"`
	CheckedInBy  uuid.UUID              `json:"checked_in_by"`
	LastLocation *entity.LocationSample `json:"last_location"`
	CheckedOutBy *struct {
		Kind    string     `json:"kind"`
		AdminID *uuid.UUID `json:"admin_id"`
	} `json:"checked_out_by"`
}

// New creates a client for the API rooted at opts.BaseURL, e.g. http://host:8080/api/v1
func New(opts Options, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		token:      opts.Token,
		httpClient: &http.Client{Timeout: opts.Timeout},
		logger:     logger.With(slog.String("component", "tracker_client")),
	}
}

// TrackLocation reports the attendee's position. userID must be the token's subject.
func (c *Client) TrackLocation(ctx context.Context, eventID, _ uuid.UUID, coords entity.Coordinates) (*entity.Attendance, error) {
	var body attendanceBody
	if err := c.do(ctx, http.MethodPost, eventPath(eventID, "location"), locationBody{
		Latitude:  coords.Lat,
		Longitude: coords.Lng,
	}, &body); err != nil {
		return nil, err
	}

	return body.toEntity(), nil
}

// CheckInRadius evaluates a position against the venue radius.
func (c *Client) CheckInRadius(ctx context.Context, input *usecase.RadiusCheckInput) (*usecase.RadiusResult, error) {
	var result usecase.RadiusResult
	if err := c.do(ctx, http.MethodPost, eventPath(input.EventID, "radius-check"), locationBody{
		Latitude:  input.Coords.Lat,
		Longitude: input.Coords.Lng,
		Radius:    input.RadiusMeters,
	}, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// AutoCheckOut asks the server to close the attendee's record.
func (c *Client) AutoCheckOut(ctx context.Context, eventID, _ uuid.UUID) (*entity.Attendance, error) {
	var body attendanceBody
	if err := c.do(ctx, http.MethodPost, eventPath(eventID, "auto-checkout"), nil, &body); err != nil {
		return nil, err
	}

	return body.toEntity(), nil
}

func eventPath(eventID uuid.UUID, action string) string {
	return fmt.Sprintf("/events/%s/%s", eventID, action)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var reader io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return errors.WithStack(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return errors.Errorf("unexpected response %d from %s: %s", resp.StatusCode, path, truncate(raw))
	}

	if resp.StatusCode >= http.StatusBadRequest || env.Error != nil {
		return c.apiError(resp.StatusCode, path, &env)
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}

	return errors.WithStack(json.Unmarshal(env.Data, out))
}

func (c *Client) apiError(status int, path string, env *envelope) error {
	if env.Error == nil {
		return errors.Errorf("request to %s failed with status %d", path, status)
	}

	if known, ok := knownErrors[env.Error.Code]; ok {
		return known.WithDetails(env.Error.Message)
	}

	c.logger.Debug("Unmapped API error",
		slog.String("path", path),
		slog.Int("status", status),
		slog.String("code", env.Error.Code),
	)

	return domainerrors.NewBaseError(status, env.Error.Code, env.Error.Message, "")
}

func truncate(raw []byte) string {
	if len(raw) > maxErrorBody {
		raw = raw[:maxErrorBody]
	}

	return string(raw)
}

func (b *attendanceBody) toEntity() *entity.Attendance {
	a := &entity.Attendance{
		ID:           b.ID,
		EventID:      b.EventID,
		UserID:       b.UserID,
		IsCheckedIn:  b.IsCheckedIn,
		CheckedInAt:  b.CheckedInAt,
		CheckedOutAt: b.CheckedOutAt,
		EntryMethod:  b.EntryMethod,
		CheckedInBy:  b.CheckedInBy,
		LastLocation: b.LastLocation,
	}

	if b.CheckedOutBy != nil {
		if initiator, ok := entity.InitiatorFromParts(b.CheckedOutBy.Kind, b.CheckedOutBy.AdminID); ok {
			a.CheckedOutBy = &initiator
		}
	}

	return a
}
