// Command geotracker follows one attendee's position and checks them out of
// an event once they have stayed outside the venue radius long enough.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"attendance/config"
	"attendance/internal/domain/entity"
	"attendance/internal/infra/position"
	logs "attendance/internal/infra/log"
	"attendance/internal/infra/trackerclient"
	"attendance/internal/monitor"
	"attendance/internal/util/clock"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func main() {
	eventFlag := flag.String("event", "", "Event ID to track (required)")
	userFlag := flag.String("user", "", "Attendee user ID, the subject of the configured token (required)")
	trackFlag := flag.String("track", "", "CSV replay file of offset_seconds,lat,lng rows")
	latFlag := flag.Float64("lat", 0, "Fixed latitude when no track is given")
	lngFlag := flag.Float64("lng", 0, "Fixed longitude when no track is given")
	permissionFlag := flag.String("permission", string(monitor.PermissionStatePrompt), "Initial location permission: prompt, granted, denied or unsupported")
	tokenFlag := flag.String("token", "", "Bearer token, overrides the config file")
	flag.Parse()

	if err := run(*eventFlag, *userFlag, *trackFlag, *latFlag, *lngFlag, *permissionFlag, *tokenFlag); err != nil {
		fmt.Fprintf(os.Stderr, "geotracker: %v\n", err)
		os.Exit(1)
	}
}

func run(eventArg, userArg, track string, lat, lng float64, permission, token string) error {
	eventID, err := uuid.Parse(eventArg)
	if err != nil {
		return errors.Wrap(err, "invalid -event")
	}
	userID, err := uuid.Parse(userArg)
	if err != nil {
		return errors.Wrap(err, "invalid -user")
	}

	permissionState, err := parsePermission(permission)
	if err != nil {
		return err
	}

	cfg, err := config.NewTracker()
	if err != nil {
		return errors.Wrap(err, "failed to load tracker config")
	}
	if token != "" {
		cfg.Token = token
	}

	logger, err := logs.Build(os.Stderr, cfg.Log, false)
	if err != nil {
		return err
	}
	logger = logger.With(slog.String("event_id", eventID.String()), slog.String("user_id", userID.String()))

	clk := clock.New()
	positions, err := newPositionSource(track, entity.Coordinates{Lat: lat, Lng: lng}, clk)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	checkedOut := make(chan struct{})
	var once sync.Once

	m := monitor.New(monitor.Options{
		EventID:  eventID,
		UserID:   userID,
		Geofence: cfg.Geofence,
		Tracker: trackerclient.New(trackerclient.Options{
			BaseURL: cfg.BaseURL,
			Token:   cfg.Token,
			Timeout: cfg.RequestTimeout,
		}, logger),
		Positions:   positions,
		Permissions: position.NewStaticPermission(permissionState),
		Clock:       clk,
		Logger:      logger,
		OnCheckedOut: func() {
			logger.Info("Checked out automatically")
			once.Do(func() { close(checkedOut) })
		},
		OnError: func(err error) {
			logger.Warn("Geofence monitor", slog.Any("error", err))
		},
	})
	defer m.Stop()

	m.Start(ctx)
	if permissionState == monitor.PermissionStatePrompt || permissionState == monitor.PermissionStateUnsupported {
		m.RequestPermission(ctx)
	}

	if m.ManualCheckoutRequired() {
		return errors.New("automatic check-out is unavailable, check out manually")
	}

	logger.Info("Tracking attendee",
		slog.Duration("poll_interval", cfg.Geofence.PollInterval),
		slog.Duration("auto_checkout_after", cfg.Geofence.AutoCheckoutAfter),
	)

	select {
	case <-checkedOut:
		return nil
	case <-ctx.Done():
		logger.Info("Stopped before check-out", slog.String("state", string(m.Status().State)))

		return nil
	}
}

func newPositionSource(track string, fixed entity.Coordinates, clk clock.Clock) (monitor.PositionSource, error) {
	if track != "" {
		replay, err := position.LoadReplayFile(track, clk)
		if err != nil {
			return nil, err
		}

		return replay, nil
	}

	source, err := position.NewFixedSource(fixed)
	if err != nil {
		return nil, err
	}

	return source, nil
}

func parsePermission(value string) (monitor.PermissionState, error) {
	switch state := monitor.PermissionState(value); state {
	case monitor.PermissionStatePrompt, monitor.PermissionStateGranted,
		monitor.PermissionStateDenied, monitor.PermissionStateUnsupported:
		return state, nil
	default:
		return "", errors.Errorf("invalid -permission %q", value)
	}
}
