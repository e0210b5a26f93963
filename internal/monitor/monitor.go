package monitor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"attendance/config"
	domainerrors "attendance/internal/domain/errors"
	"attendance/internal/errors"
	"attendance/internal/usecase"
	"attendance/internal/util"
	"attendance/internal/util/clock"

	"github.com/google/uuid"
)

// Options configure a Monitor.
type Options struct {
	EventID  uuid.UUID
	UserID   uuid.UUID
	Geofence config.GeofenceConfig

	Tracker     Tracker
	Positions   PositionSource
	Permissions PermissionSource
	Scheduler   Scheduler
	Clock       clock.Clock
	Logger      *slog.Logger

	// OnCheckedOut is called once the attendee was checked out automatically.
	OnCheckedOut func()
	// OnError is called with conditions the user must be told about.
	OnError func(error)
}

// Status is what a host needs to render the tracking indicator.
type Status struct {
	State          State
	Permission     PermissionState
	TrackingActive bool
	OutsideSince   *time.Time
	CheckedOut     bool
}

// Monitor drives the geofence state machine for one attendee at one event.
// All methods are safe for concurrent use.
type Monitor struct {
	opts   Options
	logger *slog.Logger

	mu               sync.Mutex
	session          Session
	permission       PermissionState
	venueUnavailable bool
	closed           bool

	baseCtx     context.Context
	epoch       uint64
	poll        Handle
	cancelWatch context.CancelFunc
	unsubscribe func()
}

// New creates a Monitor in the idle state.
func New(opts Options) *Monitor {
	opts.Geofence.ApplyDefaults()
	if opts.Scheduler == nil {
		opts.Scheduler = NewTickerScheduler()
	}
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	return &Monitor{
		opts: opts,
		logger: opts.Logger.With(
			slog.String("component", "geofence_monitor"),
			slog.String("event_id", opts.EventID.String()),
			slog.String("user_id", opts.UserID.String()),
		),
		session: NewSession(),
		baseCtx: context.Background(),
	}
}

// Start checks the current permission without prompting, starts tracking when
// it is already granted, and follows later permission changes. Calls to the
// server use ctx and are not cancelled by Stop.
func (m *Monitor) Start(ctx context.Context) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()

		return
	}
	m.baseCtx = context.WithoutCancel(ctx)
	m.mu.Unlock()

	state, err := m.opts.Permissions.Query(ctx)
	if err != nil {
		m.logger.Debug("Permission query unavailable", slog.Any("error", err))
		state = PermissionStatePrompt
	}
	m.setPermission(state)

	switch state {
	case PermissionStateGranted:
		m.handle(PermissionGranted{})
	case PermissionStateDenied:
		m.handle(PermissionDenied{})
	}

	unsubscribe := m.opts.Permissions.Subscribe(m.onPermissionChange)

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		unsubscribe()

		return
	}
	m.unsubscribe = unsubscribe
	m.mu.Unlock()
}

// RequestPermission is the user-initiated path: it probes for a fresh position,
// which prompts the user on platforms that ask, and starts tracking on success.
func (m *Monitor) RequestPermission(ctx context.Context) {
	if m.isClosed() {
		return
	}

	if m.Status().Permission == PermissionStateUnsupported {
		m.handle(PermissionDenied{Err: ErrGeolocationUnsupported})

		return
	}

	m.handle(PermissionRequested{})

	_, err := m.opts.Positions.CurrentPosition(ctx, SampleOptions{
		HighAccuracy: true,
		Timeout:      m.opts.Geofence.SampleTimeout,
	})
	if err != nil {
		denied := errors.Is(err, ErrPermissionDenied)
		if denied {
			m.setPermission(PermissionStateDenied)
		}
		m.logger.Warn("Location permission probe failed", slog.Bool("denied", denied), slog.Any("error", err))
		m.handle(PositionFailed{Denied: denied, Err: err})

		return
	}

	m.setPermission(PermissionStateGranted)
	m.handle(PermissionGranted{})
}

// Stop tears tracking down. It cancels the poll timer and any in-flight
// position request; server calls already in progress complete. Stop is idempotent.
func (m *Monitor) Stop() {
	m.handle(Stop{})

	m.mu.Lock()
	m.closed = true
	unsubscribe := m.unsubscribe
	m.unsubscribe = nil
	m.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// Status returns a snapshot of the monitor state.
func (m *Monitor) Status() Status {
	m.mu.Lock()
	defer m.mu.Unlock()

	status := Status{
		State:          m.session.State,
		Permission:     m.permission,
		TrackingActive: m.session.State == StateTracking,
		CheckedOut:     m.session.CheckedOut,
	}
	if m.session.OutsideSince != nil {
		since := *m.session.OutsideSince
		status.OutsideSince = &since
	}

	return status
}

// ManualCheckoutRequired reports whether automatic check-out cannot run and
// the user must check out by hand.
func (m *Monitor) ManualCheckoutRequired() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session.CheckedOut {
		return false
	}

	return m.session.State == StateDenied ||
		m.permission == PermissionStateDenied ||
		m.permission == PermissionStateUnsupported ||
		m.venueUnavailable
}

func (m *Monitor) onPermissionChange(state PermissionState) {
	if m.isClosed() {
		return
	}
	m.setPermission(state)

	if state == PermissionStateGranted {
		m.handle(PermissionGranted{})

		return
	}
	m.handle(PermissionRevoked{Denied: state == PermissionStateDenied})
}

// handle applies ev and performs the resulting effects. Polling effects run
// under the lock so they stay ordered with the session; the rest run after it.
func (m *Monitor) handle(ev Event) {
	for _, effect := range m.apply(ev, nil) {
		m.perform(effect)
	}
}

// handleSample applies ev only if the sample was taken in the current polling epoch.
func (m *Monitor) handleSample(epoch uint64, ev Event) {
	for _, effect := range m.apply(ev, &epoch) {
		m.perform(effect)
	}
}

func (m *Monitor) apply(ev Event, epoch *uint64) []Effect {
	m.mu.Lock()
	defer m.mu.Unlock()

	if epoch != nil && *epoch != m.epoch {
		return nil
	}
	if m.session.Closed {
		return nil
	}

	from := m.session.State
	next, effects := Transition(m.session, ev, m.opts.Geofence.AutoCheckoutAfter)
	m.session = next

	if from != next.State {
		m.logger.Info("Geofence monitor state changed",
			slog.String("from", string(from)),
			slog.String("to", string(next.State)),
		)
	}

	var deferred []Effect
	for _, effect := range effects {
		switch effect.(type) {
		case StartPolling:
			m.startPollingLocked()
		case StopPolling:
			m.stopPollingLocked()
		default:
			deferred = append(deferred, effect)
		}
	}

	return deferred
}

func (m *Monitor) perform(effect Effect) {
	switch effect := effect.(type) {
	case TriggerAutoCheckout:
		m.autoCheckout(effect.OutsideFor)
	case NotifyCheckedOut:
		if m.opts.OnCheckedOut != nil {
			m.opts.OnCheckedOut()
		}
	case NotifyError:
		if m.opts.OnError != nil {
			m.opts.OnError(effect.Err)
		}
	}
}

func (m *Monitor) startPollingLocked() {
	m.stopPollingLocked()

	m.epoch++
	epoch := m.epoch
	watchCtx, cancel := context.WithCancel(m.baseCtx)
	m.cancelWatch = cancel
	m.poll = m.opts.Scheduler.Every(m.opts.Geofence.PollInterval, func() {
		m.sample(watchCtx, epoch)
	})

	m.logger.Info("Location tracking started", slog.Duration("interval", m.opts.Geofence.PollInterval))
}

func (m *Monitor) stopPollingLocked() {
	if m.poll == nil {
		return
	}

	m.poll.Cancel()
	m.cancelWatch()
	m.poll = nil
	m.cancelWatch = nil
	m.epoch++

	m.logger.Info("Location tracking stopped")
}

// sample takes one position, reports it and feeds the radius verdict into the
// state machine. Failures skip the cycle; the next tick is the retry.
func (m *Monitor) sample(watchCtx context.Context, epoch uint64) {
	coords, err := m.opts.Positions.CurrentPosition(watchCtx, SampleOptions{
		HighAccuracy: true,
		Timeout:      m.opts.Geofence.SampleTimeout,
		MaxAge:       m.opts.Geofence.SampleMaxAge,
	})
	if err != nil {
		if watchCtx.Err() != nil {
			return
		}

		denied := errors.Is(err, ErrPermissionDenied)
		if denied {
			m.setPermission(PermissionStateDenied)
		}
		m.logger.Warn("Failed to get location", slog.Bool("denied", denied), slog.Any("error", err))
		m.handleSample(epoch, PositionFailed{Denied: denied, Err: err})

		return
	}
	if watchCtx.Err() != nil {
		return
	}

	ctx := m.serverContext()
	if _, err := m.opts.Tracker.TrackLocation(ctx, m.opts.EventID, m.opts.UserID, coords); err != nil {
		m.logger.Warn("Failed to record location", slog.Any("error", err))
	}

	result, err := m.opts.Tracker.CheckInRadius(ctx, &usecase.RadiusCheckInput{
		EventID:      m.opts.EventID,
		UserID:       m.opts.UserID,
		Coords:       coords,
		RadiusMeters: m.opts.Geofence.DefaultRadius,
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrVenueCoordinatesRequired) {
			m.mu.Lock()
			m.venueUnavailable = true
			m.mu.Unlock()
			m.logger.Info("Venue has no coordinates, skipping geofence check")
		} else {
			m.logger.Error("Error checking radius", slog.Any("error", err))
		}
		m.handleSample(epoch, SampleEvalFailed{Err: err})

		return
	}

	m.mu.Lock()
	m.venueUnavailable = false
	m.mu.Unlock()

	m.logger.Debug("Location sample evaluated",
		slog.Bool("in_radius", result.InRadius),
		slog.String("distance", util.FormatMeters(result.DistanceMeters)),
	)
	m.handleSample(epoch, SampleEvaluated{InRadius: result.InRadius, At: m.opts.Clock.Now()})
}

func (m *Monitor) autoCheckout(outsideFor time.Duration) {
	m.logger.Info("Outside radius past threshold, requesting auto check-out", slog.String("outside_for", util.FormatDuration(outsideFor)))

	_, err := m.opts.Tracker.AutoCheckOut(m.serverContext(), m.opts.EventID, m.opts.UserID)
	switch {
	case err == nil:
		m.handle(AutoCheckoutSucceeded{})
	case errors.Is(err, domainerrors.ErrBackInRadius):
		m.logger.Info("Auto check-out declined, back in radius")
		m.handle(BackInRadius{})
	default:
		m.logger.Warn("Auto check-out failed", slog.Any("error", err))
		m.handle(AutoCheckoutFailed{Err: err})
	}
}

func (m *Monitor) serverContext() context.Context {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.baseCtx
}

func (m *Monitor) setPermission(state PermissionState) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.permission = state
}

func (m *Monitor) isClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.closed
}
