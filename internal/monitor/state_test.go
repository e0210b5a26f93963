package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const threshold = 5 * time.Minute

var t0 = time.Date(2025, 5, 2, 19, 0, 0, 0, time.UTC)

func tracking() Session {
	return Session{State: StateTracking}
}

func countTriggers(effects []Effect) int {
	n := 0
	for _, effect := range effects {
		if _, ok := effect.(TriggerAutoCheckout); ok {
			n++
		}
	}

	return n
}

func outside(at time.Duration) SampleEvaluated {
	return SampleEvaluated{InRadius: false, At: t0.Add(at)}
}

func inside(at time.Duration) SampleEvaluated {
	return SampleEvaluated{InRadius: true, At: t0.Add(at)}
}

func TestTransition_OutsideBelowThresholdDoesNotTrigger(t *testing.T) {
	s := tracking()
	triggers := 0

	for _, at := range []time.Duration{0, 45 * time.Second, 90 * time.Second, 135 * time.Second} {
		var effects []Effect
		s, effects = Transition(s, outside(at), threshold)
		triggers += countTriggers(effects)
	}

	assert.Zero(t, triggers)
	require.NotNil(t, s.OutsideSince)
	assert.Equal(t, t0, *s.OutsideSince)

	s, effects := Transition(s, outside(300*time.Second), threshold)
	assert.Equal(t, 1, countTriggers(effects))
	assert.True(t, s.CheckoutPending)
	assert.Equal(t, TriggerAutoCheckout{OutsideFor: 5 * time.Minute}, effects[0])

	// Ticks while the call is in flight do not trigger again.
	s, effects = Transition(s, outside(345*time.Second), threshold)
	assert.Zero(t, countTriggers(effects))
	assert.Equal(t, StateTracking, s.State)
}

func TestTransition_InRadiusSampleResetsTimer(t *testing.T) {
	s := tracking()

	s, _ = Transition(s, outside(0), threshold)
	s, _ = Transition(s, outside(4*time.Minute), threshold)
	s, _ = Transition(s, inside(4*time.Minute+45*time.Second), threshold)
	assert.Nil(t, s.OutsideSince)

	s, effects := Transition(s, outside(5*time.Minute+30*time.Second), threshold)
	assert.Zero(t, countTriggers(effects))
	require.NotNil(t, s.OutsideSince)
	assert.Equal(t, t0.Add(5*time.Minute+30*time.Second), *s.OutsideSince)

	_, effects = Transition(s, outside(10*time.Minute), threshold)
	assert.Zero(t, countTriggers(effects), "elapsed time restarts from the second outside period")

	_, effects = Transition(s, outside(10*time.Minute+30*time.Second), threshold)
	assert.Equal(t, 1, countTriggers(effects))
}

func TestTransition_InRadiusWithoutTimerIsNoop(t *testing.T) {
	s, effects := Transition(tracking(), inside(0), threshold)
	assert.Nil(t, s.OutsideSince)
	assert.Empty(t, effects)
}

func TestTransition_AutoCheckoutOutcomes(t *testing.T) {
	pending := tracking()
	pending, _ = Transition(pending, outside(0), threshold)
	pending, effects := Transition(pending, outside(threshold), threshold)
	require.Equal(t, 1, countTriggers(effects))

	t.Run("success stops tracking", func(t *testing.T) {
		s, effects := Transition(pending, AutoCheckoutSucceeded{}, threshold)
		assert.Equal(t, StateStopped, s.State)
		assert.True(t, s.CheckedOut)
		assert.Equal(t, []Effect{StopPolling{}, NotifyCheckedOut{}}, effects)

		s, effects = Transition(s, PermissionGranted{}, threshold)
		assert.Equal(t, StateStopped, s.State)
		assert.Empty(t, effects)
	})

	t.Run("failure keeps tracking and allows a retry", func(t *testing.T) {
		s, effects := Transition(pending, AutoCheckoutFailed{}, threshold)
		assert.Equal(t, StateTracking, s.State)
		assert.False(t, s.CheckoutPending)
		assert.NotNil(t, s.OutsideSince)
		assert.Empty(t, effects)

		_, effects = Transition(s, outside(threshold+45*time.Second), threshold)
		assert.Equal(t, 1, countTriggers(effects))
	})

	t.Run("back in radius resets the timer", func(t *testing.T) {
		s, effects := Transition(pending, BackInRadius{}, threshold)
		assert.Equal(t, StateTracking, s.State)
		assert.Nil(t, s.OutsideSince)
		assert.Empty(t, effects)

		s, effects = Transition(s, outside(threshold+45*time.Second), threshold)
		assert.Zero(t, countTriggers(effects))
		assert.NotNil(t, s.OutsideSince)
	})
}

func TestTransition_PermissionFlow(t *testing.T) {
	s := NewSession()
	assert.Equal(t, StateIdle, s.State)

	s, effects := Transition(s, PermissionRequested{}, threshold)
	assert.Equal(t, StatePermissionPending, s.State)
	assert.Empty(t, effects)

	s, effects = Transition(s, PermissionGranted{}, threshold)
	assert.Equal(t, StateTracking, s.State)
	assert.Equal(t, []Effect{StartPolling{}}, effects)

	s, effects = Transition(s, PermissionGranted{}, threshold)
	assert.Equal(t, StateTracking, s.State)
	assert.Empty(t, effects, "already tracking")
}

func TestTransition_DenialIsSticky(t *testing.T) {
	s, effects := Transition(tracking(), PositionFailed{Denied: true}, threshold)
	assert.Equal(t, StateDenied, s.State)
	assert.Equal(t, []Effect{StopPolling{}, NotifyError{Err: ErrPermissionDenied}}, effects)

	s, effects = Transition(s, PermissionDenied{}, threshold)
	assert.Equal(t, StateDenied, s.State)
	assert.Empty(t, effects)

	s, effects = Transition(s, outside(0), threshold)
	assert.Equal(t, StateDenied, s.State)
	assert.Empty(t, effects)

	s, _ = Transition(s, Stop{}, threshold)
	assert.Equal(t, StateDenied, s.State)

	// An OS-level grant lifts the denial.
	s, effects = Transition(s, PermissionGranted{}, threshold)
	assert.Equal(t, StateTracking, s.State)
	assert.Equal(t, []Effect{StartPolling{}}, effects)
}

func TestTransition_DeniedFromPromptUsesCustomError(t *testing.T) {
	s, effects := Transition(NewSession(), PermissionDenied{Err: ErrGeolocationUnsupported}, threshold)
	assert.Equal(t, StateDenied, s.State)
	assert.Equal(t, []Effect{NotifyError{Err: ErrGeolocationUnsupported}}, effects)
}

func TestTransition_TransientPositionFailure(t *testing.T) {
	s, effects := Transition(tracking(), PositionFailed{}, threshold)
	assert.Equal(t, StateTracking, s.State)
	assert.Empty(t, effects)

	s, effects = Transition(Session{State: StatePermissionPending}, PositionFailed{}, threshold)
	assert.Equal(t, StateIdle, s.State)
	assert.Equal(t, []Effect{NotifyError{Err: ErrPositionUnavailable}}, effects)
}

func TestTransition_EvalFailureSkipsCycle(t *testing.T) {
	s := tracking()
	s, _ = Transition(s, outside(0), threshold)

	next, effects := Transition(s, SampleEvalFailed{}, threshold)
	assert.Equal(t, s, next)
	assert.Empty(t, effects)
}

func TestTransition_Revoked(t *testing.T) {
	s := tracking()
	s, _ = Transition(s, outside(0), threshold)

	stopped, effects := Transition(s, PermissionRevoked{}, threshold)
	assert.Equal(t, StateStopped, stopped.State)
	assert.Nil(t, stopped.OutsideSince)
	assert.Equal(t, []Effect{StopPolling{}}, effects)

	denied, effects := Transition(s, PermissionRevoked{Denied: true}, threshold)
	assert.Equal(t, StateDenied, denied.State)
	assert.Equal(t, []Effect{StopPolling{}}, effects)

	regranted, effects := Transition(stopped, PermissionGranted{}, threshold)
	assert.Equal(t, StateTracking, regranted.State)
	assert.Equal(t, []Effect{StartPolling{}}, effects)
}

func TestTransition_StopIsIdempotent(t *testing.T) {
	s, effects := Transition(tracking(), Stop{}, threshold)
	assert.Equal(t, StateStopped, s.State)
	assert.Equal(t, []Effect{StopPolling{}}, effects)

	s, effects = Transition(s, Stop{}, threshold)
	assert.Equal(t, StateStopped, s.State)
	assert.Empty(t, effects)

	s, effects = Transition(NewSession(), Stop{}, threshold)
	assert.Equal(t, StateStopped, s.State)
	assert.Empty(t, effects)
}

func TestTransition_StopIsFinal(t *testing.T) {
	s, _ := Transition(tracking(), outside(0), threshold)
	s, _ = Transition(s, Stop{}, threshold)
	require.True(t, s.Closed)
	assert.Nil(t, s.OutsideSince)

	events := []Event{
		PermissionRequested{},
		PermissionGranted{},
		PermissionDenied{},
		PermissionRevoked{Denied: true},
		outside(10 * time.Minute),
		AutoCheckoutSucceeded{},
		BackInRadius{},
	}
	for _, ev := range events {
		next, effects := Transition(s, ev, threshold)
		assert.Equal(t, s, next, "%T", ev)
		assert.Empty(t, effects, "%T", ev)
	}

	s, _ = Transition(NewSession(), PermissionRequested{}, threshold)
	s, _ = Transition(s, Stop{}, threshold)
	s, effects := Transition(s, PermissionGranted{}, threshold)
	assert.Equal(t, StateStopped, s.State)
	assert.Empty(t, effects)
}
