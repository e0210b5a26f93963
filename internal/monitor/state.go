// Package monitor implements the client-side geofence monitor: a polling
// state machine that samples the device position, reports it, and requests an
// automatic check-out once the attendee has stayed outside the venue radius.
package monitor

import (
	"time"
)

// State is the lifecycle phase of a monitor session.
type State string

const (
	StateIdle              State = "idle"
	StatePermissionPending State = "permission-pending"
	StateDenied            State = "denied"
	StateTracking          State = "tracking"
	StateStopped           State = "stopped"
)

// Session is the whole mutable state of a monitor. Transitions never touch
// anything else.
type Session struct {
	State State
	// OutsideSince is set by the first out-of-radius sample of an outside
	// period and cleared by any in-radius sample.
	OutsideSince *time.Time
	// CheckoutPending is set while an auto check-out for the current outside
	// period is in flight.
	CheckoutPending bool
	// CheckedOut is set once an auto check-out succeeded; the session never
	// tracks again afterwards.
	CheckedOut bool
	// Closed is set by Stop. A closed session ignores every later event.
	Closed bool
}

// Event is an input to Transition.
type Event interface {
	isEvent()
}

type (
	// PermissionRequested is raised when the user asks to enable tracking.
	PermissionRequested struct{}
	// PermissionGranted is raised on a fresh grant or when a grant is detected.
	PermissionGranted struct{}
	// PermissionDenied is raised when location access is refused.
	PermissionDenied struct {
		Err error // reported to the user; ErrPermissionDenied when nil
	}
	// PermissionRevoked is raised when the platform permission changes away from granted.
	PermissionRevoked struct {
		Denied bool
	}
	// SampleEvaluated carries the radius verdict for one position sample.
	SampleEvaluated struct {
		InRadius bool
		At       time.Time
	}
	// SampleEvalFailed is raised when a sample could not be evaluated.
	SampleEvalFailed struct {
		Err error
	}
	// PositionFailed is raised when the device could not produce a position.
	PositionFailed struct {
		Denied bool
		Err    error
	}
	// AutoCheckoutSucceeded is raised when the server closed the attendance.
	AutoCheckoutSucceeded struct{}
	// AutoCheckoutFailed is raised when the auto check-out call failed.
	AutoCheckoutFailed struct {
		Err error
	}
	// BackInRadius is raised when the server found the stored location inside the radius.
	BackInRadius struct{}
	// Stop tears the session down.
	Stop struct{}
)

func (PermissionRequested) isEvent()   {}
func (PermissionGranted) isEvent()     {}
func (PermissionDenied) isEvent()      {}
func (PermissionRevoked) isEvent()     {}
func (SampleEvaluated) isEvent()       {}
func (SampleEvalFailed) isEvent()      {}
func (PositionFailed) isEvent()        {}
func (AutoCheckoutSucceeded) isEvent() {}
func (AutoCheckoutFailed) isEvent()    {}
func (BackInRadius) isEvent()          {}
func (Stop) isEvent()                  {}

// Effect is an instruction produced by Transition for the driver to carry out.
type Effect interface {
	isEffect()
}

type (
	// StartPolling starts the repeating sampler, sampling once immediately.
	StartPolling struct{}
	// StopPolling cancels the sampler and releases the position watch.
	StopPolling struct{}
	// TriggerAutoCheckout asks the server to check the attendee out.
	TriggerAutoCheckout struct {
		OutsideFor time.Duration
	}
	// NotifyCheckedOut tells the host the attendee was checked out.
	NotifyCheckedOut struct{}
	// NotifyError tells the host about a condition the user must see.
	NotifyError struct {
		Err error
	}
)

func (StartPolling) isEffect()        {}
func (StopPolling) isEffect()         {}
func (TriggerAutoCheckout) isEffect() {}
func (NotifyCheckedOut) isEffect()    {}
func (NotifyError) isEffect()         {}

// NewSession returns a session in the idle state.
func NewSession() Session {
	return Session{State: StateIdle}
}

// Transition is the monitor's state machine. It is pure: the returned session
// and effects depend only on s, ev and threshold.
func Transition(s Session, ev Event, threshold time.Duration) (Session, []Effect) {
	if s.Closed {
		return s, nil
	}

	switch ev := ev.(type) {
	case PermissionRequested:
		if s.State == StateIdle {
			s.State = StatePermissionPending
		}

		return s, nil

	case PermissionGranted:
		if s.State == StateTracking || s.CheckedOut {
			return s, nil
		}
		s.State = StateTracking
		s.OutsideSince = nil
		s.CheckoutPending = false

		return s, []Effect{StartPolling{}}

	case PermissionDenied:
		return deny(s, ev.Err)

	case PermissionRevoked:
		var effects []Effect
		if s.State == StateTracking {
			effects = append(effects, StopPolling{})
			s.State = StateStopped
		}
		if ev.Denied && !s.CheckedOut {
			s.State = StateDenied
		}
		s.OutsideSince = nil

		return s, effects

	case PositionFailed:
		if ev.Denied {
			return deny(s, nil)
		}
		if s.State == StatePermissionPending {
			s.State = StateIdle

			return s, []Effect{NotifyError{Err: ErrPositionUnavailable}}
		}

		return s, nil

	case SampleEvaluated:
		if s.State != StateTracking {
			return s, nil
		}

		return evaluate(s, ev, threshold)

	case SampleEvalFailed:
		return s, nil

	case AutoCheckoutSucceeded:
		var effects []Effect
		if s.State == StateTracking {
			effects = append(effects, StopPolling{})
		}
		if s.State != StateDenied {
			s.State = StateStopped
		}
		s.CheckedOut = true
		s.CheckoutPending = false
		s.OutsideSince = nil

		return s, append(effects, NotifyCheckedOut{})

	case AutoCheckoutFailed:
		s.CheckoutPending = false

		return s, nil

	case BackInRadius:
		s.CheckoutPending = false
		s.OutsideSince = nil

		return s, nil

	case Stop:
		s.Closed = true
		s.OutsideSince = nil
		s.CheckoutPending = false

		switch s.State {
		case StateTracking:
			s.State = StateStopped

			return s, []Effect{StopPolling{}}
		case StateIdle, StatePermissionPending:
			s.State = StateStopped
		}

		return s, nil
	}

	return s, nil
}

func deny(s Session, err error) (Session, []Effect) {
	if s.State == StateDenied {
		return s, nil
	}
	if err == nil {
		err = ErrPermissionDenied
	}

	var effects []Effect
	if s.State == StateTracking {
		effects = append(effects, StopPolling{})
	}
	s.State = StateDenied
	s.OutsideSince = nil

	return s, append(effects, NotifyError{Err: err})
}

func evaluate(s Session, ev SampleEvaluated, threshold time.Duration) (Session, []Effect) {
	if ev.InRadius {
		s.OutsideSince = nil
		s.CheckoutPending = false

		return s, nil
	}

	if s.OutsideSince == nil {
		at := ev.At
		s.OutsideSince = &at

		return s, nil
	}

	outsideFor := ev.At.Sub(*s.OutsideSince)
	if outsideFor < threshold || s.CheckoutPending {
		return s, nil
	}
	s.CheckoutPending = true

	return s, []Effect{TriggerAutoCheckout{OutsideFor: outsideFor}}
}
