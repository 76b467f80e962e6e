// Package loop runs the single-threaded poll, dispatch, process cycle.
package loop

import (
	"errors"
	"fmt"
	"time"

	"github.com/mobile-next/swiped/actions"
	"github.com/mobile-next/swiped/events"
	"github.com/mobile-next/swiped/input"
	"github.com/mobile-next/swiped/poller"
	"github.com/mobile-next/swiped/types"
	"github.com/mobile-next/swiped/utils"
)

// State of the main loop
type State int

const (
	Polling State = iota
	Processing
	Terminated
)

func (s State) String() string {
	switch s {
	case Polling:
		return "polling"
	case Processing:
		return "processing"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Waiter blocks until a handle is readable.
type Waiter interface {
	Wait(fd int, timeout time.Duration) (poller.Readiness, error)
}

// ErrorKind classifies loop-fatal errors.
type ErrorKind int

const (
	PollFailed ErrorKind = iota
	DispatchFailed
)

func (k ErrorKind) String() string {
	switch k {
	case PollFailed:
		return "poll failed"
	case DispatchFailed:
		return "dispatch failed"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is a loop-fatal error. The loop never retries after one.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("main loop %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Options for the main loop
type Options struct {
	// PollTimeout bounds each wait, negative waits indefinitely
	PollTimeout time.Duration
	// Observer, when set, receives the outcome of every dispatched event
	Observer func(Outcome)
}

// Loop drives a backend session through the poller into the controller.
type Loop struct {
	session    input.Session
	waiter     Waiter
	controller *actions.Controller
	options    Options
	state      State
}

func New(session input.Session, waiter Waiter, controller *actions.Controller, options Options) *Loop {
	return &Loop{
		session:    session,
		waiter:     waiter,
		controller: controller,
		options:    options,
		state:      Polling,
	}
}

func (l *Loop) State() State {
	return l.state
}

// Run polls until the waiter reports Stopped, which returns nil, or a
// poll or dispatch failure, which returns an *Error.
func (l *Loop) Run() error {
	fd := l.session.Fd()
	utils.Info("Listening for gestures on seat %s", l.session.Seat())

	for {
		l.state = Polling
		readiness, err := l.waiter.Wait(fd, l.options.PollTimeout)
		if err != nil {
			l.state = Terminated
			return fatal(err)
		}

		switch readiness {
		case poller.Stopped:
			l.state = Terminated
			utils.Verbose("Main loop stopped")
			return nil
		case poller.TimedOut:
			continue
		}

		l.state = Processing
		raws, err := l.session.Dispatch()
		if err != nil {
			l.state = Terminated
			return fatal(err)
		}

		l.processBatch(raws)
	}
}

// processBatch routes every drained event against one binding table
func (l *Loop) processBatch(raws []input.RawGestureEvent) {
	snapshot := l.controller.Snapshot()
	for _, raw := range raws {
		outcome := route(snapshot, raw)
		outcome.log()
		if l.options.Observer != nil {
			l.options.Observer(outcome)
		}
	}
}

// Route normalizes and matches a single raw event.
func (l *Loop) Route(raw input.RawGestureEvent) Outcome {
	return route(l.controller.Snapshot(), raw)
}

func route(snapshot *actions.Snapshot, raw input.RawGestureEvent) Outcome {
	event, err := events.Normalize(raw)
	if err != nil {
		return newOutcome(raw, nil, actions.Command{}, err)
	}

	cmd, err := snapshot.Process(event)
	return newOutcome(raw, &event, cmd, err)
}

// fatal converts poller and backend errors into a loop-fatal Error
func fatal(err error) error {
	var pollErr *poller.PollError
	var dispatchErr *input.DispatchError

	switch {
	case errors.As(err, &pollErr):
		return &Error{Kind: PollFailed, Err: pollErr}
	case errors.As(err, &dispatchErr):
		return &Error{Kind: DispatchFailed, Err: dispatchErr}
	default:
		// waiters outside this repo may return plain errors
		return &Error{Kind: PollFailed, Err: err}
	}
}

// OutcomeKind classifies what happened to one event.
type OutcomeKind int

const (
	Triggered OutcomeKind = iota
	Unsupported
	UnsupportedFingers
	BelowThreshold
	NoMatch
)

func (k OutcomeKind) String() string {
	switch k {
	case Triggered:
		return "triggered"
	case Unsupported:
		return "unsupported"
	case UnsupportedFingers:
		return "unsupported-fingers"
	case BelowThreshold:
		return "below-threshold"
	case NoMatch:
		return "no-match"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is the uniform per-event result surfaced to the loop. Every kind
// other than Triggered is recoverable.
type Outcome struct {
	Kind    OutcomeKind
	Raw     input.RawGestureEvent
	Event   *types.ActionEvent
	Command actions.Command
	Err     error
}

func newOutcome(raw input.RawGestureEvent, event *types.ActionEvent, cmd actions.Command, err error) Outcome {
	outcome := Outcome{Raw: raw, Event: event, Command: cmd, Err: err}

	var (
		unsupported *events.UnsupportedSwipeEventError
		fingers     *actions.UnsupportedFingerCountError
		below       *actions.DisplacementBelowThresholdError
		noActions   *actions.NoActionsRegisteredError
	)

	switch {
	case err == nil:
		outcome.Kind = Triggered
	case errors.As(err, &unsupported):
		outcome.Kind = Unsupported
	case errors.As(err, &fingers):
		outcome.Kind = UnsupportedFingers
	case errors.As(err, &below):
		outcome.Kind = BelowThreshold
	case errors.As(err, &noActions):
		outcome.Kind = NoMatch
	default:
		// the controller has no other error types; keep the loop going anyway
		outcome.Kind = NoMatch
	}

	return outcome
}

func (o Outcome) log() {
	if o.Kind == Triggered {
		utils.Info("Event %s triggered %s", o.Event, o.Command)
		return
	}
	utils.Verbose("Skipping event (%s): %v", o.Kind, o.Err)
}
