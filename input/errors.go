package input

import "fmt"

// SeatAssignmentError is returned when the backend cannot bind to a seat.
// The daemon cannot start without a seat.
type SeatAssignmentError struct {
	Seat   string
	Reason string
}

func (e *SeatAssignmentError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("failed to assign seat %q to the input context", e.Seat)
	}
	return fmt.Sprintf("failed to assign seat %q to the input context: %s", e.Seat, e.Reason)
}

// DispatchError wraps the I/O error reported while draining backend events.
type DispatchError struct {
	Err error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("failed to dispatch input events: %v", e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}
