package actions

import (
	"fmt"

	"github.com/mobile-next/swiped/types"
)

// UnsupportedFingerCountError is returned for events outside the configured finger range.
type UnsupportedFingerCountError struct {
	Fingers int
}

func (e *UnsupportedFingerCountError) Error() string {
	return fmt.Sprintf("unsupported finger count (%d)", e.Fingers)
}

// DisplacementBelowThresholdError suppresses events that moved too little.
// It is a deliberate no-op, not a failure.
type DisplacementBelowThresholdError struct {
	Magnitude float64
}

func (e *DisplacementBelowThresholdError) Error() string {
	return fmt.Sprintf("event displacement is below threshold (%.2f)", e.Magnitude)
}

// NoActionsRegisteredError is returned when no binding matches an event.
type NoActionsRegisteredError struct {
	Event types.ActionEvent
}

func (e *NoActionsRegisteredError) Error() string {
	return fmt.Sprintf("no actions registered for event %s", e.Event)
}
