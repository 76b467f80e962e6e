// Package events turns raw backend gesture events into ActionEvents.
package events

import (
	"fmt"
	"math"

	"github.com/mobile-next/swiped/input"
	"github.com/mobile-next/swiped/types"
)

// Epsilon is the smallest per-axis displacement that counts as movement.
const Epsilon = 1e-6

// UnsupportedSwipeEventError rejects anything that is not a completed or
// ongoing swipe: pinches, holds, unknown kinds and cancelled swipes.
type UnsupportedSwipeEventError struct {
	Event input.RawGestureEvent
}

func (e *UnsupportedSwipeEventError) Error() string {
	return fmt.Sprintf("unsupported swipe event (%s)", e.Event)
}

// Normalize maps a swipe-family raw event to an ActionEvent. It keeps no
// state between calls.
func Normalize(raw input.RawGestureEvent) (types.ActionEvent, error) {
	var kind types.EventKind
	switch raw.Kind {
	case input.KindSwipeBegin:
		kind = types.SwipeBegin
	case input.KindSwipeUpdate:
		kind = types.SwipeUpdate
	case input.KindSwipeEnd:
		kind = types.SwipeEnd
	default:
		return types.ActionEvent{}, &UnsupportedSwipeEventError{Event: raw}
	}

	if raw.Cancelled {
		return types.ActionEvent{}, &UnsupportedSwipeEventError{Event: raw}
	}

	direction, magnitude := Direction(raw.DX, raw.DY)
	return types.ActionEvent{
		Kind:      kind,
		Fingers:   raw.Fingers,
		Direction: direction,
		Magnitude: magnitude,
	}, nil
}

// Direction picks the dominant axis of a displacement and returns its
// direction and absolute size. Positive dy points down. On a tie the
// horizontal axis wins.
func Direction(dx, dy float64) (types.Direction, float64) {
	ax, ay := math.Abs(dx), math.Abs(dy)

	if ax <= Epsilon && ay <= Epsilon {
		return types.DirectionNone, math.Max(ax, ay)
	}

	if ax >= ay {
		if dx < 0 {
			return types.DirectionLeft, ax
		}
		return types.DirectionRight, ax
	}

	if dy < 0 {
		return types.DirectionUp, ay
	}
	return types.DirectionDown, ay
}
