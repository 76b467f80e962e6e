package input

import "fmt"

// Kind tags a gesture event reported by the backend.
// KindOther covers hold gestures and anything the session does not recognize.
type Kind int

const (
	KindOther Kind = iota
	KindSwipeBegin
	KindSwipeUpdate
	KindSwipeEnd
	KindPinchBegin
	KindPinchUpdate
	KindPinchEnd
)

var kindNames = map[Kind]string{
	KindOther:       "other",
	KindSwipeBegin:  "swipe-begin",
	KindSwipeUpdate: "swipe-update",
	KindSwipeEnd:    "swipe-end",
	KindPinchBegin:  "pinch-begin",
	KindPinchUpdate: "pinch-update",
	KindPinchEnd:    "pinch-end",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsSwipe reports whether the kind belongs to the swipe family
func (k Kind) IsSwipe() bool {
	return k == KindSwipeBegin || k == KindSwipeUpdate || k == KindSwipeEnd
}

// RawGestureEvent is a gesture event as drained from the backend.
// For swipe updates DX/DY is the delta since the previous update, for
// swipe ends it is the total displacement of the gesture.
type RawGestureEvent struct {
	Kind      Kind
	Fingers   int
	DX        float64
	DY        float64
	Cancelled bool
}

func (e RawGestureEvent) String() string {
	s := fmt.Sprintf("%s fingers=%d dx=%.2f dy=%.2f", e.Kind, e.Fingers, e.DX, e.DY)
	if e.Cancelled {
		s += " cancelled"
	}
	return s
}

// Session is a seat-scoped connection to the input backend.
type Session interface {
	Seat() string
	// Fd returns the pollable handle, stable for the session lifetime
	Fd() int
	// Dispatch drains every pending event without blocking
	Dispatch() ([]RawGestureEvent, error)
	Close() error
}
