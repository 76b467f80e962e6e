//go:build !linux || !cgo

package input

// LibinputSession is unavailable without linux and cgo.
type LibinputSession struct{}

// Open always fails: libinput needs linux and cgo.
func Open(seat string) (*LibinputSession, error) {
	return nil, &SeatAssignmentError{Seat: seat, Reason: "libinput requires linux and cgo"}
}

func (s *LibinputSession) Seat() string { return "" }

func (s *LibinputSession) Fd() int { return -1 }

func (s *LibinputSession) Dispatch() ([]RawGestureEvent, error) { return nil, nil }

func (s *LibinputSession) Close() error { return nil }
