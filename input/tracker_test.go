package input

import (
	"errors"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSwipeTracker_EndCarriesGestureTotal(t *testing.T) {
	var tracker swipeTracker

	tracker.observe(RawGestureEvent{Kind: KindSwipeBegin, Fingers: 3})
	update := tracker.observe(RawGestureEvent{Kind: KindSwipeUpdate, Fingers: 3, DX: -4, DY: 1})
	tracker.observe(RawGestureEvent{Kind: KindSwipeUpdate, Fingers: 3, DX: -6, DY: 0.5})
	end := tracker.observe(RawGestureEvent{Kind: KindSwipeEnd, Fingers: 3})

	// updates keep their own delta
	assert.Equal(t, -4.0, update.DX)
	assert.Equal(t, 1.0, update.DY)

	assert.Equal(t, -10.0, end.DX)
	assert.Equal(t, 1.5, end.DY)
	assert.Equal(t, 3, end.Fingers)
}

func TestSwipeTracker_ResetsBetweenGestures(t *testing.T) {
	var tracker swipeTracker

	tracker.observe(RawGestureEvent{Kind: KindSwipeBegin})
	tracker.observe(RawGestureEvent{Kind: KindSwipeUpdate, DX: 50})
	tracker.observe(RawGestureEvent{Kind: KindSwipeEnd})

	tracker.observe(RawGestureEvent{Kind: KindSwipeBegin})
	tracker.observe(RawGestureEvent{Kind: KindSwipeUpdate, DY: 7})
	end := tracker.observe(RawGestureEvent{Kind: KindSwipeEnd})

	assert.Equal(t, 0.0, end.DX)
	assert.Equal(t, 7.0, end.DY)
}

func TestSwipeTracker_IgnoresUpdatesWithoutBegin(t *testing.T) {
	var tracker swipeTracker

	tracker.observe(RawGestureEvent{Kind: KindSwipeUpdate, DX: 30})
	end := tracker.observe(RawGestureEvent{Kind: KindSwipeEnd})

	assert.Equal(t, 0.0, end.DX)
}

func TestSwipeTracker_PassesPinchThrough(t *testing.T) {
	var tracker swipeTracker

	tracker.observe(RawGestureEvent{Kind: KindSwipeBegin})
	pinch := tracker.observe(RawGestureEvent{Kind: KindPinchUpdate, DX: 2, DY: 3})
	end := tracker.observe(RawGestureEvent{Kind: KindSwipeEnd})

	assert.Equal(t, RawGestureEvent{Kind: KindPinchUpdate, DX: 2, DY: 3}, pinch)
	assert.Equal(t, 0.0, end.DX)
	assert.Equal(t, 0.0, end.DY)
}

func TestKind_IsSwipe(t *testing.T) {
	tests := []struct {
		kind Kind
		want bool
	}{
		{KindSwipeBegin, true},
		{KindSwipeUpdate, true},
		{KindSwipeEnd, true},
		{KindPinchBegin, false},
		{KindPinchUpdate, false},
		{KindPinchEnd, false},
		{KindOther, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.IsSwipe())
		})
	}
}

func TestDispatchError_Unwrap(t *testing.T) {
	err := &DispatchError{Err: syscall.ENODEV}

	assert.True(t, errors.Is(err, syscall.ENODEV))
	assert.Contains(t, err.Error(), "failed to dispatch input events")
}

func TestSeatAssignmentError_Message(t *testing.T) {
	assert.Equal(t, `failed to assign seat "seat1" to the input context`, (&SeatAssignmentError{Seat: "seat1"}).Error())
	assert.Equal(t, `failed to assign seat "seat1" to the input context: udev_new failed`,
		(&SeatAssignmentError{Seat: "seat1", Reason: "udev_new failed"}).Error())
}

func TestFilterSeat(t *testing.T) {
	touchpads := []TouchpadInfo{
		{Name: "a", Seat: seatOf("")},
		{Name: "b", Seat: seatOf("seat1")},
		{Name: "c", Seat: seatOf("seat0")},
	}

	result := filterSeat(touchpads, DefaultSeat)

	assert.Len(t, result, 2)
	assert.Equal(t, "a", result[0].Name)
	assert.Equal(t, "c", result[1].Name)
	assert.Empty(t, filterSeat(touchpads, "seat9"))
}
