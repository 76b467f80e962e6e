//go:build linux && cgo

package input

/*
#cgo pkg-config: libinput libudev
#include <errno.h>
#include <fcntl.h>
#include <stdlib.h>
#include <unistd.h>
#include <libinput.h>
#include <libudev.h>

static int swiped_open_restricted(const char *path, int flags, void *user_data)
{
	int fd = open(path, flags | O_CLOEXEC);
	return fd < 0 ? -errno : fd;
}

static void swiped_close_restricted(int fd, void *user_data)
{
	close(fd);
}

static const struct libinput_interface swiped_interface = {
	.open_restricted = swiped_open_restricted,
	.close_restricted = swiped_close_restricted,
};

static struct libinput *swiped_create_context(struct udev *udev)
{
	return libinput_udev_create_context(&swiped_interface, NULL, udev);
}
*/
import "C"

import (
	"syscall"
	"unsafe"

	"github.com/mobile-next/swiped/utils"
)

// gesture event types occupy the 800 block of enum libinput_event_type
const gestureTypeBlock = 100

// LibinputSession is a libinput context bound to a udev seat.
type LibinputSession struct {
	seat    string
	udev    *C.struct_udev
	li      *C.struct_libinput
	tracker swipeTracker
}

// Open creates a libinput context on top of udev and assigns it to seat.
func Open(seat string) (*LibinputSession, error) {
	udev := C.udev_new()
	if udev == nil {
		return nil, &SeatAssignmentError{Seat: seat, Reason: "udev_new failed"}
	}

	li := C.swiped_create_context(udev)
	if li == nil {
		C.udev_unref(udev)
		return nil, &SeatAssignmentError{Seat: seat, Reason: "libinput_udev_create_context failed"}
	}

	cseat := C.CString(seat)
	defer C.free(unsafe.Pointer(cseat))

	if C.libinput_udev_assign_seat(li, cseat) != 0 {
		C.libinput_unref(li)
		C.udev_unref(udev)
		return nil, &SeatAssignmentError{Seat: seat}
	}

	utils.Verbose("libinput context assigned to seat %s", seat)
	return &LibinputSession{seat: seat, udev: udev, li: li}, nil
}

func (s *LibinputSession) Seat() string {
	return s.seat
}

func (s *LibinputSession) Fd() int {
	return int(C.libinput_get_fd(s.li))
}

// Dispatch reads pending kernel events and returns the gesture events among
// them. Non-gesture events are drained and dropped.
func (s *LibinputSession) Dispatch() ([]RawGestureEvent, error) {
	if rc := C.libinput_dispatch(s.li); rc < 0 {
		return nil, &DispatchError{Err: syscall.Errno(-rc)}
	}

	var events []RawGestureEvent
	for {
		ev := C.libinput_get_event(s.li)
		if ev == nil {
			break
		}

		raw, ok := convertEvent(ev)
		C.libinput_event_destroy(ev)
		if ok {
			events = append(events, s.tracker.observe(raw))
		}
	}

	return events, nil
}

func (s *LibinputSession) Close() error {
	if s.li != nil {
		C.libinput_unref(s.li)
		s.li = nil
	}
	if s.udev != nil {
		C.udev_unref(s.udev)
		s.udev = nil
	}
	return nil
}

func convertEvent(ev *C.struct_libinput_event) (RawGestureEvent, bool) {
	eventType := C.libinput_event_get_type(ev)
	if eventType < C.LIBINPUT_EVENT_GESTURE_SWIPE_BEGIN ||
		eventType >= C.LIBINPUT_EVENT_GESTURE_SWIPE_BEGIN+gestureTypeBlock {
		return RawGestureEvent{}, false
	}

	gesture := C.libinput_event_get_gesture_event(ev)
	raw := RawGestureEvent{
		Kind:    KindOther,
		Fingers: int(C.libinput_event_gesture_get_finger_count(gesture)),
	}

	switch eventType {
	case C.LIBINPUT_EVENT_GESTURE_SWIPE_BEGIN:
		raw.Kind = KindSwipeBegin
	case C.LIBINPUT_EVENT_GESTURE_SWIPE_UPDATE:
		raw.Kind = KindSwipeUpdate
		raw.DX = float64(C.libinput_event_gesture_get_dx(gesture))
		raw.DY = float64(C.libinput_event_gesture_get_dy(gesture))
	case C.LIBINPUT_EVENT_GESTURE_SWIPE_END:
		raw.Kind = KindSwipeEnd
		raw.Cancelled = C.libinput_event_gesture_get_cancelled(gesture) != 0
	case C.LIBINPUT_EVENT_GESTURE_PINCH_BEGIN:
		raw.Kind = KindPinchBegin
	case C.LIBINPUT_EVENT_GESTURE_PINCH_UPDATE:
		raw.Kind = KindPinchUpdate
		raw.DX = float64(C.libinput_event_gesture_get_dx(gesture))
		raw.DY = float64(C.libinput_event_gesture_get_dy(gesture))
	case C.LIBINPUT_EVENT_GESTURE_PINCH_END:
		raw.Kind = KindPinchEnd
		raw.Cancelled = C.libinput_event_gesture_get_cancelled(gesture) != 0
	}

	return raw, true
}
