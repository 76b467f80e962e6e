package input

// swipeTracker sums swipe update deltas so the end event can carry the
// displacement of the whole gesture. libinput reports no delta on end.
type swipeTracker struct {
	active bool
	dx     float64
	dy     float64
}

func (t *swipeTracker) observe(ev RawGestureEvent) RawGestureEvent {
	switch ev.Kind {
	case KindSwipeBegin:
		t.active = true
		t.dx, t.dy = 0, 0
	case KindSwipeUpdate:
		if t.active {
			t.dx += ev.DX
			t.dy += ev.DY
		}
	case KindSwipeEnd:
		if t.active {
			ev.DX += t.dx
			ev.DY += t.dy
		}
		t.active = false
		t.dx, t.dy = 0, 0
	}
	return ev
}
