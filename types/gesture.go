package types

import (
	"fmt"
	"strings"
)

// EventKind is the phase of a swipe gesture.
type EventKind int

const (
	SwipeBegin EventKind = iota
	SwipeUpdate
	SwipeEnd
)

var eventKindNames = map[EventKind]string{
	SwipeBegin:  "swipe-begin",
	SwipeUpdate: "swipe-update",
	SwipeEnd:    "swipe-end",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// MarshalText lets event kinds show up by name in JSON output
func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseEventKind accepts "swipe-begin", "swipe-update" and "swipe-end"
func ParseEventKind(s string) (EventKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for kind, name := range eventKindNames {
		if name == s {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown event kind: %q", s)
}

// Direction is the dominant direction of a swipe.
// DirectionAny is only meaningful in a binding, events never carry it.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
	DirectionLeft
	DirectionRight
	DirectionAny
)

var directionNames = map[Direction]string{
	DirectionNone:  "none",
	DirectionUp:    "up",
	DirectionDown:  "down",
	DirectionLeft:  "left",
	DirectionRight: "right",
	DirectionAny:   "any",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// MarshalText lets directions show up by name in JSON output
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ParseDirection accepts the lower case direction names, including "any"
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for direction, name := range directionNames {
		if name == s {
			return direction, nil
		}
	}
	return 0, fmt.Errorf("unknown direction: %q", s)
}

// ActionEvent is a normalized swipe: a gesture with N fingers that moved
// in a direction by a magnitude. Magnitude is never negative.
type ActionEvent struct {
	Kind      EventKind `json:"kind"`
	Fingers   int       `json:"fingers"`
	Direction Direction `json:"direction"`
	Magnitude float64   `json:"magnitude"`
}

func (e ActionEvent) String() string {
	return fmt.Sprintf("%d-finger %s %s (%.2f)", e.Fingers, e.Kind, e.Direction, e.Magnitude)
}
