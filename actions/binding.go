package actions

import (
	"fmt"

	"github.com/mobile-next/swiped/types"
)

// Binding maps a gesture signature to a command.
// Direction may be types.DirectionAny.
type Binding struct {
	Fingers   int             `json:"fingers"`
	Event     types.EventKind `json:"event"`
	Direction types.Direction `json:"direction"`
	Command   Command         `json:"command"`
}

func (b Binding) String() string {
	return fmt.Sprintf("%d-finger %s %s -> %s", b.Fingers, b.Event, b.Direction, b.Command)
}

// bindingTable is immutable once stored in a controller
type bindingTable struct {
	bindings []Binding
}

func newBindingTable(bindings []Binding) *bindingTable {
	copied := make([]Binding, len(bindings))
	copy(copied, bindings)
	return &bindingTable{bindings: copied}
}

// match prefers an exact direction over DirectionAny. Within the same
// specificity the first registered binding wins.
func (t *bindingTable) match(event types.ActionEvent) (Binding, bool) {
	var fallback *Binding

	for i := range t.bindings {
		b := &t.bindings[i]
		if b.Fingers != event.Fingers || b.Event != event.Kind {
			continue
		}

		if b.Direction == event.Direction {
			return *b, true
		}

		if b.Direction == types.DirectionAny && fallback == nil {
			fallback = b
		}
	}

	if fallback != nil {
		return *fallback, true
	}
	return Binding{}, false
}
