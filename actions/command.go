package actions

import (
	"fmt"
	"strings"
)

// Action types a command can be handed off to
const (
	TypeShell = "command"
	TypeI3    = "i3"
)

// KnownTypes lists every action type in the order they are documented
var KnownTypes = []string{TypeShell, TypeI3}

// Command is the opaque action bound to a gesture, written as
// "<type>:<argument>" in configuration.
type Command struct {
	Type     string `json:"type"`
	Argument string `json:"argument"`
}

func (c Command) String() string {
	return c.Type + ":" + c.Argument
}

// ParseCommand parses "command:notify-send hi" or "i3:workspace next"
func ParseCommand(s string) (Command, error) {
	actionType, argument, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Command{}, fmt.Errorf("invalid action %q: expected <type>:<argument>", s)
	}

	actionType = strings.ToLower(strings.TrimSpace(actionType))
	argument = strings.TrimSpace(argument)

	if !IsKnownType(actionType) {
		return Command{}, fmt.Errorf("invalid action %q: unknown type %q (expected one of %s)", s, actionType, strings.Join(KnownTypes, ", "))
	}
	if argument == "" {
		return Command{}, fmt.Errorf("invalid action %q: empty argument", s)
	}

	return Command{Type: actionType, Argument: argument}, nil
}

// IsKnownType reports whether actionType has a built-in runner
func IsKnownType(actionType string) bool {
	for _, known := range KnownTypes {
		if known == actionType {
			return true
		}
	}
	return false
}
