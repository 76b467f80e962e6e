// Package actions selects the command bound to a normalized gesture and
// hands it off to an executor.
package actions

import (
	"fmt"
	"math"
	"sync/atomic"

	"github.com/mobile-next/swiped/types"
	"github.com/mobile-next/swiped/utils"
)

const (
	DefaultThreshold  = 20.0
	DefaultMinFingers = 2
	DefaultMaxFingers = 5
)

// Options are fixed for the lifetime of a controller.
type Options struct {
	Threshold  float64
	MinFingers int
	MaxFingers int
}

func DefaultOptions() Options {
	return Options{
		Threshold:  DefaultThreshold,
		MinFingers: DefaultMinFingers,
		MaxFingers: DefaultMaxFingers,
	}
}

func (o Options) Validate() error {
	if math.IsNaN(o.Threshold) || o.Threshold < 0 {
		return fmt.Errorf("threshold must be >= 0, got %v", o.Threshold)
	}
	if o.MinFingers < 0 {
		return fmt.Errorf("min fingers must be >= 0, got %d", o.MinFingers)
	}
	if o.MinFingers > o.MaxFingers {
		return fmt.Errorf("min fingers (%d) is greater than max fingers (%d)", o.MinFingers, o.MaxFingers)
	}
	return nil
}

// Executor runs a matched command. The controller only hands commands off,
// it does not track their outcome.
type Executor interface {
	Execute(cmd Command) error
}

// Controller holds the binding table. The table is replaced as a whole by
// Register, so readers always see a consistent set of bindings.
type Controller struct {
	options  Options
	executor Executor
	table    atomic.Pointer[bindingTable]
}

func NewController(options Options, executor Executor) *Controller {
	c := &Controller{
		options:  options,
		executor: executor,
	}
	c.table.Store(newBindingTable(nil))
	return c
}

// Register replaces the binding table. Registration order is kept and
// decides ties between bindings of the same specificity.
func (c *Controller) Register(bindings []Binding) {
	c.table.Store(newBindingTable(bindings))
	utils.Verbose("Registered %d binding(s)", len(bindings))
}

// Bindings returns a copy of the current table
func (c *Controller) Bindings() []Binding {
	table := c.table.Load()
	copied := make([]Binding, len(table.bindings))
	copy(copied, table.bindings)
	return copied
}

func (c *Controller) Options() Options {
	return c.options
}

// Snapshot pins the current table so a batch of events is matched against
// one set of bindings even if Register runs concurrently.
func (c *Controller) Snapshot() *Snapshot {
	return &Snapshot{
		options:  c.options,
		executor: c.executor,
		table:    c.table.Load(),
	}
}

// Process matches event against the current table and hands the command off.
func (c *Controller) Process(event types.ActionEvent) (Command, error) {
	return c.Snapshot().Process(event)
}

// Snapshot is a controller view bound to a single binding table.
type Snapshot struct {
	options  Options
	executor Executor
	table    *bindingTable
}

func (s *Snapshot) Process(event types.ActionEvent) (Command, error) {
	if event.Fingers < s.options.MinFingers || event.Fingers > s.options.MaxFingers {
		return Command{}, &UnsupportedFingerCountError{Fingers: event.Fingers}
	}

	if event.Magnitude < s.options.Threshold {
		return Command{}, &DisplacementBelowThresholdError{Magnitude: event.Magnitude}
	}

	binding, ok := s.table.match(event)
	if !ok {
		return Command{}, &NoActionsRegisteredError{Event: event}
	}

	if err := s.executor.Execute(binding.Command); err != nil {
		utils.Warn("Failed to hand off %s: %v", binding.Command, err)
	}

	return binding.Command, nil
}
