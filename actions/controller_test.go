package actions

import (
	"errors"
	"math"
	"testing"

	"github.com/mobile-next/swiped/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingExecutor struct {
	executed []Command
	err      error
}

func (r *recordingExecutor) Execute(cmd Command) error {
	r.executed = append(r.executed, cmd)
	return r.err
}

func shell(argument string) Command {
	return Command{Type: TypeShell, Argument: argument}
}

func newTestController(threshold float64, bindings ...Binding) (*Controller, *recordingExecutor) {
	executor := &recordingExecutor{}
	c := NewController(Options{Threshold: threshold, MinFingers: 2, MaxFingers: 5}, executor)
	c.Register(bindings)
	return c, executor
}

func TestProcess_ExactDirectionWinsOverAny(t *testing.T) {
	c, executor := newTestController(5,
		Binding{Fingers: 3, Event: types.SwipeEnd, Direction: types.DirectionLeft, Command: shell("cmd-left")},
		Binding{Fingers: 3, Event: types.SwipeEnd, Direction: types.DirectionAny, Command: shell("cmd-any")},
	)

	cmd, err := c.Process(types.ActionEvent{Kind: types.SwipeEnd, Fingers: 3, Direction: types.DirectionLeft, Magnitude: 10})

	require.NoError(t, err)
	assert.Equal(t, "cmd-left", cmd.Argument)
	assert.Equal(t, []Command{shell("cmd-left")}, executor.executed)
}

func TestProcess_ExactDirectionWinsEvenWhenRegisteredLater(t *testing.T) {
	c, _ := newTestController(5,
		Binding{Fingers: 3, Event: types.SwipeEnd, Direction: types.DirectionAny, Command: shell("cmd-any")},
		Binding{Fingers: 3, Event: types.SwipeEnd, Direction: types.DirectionLeft, Command: shell("cmd-left")},
	)

	cmd, err := c.Process(types.ActionEvent{Kind: types.SwipeEnd, Fingers: 3, Direction: types.DirectionLeft, Magnitude: 10})

	require.NoError(t, err)
	assert.Equal(t, "cmd-left", cmd.Argument)
}

func TestProcess_FallsBackToAnyDirection(t *testing.T) {
	c, executor := newTestController(5,
		Binding{Fingers: 4, Event: types.SwipeEnd, Direction: types.DirectionAny, Command: shell("cmd-any")},
	)

	cmd, err := c.Process(types.ActionEvent{Kind: types.SwipeEnd, Fingers: 4, Direction: types.DirectionRight, Magnitude: 10})

	require.NoError(t, err)
	assert.Equal(t, "cmd-any", cmd.Argument)
	assert.Len(t, executor.executed, 1)
}

func TestProcess_FirstRegisteredWinsTies(t *testing.T) {
	c, _ := newTestController(0,
		Binding{Fingers: 3, Event: types.SwipeUpdate, Direction: types.DirectionUp, Command: shell("first")},
		Binding{Fingers: 3, Event: types.SwipeUpdate, Direction: types.DirectionUp, Command: shell("second")},
		Binding{Fingers: 3, Event: types.SwipeUpdate, Direction: types.DirectionAny, Command: shell("any-first")},
		Binding{Fingers: 3, Event: types.SwipeUpdate, Direction: types.DirectionAny, Command: shell("any-second")},
	)

	cmd, err := c.Process(types.ActionEvent{Kind: types.SwipeUpdate, Fingers: 3, Direction: types.DirectionUp, Magnitude: 1})
	require.NoError(t, err)
	assert.Equal(t, "first", cmd.Argument)

	cmd, err = c.Process(types.ActionEvent{Kind: types.SwipeUpdate, Fingers: 3, Direction: types.DirectionDown, Magnitude: 1})
	require.NoError(t, err)
	assert.Equal(t, "any-first", cmd.Argument)
}

func TestProcess_NoActionsRegistered(t *testing.T) {
	c, executor := newTestController(5,
		Binding{Fingers: 3, Event: types.SwipeEnd, Direction: types.DirectionAny, Command: shell("other")},
	)
	event := types.ActionEvent{Kind: types.SwipeBegin, Fingers: 2, Direction: types.DirectionNone, Magnitude: 10}

	_, err := c.Process(event)

	var noActions *NoActionsRegisteredError
	require.True(t, errors.As(err, &noActions))
	assert.Equal(t, event, noActions.Event)
	assert.Empty(t, executor.executed)
}

func TestProcess_UnsupportedFingerCount(t *testing.T) {
	anyFingers := func(fingers int) Binding {
		return Binding{Fingers: fingers, Event: types.SwipeEnd, Direction: types.DirectionAny, Command: shell("x")}
	}
	c, executor := newTestController(5, anyFingers(0), anyFingers(1), anyFingers(6))

	for _, fingers := range []int{0, 1, 6, 10} {
		_, err := c.Process(types.ActionEvent{Kind: types.SwipeEnd, Fingers: fingers, Direction: types.DirectionUp, Magnitude: 100})

		var unsupported *UnsupportedFingerCountError
		require.True(t, errors.As(err, &unsupported), "fingers=%d", fingers)
		assert.Equal(t, fingers, unsupported.Fingers)
	}

	assert.Empty(t, executor.executed)
}

func TestProcess_DisplacementBelowThreshold(t *testing.T) {
	c, executor := newTestController(5,
		Binding{Fingers: 3, Event: types.SwipeEnd, Direction: types.DirectionLeft, Command: shell("cmd-left")},
	)

	_, err := c.Process(types.ActionEvent{Kind: types.SwipeEnd, Fingers: 3, Direction: types.DirectionLeft, Magnitude: 4.99})

	var below *DisplacementBelowThresholdError
	require.True(t, errors.As(err, &below))
	assert.Equal(t, 4.99, below.Magnitude)
	assert.Empty(t, executor.executed)
}

func TestProcess_MagnitudeEqualToThresholdTriggers(t *testing.T) {
	c, _ := newTestController(5,
		Binding{Fingers: 3, Event: types.SwipeEnd, Direction: types.DirectionLeft, Command: shell("cmd-left")},
	)

	_, err := c.Process(types.ActionEvent{Kind: types.SwipeEnd, Fingers: 3, Direction: types.DirectionLeft, Magnitude: 5})
	assert.NoError(t, err)
}

func TestProcess_ExecutorFailureIsNotControllerFailure(t *testing.T) {
	c, executor := newTestController(5,
		Binding{Fingers: 3, Event: types.SwipeEnd, Direction: types.DirectionAny, Command: shell("broken")},
	)
	executor.err = errors.New("boom")

	cmd, err := c.Process(types.ActionEvent{Kind: types.SwipeEnd, Fingers: 3, Direction: types.DirectionDown, Magnitude: 50})

	require.NoError(t, err)
	assert.Equal(t, "broken", cmd.Argument)
}

func TestRegister_ReplacesTableAndSnapshotKeepsOld(t *testing.T) {
	c, _ := newTestController(5,
		Binding{Fingers: 3, Event: types.SwipeEnd, Direction: types.DirectionAny, Command: shell("old")},
	)
	event := types.ActionEvent{Kind: types.SwipeEnd, Fingers: 3, Direction: types.DirectionUp, Magnitude: 10}

	snapshot := c.Snapshot()
	c.Register([]Binding{
		{Fingers: 3, Event: types.SwipeEnd, Direction: types.DirectionAny, Command: shell("new")},
	})

	cmd, err := snapshot.Process(event)
	require.NoError(t, err)
	assert.Equal(t, "old", cmd.Argument)

	cmd, err = c.Process(event)
	require.NoError(t, err)
	assert.Equal(t, "new", cmd.Argument)
}

func TestRegister_CopiesInput(t *testing.T) {
	bindings := []Binding{
		{Fingers: 3, Event: types.SwipeEnd, Direction: types.DirectionAny, Command: shell("original")},
	}
	c, _ := newTestController(0)
	c.Register(bindings)

	bindings[0].Command = shell("mutated")

	assert.Equal(t, "original", c.Bindings()[0].Command.Argument)
}

func TestProcess_IsRepeatable(t *testing.T) {
	c, _ := newTestController(5,
		Binding{Fingers: 3, Event: types.SwipeEnd, Direction: types.DirectionLeft, Command: shell("cmd-left")},
	)
	sequence := []types.ActionEvent{
		{Kind: types.SwipeBegin, Fingers: 3},
		{Kind: types.SwipeEnd, Fingers: 3, Direction: types.DirectionLeft, Magnitude: 30},
		{Kind: types.SwipeEnd, Fingers: 7, Direction: types.DirectionLeft, Magnitude: 30},
		{Kind: types.SwipeEnd, Fingers: 3, Direction: types.DirectionRight, Magnitude: 30},
	}

	run := func() []string {
		var out []string
		for _, event := range sequence {
			cmd, err := c.Process(event)
			if err != nil {
				out = append(out, err.Error())
				continue
			}
			out = append(out, cmd.String())
		}
		return out
	}

	first := run()
	assert.Equal(t, first, run())
	assert.Equal(t, "command:cmd-left", first[1])
}

func TestOptions_Validate(t *testing.T) {
	assert.NoError(t, DefaultOptions().Validate())
	assert.Error(t, Options{Threshold: -1, MinFingers: 2, MaxFingers: 5}.Validate())
	assert.Error(t, Options{Threshold: math.NaN(), MinFingers: 2, MaxFingers: 5}.Validate())
	assert.Error(t, Options{Threshold: 1, MinFingers: -1, MaxFingers: 5}.Validate())
	assert.Error(t, Options{Threshold: 1, MinFingers: 4, MaxFingers: 3}.Validate())
}
