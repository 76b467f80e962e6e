package actions

import (
	"fmt"
	"os"
	"os/exec"
	"sync"

	"github.com/mobile-next/swiped/utils"
	"go.i3wm.org/i3/v4"
)

// Runner hands a command argument to one kind of action backend.
type Runner interface {
	Run(argument string) error
}

// Dispatcher routes commands to a runner by action type.
type Dispatcher struct {
	runners map[string]Runner
}

// NewDispatcher creates a dispatcher with the built-in runner of every
// enabled action type.
func NewDispatcher(enabledTypes []string) (*Dispatcher, error) {
	d := &Dispatcher{runners: make(map[string]Runner)}

	for _, actionType := range enabledTypes {
		switch actionType {
		case TypeShell:
			d.runners[TypeShell] = &ShellRunner{}
		case TypeI3:
			d.runners[TypeI3] = &I3Runner{}
		default:
			return nil, fmt.Errorf("unknown action type: %q", actionType)
		}
	}

	return d, nil
}

// SetRunner overrides the runner of an action type
func (d *Dispatcher) SetRunner(actionType string, runner Runner) {
	d.runners[actionType] = runner
}

// Enabled reports whether commands of actionType can be handed off
func (d *Dispatcher) Enabled(actionType string) bool {
	_, ok := d.runners[actionType]
	return ok
}

func (d *Dispatcher) Execute(cmd Command) error {
	runner, ok := d.runners[cmd.Type]
	if !ok {
		return fmt.Errorf("action type %q is not enabled", cmd.Type)
	}
	return runner.Run(cmd.Argument)
}

// ShellRunner starts the argument with "sh -c" in its own process group
// and reaps it in the background.
type ShellRunner struct {
	Shell string
}

func (r *ShellRunner) Run(argument string) error {
	shell := r.Shell
	if shell == "" {
		shell = "/bin/sh"
	}

	cmd := exec.Command(shell, "-c", argument)
	utils.DetachActionProcess(cmd)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start command %q: %w", argument, err)
	}

	utils.Verbose("Started command %q (pid %d)", argument, cmd.Process.Pid)

	go func() {
		if err := cmd.Wait(); err != nil {
			utils.Warn("Command %q exited: %v", argument, err)
		}
	}()

	return nil
}

// I3Runner sends the argument as a command over the i3 IPC socket.
// sway speaks the same protocol but has no "i3 --get-socketpath", so the
// socket is taken from $SWAYSOCK or $I3SOCK when either is set.
type I3Runner struct{}

var installSocketPathHook sync.Once

func (r *I3Runner) Run(argument string) error {
	installSocketPathHook.Do(func() {
		i3.SocketPathHook = socketPathFromEnv(os.Getenv, i3.SocketPathHook)
	})

	results, err := i3.RunCommand(argument)
	if err != nil {
		return fmt.Errorf("i3 command %q failed: %w", argument, err)
	}

	for _, result := range results {
		if !result.Success {
			return fmt.Errorf("i3 command %q failed: %s", argument, result.Error)
		}
	}

	return nil
}

// socketPathFromEnv prefers the sway socket, then the i3 one, then fallback
func socketPathFromEnv(getenv func(string) string, fallback func() (string, error)) func() (string, error) {
	return func() (string, error) {
		for _, name := range []string{"SWAYSOCK", "I3SOCK"} {
			if path := getenv(name); path != "" {
				return path, nil
			}
		}
		return fallback()
	}
}
