package commands

import (
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/mobile-next/swiped/actions"
	"github.com/mobile-next/swiped/config"
	"github.com/mobile-next/swiped/daemon"
	"github.com/mobile-next/swiped/input"
	"github.com/mobile-next/swiped/loop"
	"github.com/mobile-next/swiped/poller"
	"github.com/mobile-next/swiped/utils"
)

// ReloadFunc resolves the configuration again, used on SIGHUP
type ReloadFunc func() (config.Config, error)

// openSession is swapped in tests
var openSession = func(seat string) (input.Session, error) {
	return input.Open(seat)
}

// RunCommand runs the gesture daemon until SIGINT/SIGTERM or a loop-fatal
// error. A seat assignment failure is returned before the loop starts.
func RunCommand(cfg config.Config, reload ReloadFunc) error {
	hooks := daemon.NewShutdownHook()
	defer func() {
		if err := hooks.Shutdown(); err != nil {
			utils.Warn("Cleanup: %v", err)
		}
	}()

	dispatcher, err := actions.NewDispatcher(cfg.EnabledActionTypes)
	if err != nil {
		return err
	}

	controller := actions.NewController(cfg.ControllerOptions(), dispatcher)
	controller.Register(enabledBindings(cfg))

	session, err := openSession(cfg.Seat)
	if err != nil {
		return err
	}
	hooks.Register("input session", session.Close)

	p, err := poller.New()
	if err != nil {
		return err
	}
	hooks.Register("poller", p.Close)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	done := make(chan struct{})
	defer func() {
		signal.Stop(signals)
		close(done)
	}()

	go handleSignals(signals, done, p, controller, dispatcher, cfg, reload)

	return loop.New(session, p, controller, loop.Options{PollTimeout: cfg.PollTimeout}).Run()
}

// handleSignals only touches the poller wakeup handle and the controller's
// atomically swapped table. Reloads are compared against the startup config,
// which is what the running loop and dispatcher still use.
func handleSignals(signals <-chan os.Signal, done <-chan struct{}, p *poller.Poller, controller *actions.Controller, dispatcher *actions.Dispatcher, startup config.Config, reload ReloadFunc) {
	for {
		select {
		case <-done:
			return
		case sig := <-signals:
			if sig != syscall.SIGHUP {
				utils.Info("Received %s, shutting down", sig)
				if err := p.Wake(); err != nil {
					utils.Error("Failed to stop main loop: %v", err)
				}
				return
			}

			if reload == nil {
				continue
			}
			if _, err := reloadBindings(controller, dispatcher, startup, reload); err != nil {
				utils.Error("Reload failed, keeping previous bindings: %v", err)
			}
		}
	}
}

// reloadBindings registers the reloaded bindings. Runners are created at
// startup, so bindings are filtered by what the dispatcher can run rather
// than by the reloaded enabled-action-types.
func reloadBindings(controller *actions.Controller, dispatcher *actions.Dispatcher, current config.Config, reload ReloadFunc) (config.Config, error) {
	next, err := reload()
	if err != nil {
		return current, err
	}

	if changed := restartOnlyChanges(current, next); len(changed) > 0 {
		utils.Warn("Changes to %s need a restart", strings.Join(changed, ", "))
	}

	var enabled []actions.Binding
	for _, b := range enabledBindings(next) {
		if !dispatcher.Enabled(b.Command.Type) {
			utils.Warn("Skipping binding %s: action type %q was not enabled at startup", b, b.Command.Type)
			continue
		}
		enabled = append(enabled, b)
	}

	controller.Register(enabled)
	utils.Info("Reloaded %d binding(s)", len(enabled))
	return next, nil
}

func restartOnlyChanges(current, next config.Config) []string {
	var changed []string
	if next.Seat != current.Seat {
		changed = append(changed, "seat")
	}
	if next.ControllerOptions() != current.ControllerOptions() {
		changed = append(changed, "threshold and finger range")
	}
	if next.PollTimeout != current.PollTimeout {
		changed = append(changed, "poll-timeout")
	}
	if !slices.Equal(next.EnabledActionTypes, current.EnabledActionTypes) {
		changed = append(changed, "enabled-action-types")
	}
	return changed
}

func enabledBindings(cfg config.Config) []actions.Binding {
	enabled, skipped := cfg.EnabledBindings()
	for _, b := range skipped {
		utils.Warn("Skipping binding %s: action type %q is not enabled", b, b.Command.Type)
	}
	if len(enabled) == 0 {
		utils.Warn("No bindings registered, gestures will not trigger anything")
	}
	return enabled
}

// Describe is the one-line startup summary
func Describe(cfg config.Config) string {
	path := cfg.Path
	if path == "" {
		path = "defaults"
	}
	return fmt.Sprintf("seat=%s threshold=%.2f fingers=%d-%d config=%s", cfg.Seat, cfg.Threshold, cfg.MinFingers, cfg.MaxFingers, path)
}
