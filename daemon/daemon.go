package daemon

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/sevlyar/go-daemon"
)

const (
	// DaemonEnvVar is the environment variable that marks a daemon child process
	DaemonEnvVar = "SWIPED_DAEMON_CHILD"

	pidFilePerm = 0644
	logFilePerm = 0640
)

// Options configures the detached child
type Options struct {
	// PidFile is skipped when empty
	PidFile string
	// LogFile receives the child's stderr, /dev/null when empty
	LogFile string
	// Args is the child command line, os.Args when nil
	Args []string
}

// Daemon detaches the gesture daemon from the terminal.
type Daemon struct {
	ctx *daemon.Context
}

// New prepares a daemon context. The child starts in "/", so relative
// paths in Args must be made absolute first, see ChildArgs.
func New(options Options) *Daemon {
	args := options.Args
	if args == nil {
		args = os.Args
	}

	ctx := &daemon.Context{
		PidFileName: options.PidFile,
		PidFilePerm: pidFilePerm,
		LogFileName: options.LogFile,
		LogFilePerm: logFilePerm,
		WorkDir:     "/",
		Umask:       027,
		Args:        args,
		Env:         append(os.Environ(), fmt.Sprintf("%s=1", DaemonEnvVar)),
	}
	if options.PidFile == "" {
		ctx.PidFilePerm = 0
	}
	if options.LogFile == "" {
		ctx.LogFilePerm = 0
	}
	return &Daemon{ctx: ctx}
}

// PathFlag is a path valued command line flag
type PathFlag struct {
	Name  string
	Value string
}

// ChildArgs appends every non-empty path flag to args as "--name=<abs>".
// The child parses its command line again after starting in "/", and the
// last occurrence of a flag wins, so relative paths keep pointing where
// the user meant.
func ChildArgs(args []string, flags ...PathFlag) ([]string, error) {
	result := append([]string(nil), args...)
	for _, flag := range flags {
		if flag.Value == "" {
			continue
		}
		abs, err := filepath.Abs(flag.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve --%s %s: %w", flag.Name, flag.Value, err)
		}
		result = append(result, fmt.Sprintf("--%s=%s", flag.Name, abs))
	}
	return result, nil
}

// Daemonize detaches the process and returns the child process handle
// If the returned process is nil, this is the child process
// If the returned process is non-nil, this is the parent process
func (d *Daemon) Daemonize() (*os.Process, error) {
	child, err := d.ctx.Reborn()
	if err != nil {
		return nil, fmt.Errorf("failed to daemonize: %w", err)
	}

	return child, nil
}

// Release removes the pid file, called by the child on exit
func (d *Daemon) Release() error {
	return d.ctx.Release()
}

// IsChild returns true if this is the daemon child process
func IsChild() bool {
	return os.Getenv(DaemonEnvVar) == "1"
}

// Stop sends SIGTERM to the daemon recorded in pidFile
func Stop(pidFile string) (int, error) {
	if pidFile == "" {
		return 0, errors.New("a pid file is required to stop the daemon")
	}

	pid, err := daemon.ReadPidFile(pidFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, fmt.Errorf("daemon is not running (no pid file at %s)", pidFile)
		}
		return 0, fmt.Errorf("failed to read pid file %s: %w", pidFile, err)
	}

	process, err := os.FindProcess(pid)
	if err != nil {
		return 0, fmt.Errorf("failed to find process %d: %w", pid, err)
	}

	if err := process.Signal(syscall.SIGTERM); err != nil {
		if errors.Is(err, os.ErrProcessDone) {
			return pid, fmt.Errorf("daemon with pid %d is not running", pid)
		}
		return pid, fmt.Errorf("failed to signal process %d: %w", pid, err)
	}

	return pid, nil
}
