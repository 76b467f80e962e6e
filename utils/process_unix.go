//go:build unix

package utils

import (
	"os/exec"
	"syscall"
)

// DetachActionProcess starts an action command in its own process group so
// a SIGINT sent to the daemon's terminal does not reach actions still running,
// and an action that forks a long lived program keeps it after the daemon exits.
func DetachActionProcess(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.Setpgid = true
	cmd.SysProcAttr.Pgid = 0
}
