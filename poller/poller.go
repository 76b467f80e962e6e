//go:build linux

// Package poller blocks on the input backend handle until it becomes readable.
// A secondary eventfd wakes the wait so a stop request needs no shared
// state with the polling thread.
package poller

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// Readiness is the result of a successful wait.
type Readiness int

const (
	// Ready means the backend handle has data to dispatch
	Ready Readiness = iota
	// TimedOut means the timeout elapsed, or the wait was interrupted by a signal
	TimedOut
	// Stopped means Wake was called. It stays set for the lifetime of the poller.
	Stopped
)

func (r Readiness) String() string {
	switch r {
	case Ready:
		return "ready"
	case TimedOut:
		return "timed-out"
	case Stopped:
		return "stopped"
	default:
		return fmt.Sprintf("Readiness(%d)", int(r))
	}
}

// PollError wraps an OS polling failure.
type PollError struct {
	Err error
}

func (e *PollError) Error() string {
	return fmt.Sprintf("failed to poll the file descriptor: %v", e.Err)
}

func (e *PollError) Unwrap() error {
	return e.Err
}

const handleFailure = unix.POLLERR | unix.POLLHUP | unix.POLLNVAL

type Poller struct {
	wakeFd int
}

// New creates a poller with its wakeup eventfd.
func New() (*Poller, error) {
	fd, err := unix.Eventfd(0, unix.EFD_CLOEXEC|unix.EFD_NONBLOCK)
	if err != nil {
		return nil, fmt.Errorf("failed to create wakeup eventfd: %w", err)
	}
	return &Poller{wakeFd: fd}, nil
}

// Wait blocks until fd is readable, the timeout elapses or Wake is called.
// A negative timeout waits indefinitely.
func (p *Poller) Wait(fd int, timeout time.Duration) (Readiness, error) {
	fds := []unix.PollFd{
		{Fd: int32(fd), Events: unix.POLLIN},
		{Fd: int32(p.wakeFd), Events: unix.POLLIN},
	}

	n, err := unix.Poll(fds, timeoutMillis(timeout))
	if err != nil {
		if errors.Is(err, unix.EINTR) {
			return TimedOut, nil
		}
		return TimedOut, &PollError{Err: err}
	}

	if n == 0 {
		return TimedOut, nil
	}

	if fds[1].Revents&unix.POLLIN != 0 {
		return Stopped, nil
	}

	if fds[0].Revents&handleFailure != 0 {
		return TimedOut, &PollError{Err: fmt.Errorf("handle %d reported poll events %#x", fd, fds[0].Revents)}
	}

	return Ready, nil
}

// Wake makes the current and every later Wait return Stopped.
// It is safe to call from any goroutine.
func (p *Poller) Wake() error {
	var buf [8]byte
	binary.NativeEndian.PutUint64(buf[:], 1)

	_, err := unix.Write(p.wakeFd, buf[:])
	if err != nil && !errors.Is(err, unix.EAGAIN) {
		return fmt.Errorf("failed to write wakeup eventfd: %w", err)
	}
	return nil
}

func (p *Poller) Close() error {
	return unix.Close(p.wakeFd)
}

// timeoutMillis rounds up so a sub-millisecond timeout still blocks
func timeoutMillis(timeout time.Duration) int {
	if timeout < 0 {
		return -1
	}
	return int((timeout + time.Millisecond - 1) / time.Millisecond)
}
