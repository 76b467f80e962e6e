package daemon

import (
	"fmt"
	"sync"

	"github.com/mobile-next/swiped/utils"
)

// ShutdownHook runs cleanup functions when the daemon exits, whether the
// main loop stopped cleanly or failed.
type ShutdownHook struct {
	mu    sync.Mutex
	hooks []namedHook
}

type namedHook struct {
	name string
	fn   func() error
}

func NewShutdownHook() *ShutdownHook {
	return &ShutdownHook{}
}

// Register adds a cleanup function. Hooks run in reverse registration
// order, so resources are released before the ones they depend on.
func (s *ShutdownHook) Register(name string, cleanupFn func() error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, namedHook{name: name, fn: cleanupFn})
	utils.Verbose("Registered shutdown hook: %s", name)
}

// Shutdown executes all registered cleanup functions.
// Returns an error if any cleanup function fails, but continues
// executing remaining hooks to ensure best-effort cleanup.
func (s *ShutdownHook) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for i := len(s.hooks) - 1; i >= 0; i-- {
		hook := s.hooks[i]
		utils.Verbose("Running shutdown hook: %s", hook.name)
		if err := hook.fn(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", hook.name, err))
		}
	}

	s.hooks = nil

	if len(errs) > 0 {
		return fmt.Errorf("shutdown failed with %d error(s): %v", len(errs), errs)
	}
	return nil
}

// Count returns the number of registered hooks
func (s *ShutdownHook) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.hooks)
}
