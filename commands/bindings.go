package commands

import (
	"github.com/mobile-next/swiped/actions"
	"github.com/mobile-next/swiped/config"
)

// BindingsCommand reports the resolved configuration, split into the
// bindings that will be registered and those skipped for a disabled type
func BindingsCommand(cfg config.Config) *CommandResponse {
	if err := cfg.Validate(); err != nil {
		return NewErrorResponse(err)
	}

	enabled, skipped := cfg.EnabledBindings()
	if enabled == nil {
		enabled = []actions.Binding{}
	}
	if skipped == nil {
		skipped = []actions.Binding{}
	}

	return NewSuccessResponse(map[string]interface{}{
		"config":   cfg.Path,
		"seat":     cfg.Seat,
		"options":  cfg.ControllerOptions(),
		"enabled":  cfg.EnabledActionTypes,
		"bindings": enabled,
		"skipped":  skipped,
	})
}
