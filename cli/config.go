package cli

import (
	"strings"

	"github.com/mobile-next/swiped/config"
	"github.com/spf13/cobra"
)

// resolveConfig loads the config file and applies command line overrides.
// It is called again on SIGHUP, so it must only read flag values.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("seat") {
		cfg.Seat = seat
	}
	if flags.Changed("threshold") {
		cfg.Threshold = threshold
	}
	if flags.Changed("enabled-action-types") {
		cfg.EnabledActionTypes = nil
		for _, actionType := range enabledActionTypes {
			cfg.EnabledActionTypes = append(cfg.EnabledActionTypes, strings.ToLower(strings.TrimSpace(actionType)))
		}
	}

	for _, raw := range bindFlags {
		binding, err := config.ParseBindingFlag(raw)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Bindings = append(cfg.Bindings, binding)
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
