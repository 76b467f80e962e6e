// Package config loads daemon settings and gesture bindings from an ini file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mobile-next/swiped/actions"
	"github.com/mobile-next/swiped/input"
	"github.com/mobile-next/swiped/types"
	"gopkg.in/ini.v1"
)

const (
	sectionDaemon   = "daemon"
	sectionBindings = "bindings"

	defaultFileName    = "swiped.ini"
	defaultPollTimeout = -1 * time.Second
)

// Config holds the resolved daemon configuration.
type Config struct {
	Path               string            `json:"path,omitempty"`
	Seat               string            `json:"seat"`
	Threshold          float64           `json:"threshold"`
	MinFingers         int               `json:"minFingers"`
	MaxFingers         int               `json:"maxFingers"`
	PollTimeout        time.Duration     `json:"pollTimeout"`
	EnabledActionTypes []string          `json:"enabledActionTypes"`
	Bindings           []actions.Binding `json:"bindings"`
}

// Default returns the configuration used when no file is present
func Default() Config {
	return Config{
		Seat:               input.DefaultSeat,
		Threshold:          actions.DefaultThreshold,
		MinFingers:         actions.DefaultMinFingers,
		MaxFingers:         actions.DefaultMaxFingers,
		PollTimeout:        defaultPollTimeout,
		EnabledActionTypes: append([]string(nil), actions.KnownTypes...),
	}
}

// ControllerOptions derives the action controller options
func (c Config) ControllerOptions() actions.Options {
	return actions.Options{
		Threshold:  c.Threshold,
		MinFingers: c.MinFingers,
		MaxFingers: c.MaxFingers,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/swiped/swiped.ini, falling back to
// ~/.config when XDG_CONFIG_HOME is unset.
func DefaultPath() (string, error) {
	if dir := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); dir != "" {
		return filepath.Join(dir, "swiped", defaultFileName), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "swiped", defaultFileName), nil
}

// Load reads path, or the default path when path is empty. A missing
// default file yields Default(); a missing explicit file is an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		defaultPath, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse reads ini content on top of Default().
func Parse(data []byte) (Config, error) {
	file, err := ini.LoadSources(ini.LoadOptions{
		AllowShadows:        true,
		KeyValueDelimiters:  "=",
		IgnoreInlineComment: true,
	}, data)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	daemon := file.Section(sectionDaemon)
	cfg.Seat = daemon.Key("seat").MustString(cfg.Seat)

	if key := daemon.Key("threshold"); key.String() != "" {
		if cfg.Threshold, err = key.Float64(); err != nil {
			return Config{}, fmt.Errorf("threshold must be a number: %w", err)
		}
	}
	if key := daemon.Key("min-fingers"); key.String() != "" {
		if cfg.MinFingers, err = key.Int(); err != nil {
			return Config{}, fmt.Errorf("min-fingers must be an integer: %w", err)
		}
	}
	if key := daemon.Key("max-fingers"); key.String() != "" {
		if cfg.MaxFingers, err = key.Int(); err != nil {
			return Config{}, fmt.Errorf("max-fingers must be an integer: %w", err)
		}
	}
	if key := daemon.Key("poll-timeout"); key.String() != "" {
		if cfg.PollTimeout, err = key.Duration(); err != nil {
			return Config{}, fmt.Errorf("poll-timeout must be a duration: %w", err)
		}
	}
	if key := daemon.Key("enabled-action-types"); key.String() != "" {
		cfg.EnabledActionTypes = nil
		for _, actionType := range key.Strings(",") {
			if actionType = strings.ToLower(strings.TrimSpace(actionType)); actionType != "" {
				cfg.EnabledActionTypes = append(cfg.EnabledActionTypes, actionType)
			}
		}
	}

	for _, key := range file.Section(sectionBindings).Keys() {
		for _, value := range key.ValueWithShadows() {
			binding, err := ParseBinding(key.Name(), value)
			if err != nil {
				return Config{}, err
			}
			cfg.Bindings = append(cfg.Bindings, binding)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges and action types
func (c Config) Validate() error {
	if strings.TrimSpace(c.Seat) == "" {
		return errors.New("seat must not be empty")
	}
	if err := c.ControllerOptions().Validate(); err != nil {
		return err
	}
	for _, actionType := range c.EnabledActionTypes {
		if !actions.IsKnownType(actionType) {
			return fmt.Errorf("unknown action type in enabled-action-types: %q", actionType)
		}
	}
	return nil
}

// EnabledBindings drops bindings whose action type is not enabled and
// returns them separately so the caller can warn about them.
func (c Config) EnabledBindings() (enabled, skipped []actions.Binding) {
	allowed := make(map[string]bool, len(c.EnabledActionTypes))
	for _, actionType := range c.EnabledActionTypes {
		allowed[actionType] = true
	}

	for _, b := range c.Bindings {
		if allowed[b.Command.Type] {
			enabled = append(enabled, b)
		} else {
			skipped = append(skipped, b)
		}
	}
	return enabled, skipped
}

// ParseBinding parses a "<fingers>-finger-<phase>-<direction>" key and a
// "<type>:<argument>" value, e.g. "3-finger-swipe-end-left" and
// "i3:workspace prev".
func ParseBinding(key, value string) (actions.Binding, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(key)), "-")
	if len(parts) != 5 || parts[1] != "finger" {
		return actions.Binding{}, fmt.Errorf("invalid binding %q: expected <fingers>-finger-swipe-<phase>-<direction>", key)
	}

	fingers, err := strconv.Atoi(parts[0])
	if err != nil || fingers < 0 {
		return actions.Binding{}, fmt.Errorf("invalid binding %q: bad finger count %q", key, parts[0])
	}

	event, err := types.ParseEventKind(parts[2] + "-" + parts[3])
	if err != nil {
		return actions.Binding{}, fmt.Errorf("invalid binding %q: %w", key, err)
	}

	direction, err := types.ParseDirection(parts[4])
	if err != nil {
		return actions.Binding{}, fmt.Errorf("invalid binding %q: %w", key, err)
	}

	cmd, err := actions.ParseCommand(value)
	if err != nil {
		return actions.Binding{}, fmt.Errorf("invalid binding %q: %w", key, err)
	}

	return actions.Binding{
		Fingers:   fingers,
		Event:     event,
		Direction: direction,
		Command:   cmd,
	}, nil
}

// ParseBindingFlag parses the "key=value" form used on the command line
func ParseBindingFlag(s string) (actions.Binding, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return actions.Binding{}, fmt.Errorf("invalid binding %q: expected <key>=<type>:<argument>", s)
	}
	return ParseBinding(key, value)
}
