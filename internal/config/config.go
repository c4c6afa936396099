// Package config loads optional user settings from YAML. CLI flags that are
// explicitly set take precedence over file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	appName          = "pomotick"
	settingsFileName = "settings.yaml"
	stateFileName    = "pomotick_state.json"
)

// Config holds the user-tunable settings. Start mode and start minutes are
// per-invocation flags, not settings, so they do not appear here.
type Config struct {
	WorkMinutes          int    `yaml:"work_minutes"`
	BreakMinutes         int    `yaml:"break_minutes"`
	IdleThresholdSeconds int    `yaml:"idle_threshold_seconds"`
	DailyGoalMinutes     int    `yaml:"daily_goal_minutes"`
	StateFile            string `yaml:"state_file"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		WorkMinutes:          30,
		BreakMinutes:         30,
		IdleThresholdSeconds: 30,
		StateFile:            stateFileName,
	}
}

// DefaultPath returns the per-user settings path, or "" if the user config
// directory cannot be resolved.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appName, settingsFileName)
}

// Load reads settings from path on top of the defaults. A missing file yields
// the defaults; a file that does not parse is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read settings file: %w", err)
	}
	var file Config
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return cfg, fmt.Errorf("parse settings yaml %s: %w", path, err)
	}
	apply(&cfg, file)
	return cfg, nil
}

func apply(cfg *Config, file Config) {
	if file.WorkMinutes > 0 {
		cfg.WorkMinutes = file.WorkMinutes
	}
	if file.BreakMinutes > 0 {
		cfg.BreakMinutes = file.BreakMinutes
	}
	if file.IdleThresholdSeconds > 0 {
		cfg.IdleThresholdSeconds = file.IdleThresholdSeconds
	}
	if file.DailyGoalMinutes > 0 {
		cfg.DailyGoalMinutes = file.DailyGoalMinutes
	}
	if file.StateFile != "" {
		cfg.StateFile = file.StateFile
	}
}
