// Package config handles tool configuration. A project directory may
// carry an optional pps.yaml next to the planning file; missing files
// and missing keys fall back to defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the working directory.
const FileName = "pps.yaml"

const (
	defaultPlanningFile    = "planning.yaml"
	defaultJuniorWageLimit = 26
	defaultFullTimeHours   = 8
	defaultLogFile         = "pps.log"
)

// Config models pps.yaml.
type Config struct {
	// PlanningFile is the planning document to load, resolved against
	// the directory the config was loaded from when relative.
	PlanningFile string `yaml:"planning_file"`

	// JuniorWageLimit is the hourly wage at or below which an employee
	// counts as junior in the managed budget overview.
	JuniorWageLimit int `yaml:"junior_wage_limit"`

	// FullTimeHoursPerDay is the committed hours-per-day threshold for
	// the full-time employee overview.
	FullTimeHoursPerDay int `yaml:"fulltime_hours_per_day"`

	// LogFile receives the tool's logbook entries.
	LogFile string `yaml:"log_file"`
}

// Default returns the configuration used when no pps.yaml exists.
func Default() Config {
	return Config{
		PlanningFile:        defaultPlanningFile,
		JuniorWageLimit:     defaultJuniorWageLimit,
		FullTimeHoursPerDay: defaultFullTimeHours,
		LogFile:             defaultLogFile,
	}
}

// Load reads pps.yaml from dir. A missing file yields the defaults;
// a malformed or invalid file is an error.
func Load(dir string) (Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := Default()
			cfg.normalize(dir)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	cfg.normalize(dir)
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.PlanningFile) == "" {
		c.PlanningFile = defaultPlanningFile
	}
	if c.JuniorWageLimit == 0 {
		c.JuniorWageLimit = defaultJuniorWageLimit
	}
	if c.FullTimeHoursPerDay == 0 {
		c.FullTimeHoursPerDay = defaultFullTimeHours
	}
	if strings.TrimSpace(c.LogFile) == "" {
		c.LogFile = defaultLogFile
	}
}

func (c *Config) normalize(dir string) {
	c.PlanningFile = resolvePath(dir, c.PlanningFile)
	c.LogFile = resolvePath(dir, c.LogFile)
}

func (c *Config) validate() error {
	if c.JuniorWageLimit < 0 {
		return fmt.Errorf("junior_wage_limit cannot be negative")
	}
	if c.FullTimeHoursPerDay <= 0 {
		return fmt.Errorf("fulltime_hours_per_day must be positive")
	}
	return nil
}

func resolvePath(base, candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, trimmed))
}
