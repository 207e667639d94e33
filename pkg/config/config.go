package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/weekboard/weekboard/pkg/board"
)

// FileName is the config file inside the data directory.
const FileName = "config.yaml"

// Config is the board configuration stored in config.yaml.
type Config struct {
	// WorkingHours is the inclusive range of schedulable hours.
	WorkingHours board.WorkingHours `yaml:"working_hours" json:"working_hours"`

	// WeekStart is the first column of the board: "monday" (default) or "sunday".
	WeekStart board.Weekday `yaml:"week_start" json:"week_start"`

	// Timezone is an IANA name used for calendar export, or "Local".
	Timezone string `yaml:"timezone" json:"timezone"`

	// LogLevel is one of debug, info, error.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// ExportDurationMinutes is the length of an exported calendar event.
	ExportDurationMinutes int `yaml:"export_duration_minutes" json:"export_duration_minutes"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		WorkingHours:          board.DefaultWorkingHours,
		WeekStart:             board.Monday,
		Timezone:              "Local",
		LogLevel:              "info",
		ExportDurationMinutes: 60,
	}
}

// Path returns the config file location for a data directory.
func Path(dataDir string) string {
	return filepath.Join(dataDir, FileName)
}

// Normalize repairs missing or invalid values so older or hand-edited files
// still produce a usable board.
func (c *Config) Normalize() {
	if err := c.WorkingHours.Validate(); err != nil || (c.WorkingHours == board.WorkingHours{}) {
		c.WorkingHours = board.DefaultWorkingHours
	}
	switch c.WeekStart {
	case board.Monday, board.Sunday:
	default:
		c.WeekStart = board.Monday
	}
	if c.Timezone == "" {
		c.Timezone = "Local"
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		c.Timezone = "Local"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.ExportDurationMinutes <= 0 || c.ExportDurationMinutes > 24*60 {
		c.ExportDurationMinutes = 60
	}
}

// Location resolves Timezone, falling back to time.Local.
func (c *Config) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// ExportDuration is the exported event length.
func (c *Config) ExportDuration() time.Duration {
	return time.Duration(c.ExportDurationMinutes) * time.Minute
}

// Load reads the YAML config at path. On first run the file does not exist;
// a default config is written and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.Normalize()

	return &cfg, nil
}

// Save writes cfg to path atomically (temp file + rename) with 0600 perms.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".weekboard-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// Save is shorthand for the package-level Save.
func (c *Config) Save(path string) error {
	return Save(path, c)
}
