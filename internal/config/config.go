// Package config loads lazygrid settings from YAML, the environment and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/rshade/lazygrid/internal/window"
)

// CurrentSchemaVersion is written by Save and New.
const CurrentSchemaVersion = "1.1.0"

// supportedSchema is the range of config schema versions this build reads.
const supportedSchema = ">= 1.0.0, < 2.0.0"

// Environment variables that override file settings.
const (
	EnvConfigPath = "LAZYGRID_CONFIG"
	EnvWidth      = "LAZYGRID_WIDTH"
	EnvHeight     = "LAZYGRID_HEIGHT"
	EnvItemWidth  = "LAZYGRID_ITEM_WIDTH"
	EnvItemHeight = "LAZYGRID_ITEM_HEIGHT"
	EnvBuffer     = "LAZYGRID_BUFFER"
	EnvTranspose  = "LAZYGRID_TRANSPOSE"
	EnvLogLevel   = "LAZYGRID_LOG_LEVEL"
	EnvLogFormat  = "LAZYGRID_LOG_FORMAT"
	EnvLogFile    = "LAZYGRID_LOG_FILE"
)

// ErrUnsupportedSchema is returned when a config file's schema_version is
// outside the supported range.
var ErrUnsupportedSchema = errors.New("unsupported config schema version")

// Config is the top-level configuration.
type Config struct {
	SchemaVersion string        `yaml:"schema_version"`
	Grid          GridConfig    `yaml:"grid"`
	Logging       LoggingConfig `yaml:"logging"`
}

// GridConfig holds viewport and item sizing. Width and Height accept a
// numeric magnitude with an optional unit suffix such as "px".
type GridConfig struct {
	Width      string  `yaml:"width"`
	Height     string  `yaml:"height"`
	ItemWidth  float64 `yaml:"item_width"`
	ItemHeight float64 `yaml:"item_height"`
	Buffer     int     `yaml:"buffer"`
	Transpose  bool    `yaml:"transpose"`
}

// LoggingConfig holds log settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// New returns a Config populated with defaults sized for an 80x24 terminal.
func New() *Config {
	return &Config{
		SchemaVersion: CurrentSchemaVersion,
		Grid: GridConfig{
			Width:      "72",
			Height:     "18",
			ItemWidth:  12,
			ItemHeight: 3,
			Buffer:     1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// DefaultPath returns the user config file location, $HOME/.lazygrid/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".lazygrid", "config.yaml"), nil
}

// Load returns defaults merged with the file at path (if it exists) and
// the LAZYGRID_* environment, then validates the result. An empty path
// means no file.
func Load(path string) (*Config, error) {
	return LoadWithEnv(path, os.LookupEnv)
}

// LoadWithEnv is Load with an explicit environment lookup for testability.
func LoadWithEnv(path string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := New()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err = MergeYAML(cfg, path); err != nil {
				return nil, err
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(lookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes c to path as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides fields from environment variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvWidth); ok {
		c.Grid.Width = v
	}
	if v, ok := lookup(EnvHeight); ok {
		c.Grid.Height = v
	}
	if err := envFloat(lookup, EnvItemWidth, &c.Grid.ItemWidth); err != nil {
		return err
	}
	if err := envFloat(lookup, EnvItemHeight, &c.Grid.ItemHeight); err != nil {
		return err
	}
	if v, ok := lookup(EnvBuffer); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvBuffer, err)
		}
		c.Grid.Buffer = n
	}
	if v, ok := lookup(EnvTranspose); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTranspose, err)
		}
		c.Grid.Transpose = b
	}
	if v, ok := lookup(EnvLogLevel); ok {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok {
		c.Logging.Format = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		c.Logging.File = v
	}
	return nil
}

func envFloat(lookup func(string) (string, bool), key string, dst *float64) error {
	v, ok := lookup(key)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = f
	return nil
}

// Validate checks the schema version and the grid sizing.
func (c *Config) Validate() error {
	if err := checkSchema(c.SchemaVersion); err != nil {
		return err
	}
	if _, err := c.Sizing(); err != nil {
		return fmt.Errorf("invalid grid configuration: %w", err)
	}
	return nil
}

// Sizing converts the grid section into a validated window.Sizing.
func (c *Config) Sizing() (window.Sizing, error) {
	g := c.Grid
	return window.NewSizing(g.Width, g.Height, g.ItemWidth, g.ItemHeight, g.Buffer)
}

func checkSchema(version string) error {
	if version == "" {
		return nil
	}

	v, err := semver.NewVersion(version)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedSchema, version, err)
	}

	constraint, err := semver.NewConstraint(supportedSchema)
	if err != nil {
		return fmt.Errorf("parsing schema constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s (supported %s)", ErrUnsupportedSchema, version, supportedSchema)
	}
	return nil
}
