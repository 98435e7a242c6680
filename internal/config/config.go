package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// CurrentVersion is written into new config files.
const CurrentVersion = "1.0.0"

// SupportedVersions is the semver constraint a config file version must meet.
const SupportedVersions = "^1"

// Output format names.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Config is the complete greencart configuration.
type Config struct {
	Version string        `yaml:"version"`
	Server  ServerConfig  `yaml:"server"`
	Store   StoreConfig   `yaml:"store"`
	Vendor  VendorConfig  `yaml:"vendor"`
	Loyalty LoyaltyConfig `yaml:"loyalty"`
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`

	// path is the file the config was loaded from, empty for defaults.
	path string
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// StoreConfig controls the in-memory product store.
type StoreConfig struct {
	// Seed loads the demo catalog at startup.
	Seed bool `yaml:"seed"`

	// QueryLatency and SaveLatency simulate database round trips.
	QueryLatency time.Duration `yaml:"query_latency"`
	SaveLatency  time.Duration `yaml:"save_latency"`
}

// VendorConfig controls the mock vendor feed.
type VendorConfig struct {
	FetchDelay    time.Duration `yaml:"fetch_delay"`
	CategoryDelay time.Duration `yaml:"category_delay"`
	MaxItems      int           `yaml:"max_items"`
	PriceJitter   float64       `yaml:"price_jitter"`
}

// LoyaltyConfig controls GreenPoints.
type LoyaltyConfig struct {
	StartingBalance int `yaml:"starting_balance"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
	Caller bool   `yaml:"caller"`
}

// OutputConfig controls CLI rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// Configuration errors.
var (
	ErrUnsupportedVersion = errors.New("unsupported config version")
	ErrInvalidConfig      = errors.New("invalid configuration")
)

// New returns the default configuration, the same values the original demo
// hard-coded.
func New() *Config {
	const (
		defaultReadTimeout     = 10 * time.Second
		defaultWriteTimeout    = 30 * time.Second
		defaultShutdownTimeout = 10 * time.Second
		defaultQueryLatency    = 300 * time.Millisecond
		defaultSaveLatency     = 800 * time.Millisecond
		defaultFetchDelay      = 1500 * time.Millisecond
		defaultCategoryDelay   = 800 * time.Millisecond
		defaultMaxItems        = 8
		defaultStartingPoints  = 140
	)
	return &Config{
		Version: CurrentVersion,
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     defaultReadTimeout,
			WriteTimeout:    defaultWriteTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Store: StoreConfig{
			Seed:         true,
			QueryLatency: defaultQueryLatency,
			SaveLatency:  defaultSaveLatency,
		},
		Vendor: VendorConfig{
			FetchDelay:    defaultFetchDelay,
			CategoryDelay: defaultCategoryDelay,
			MaxItems:      defaultMaxItems,
			PriceJitter:   1.0,
		},
		Loyalty: LoyaltyConfig{StartingBalance: defaultStartingPoints},
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Output:  OutputConfig{DefaultFormat: FormatTable},
	}
}

// Load reads path on top of the defaults and applies environment overrides.
// A missing file is not an error; the defaults are used.
func Load(path string) (*Config, error) {
	return LoadWithOverlay(path, "")
}

// LoadWithOverlay is Load with the top-level sections of overlayPath merged
// over the file before environment overrides apply. An empty overlayPath
// skips the merge; a missing overlay file is an error.
func LoadWithOverlay(path, overlayPath string) (*Config, error) {
	cfg := New()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
		cfg.path = path
	}

	if overlayPath != "" {
		if err = ShallowMergeYAML(cfg, overlayPath); err != nil {
			return nil, err
		}
	}

	cfg.ApplyEnv(os.LookupEnv)
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the file the config was loaded from, or "".
func (c *Config) Path() string { return c.path }

// Save writes the config as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	c.path = path
	return nil
}

// Environment variable names that override file settings.
const (
	EnvHome           = "GREENCART_HOME"
	EnvAddr           = "GREENCART_ADDR"
	EnvLogLevel       = "GREENCART_LOG_LEVEL"
	EnvLogFormat      = "GREENCART_LOG_FORMAT"
	EnvLogFile        = "GREENCART_LOG_FILE"
	EnvStartingPoints = "GREENCART_STARTING_POINTS"
	EnvNoLatency      = "GREENCART_NO_LATENCY"
)

// ApplyEnv overrides settings from the environment. Unparseable numeric or
// boolean values are ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvAddr); ok && v != "" {
		c.Server.Addr = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		c.Logging.File = v
	}
	if v, ok := lookup(EnvStartingPoints); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.Loyalty.StartingBalance = n
		}
	}
	if v, ok := lookup(EnvNoLatency); ok {
		if off, err := strconv.ParseBool(v); err == nil && off {
			c.DisableLatency()
		}
	}
}

// DisableLatency zeroes every simulated delay.
func (c *Config) DisableLatency() {
	c.Store.QueryLatency = 0
	c.Store.SaveLatency = 0
	c.Vendor.FetchDelay = 0
	c.Vendor.CategoryDelay = 0
}

// Validate checks the version constraint and value ranges.
func (c *Config) Validate() error {
	v, err := semver.NewVersion(c.Version)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrUnsupportedVersion, c.Version, err)
	}
	constraint, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedVersion, v, SupportedVersions)
	}

	switch {
	case c.Server.Addr == "":
		return fmt.Errorf("%w: server.addr is empty", ErrInvalidConfig)
	case c.Vendor.MaxItems < 1:
		return fmt.Errorf("%w: vendor.max_items must be >= 1, got %d", ErrInvalidConfig, c.Vendor.MaxItems)
	case c.Vendor.PriceJitter < 0:
		return fmt.Errorf("%w: vendor.price_jitter must be >= 0", ErrInvalidConfig)
	case c.Loyalty.StartingBalance < 0:
		return fmt.Errorf("%w: loyalty.starting_balance must be >= 0", ErrInvalidConfig)
	case c.Store.QueryLatency < 0 || c.Store.SaveLatency < 0 ||
		c.Vendor.FetchDelay < 0 || c.Vendor.CategoryDelay < 0:
		return fmt.Errorf("%w: latencies must be >= 0", ErrInvalidConfig)
	}

	switch c.Output.DefaultFormat {
	case FormatTable, FormatJSON:
	default:
		return fmt.Errorf("%w: output.default_format %q", ErrInvalidConfig, c.Output.DefaultFormat)
	}
	return nil
}
