// Package config loads sixdegrees runtime settings.
//
// Resolution order, lowest priority first:
//
//	Default() → YAML file → SIXDEGREES_* environment → CLI flags (applied by cmd)
//
// A missing config file is not an error: the defaults stand.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sixdegrees/internal/logging"
)

// Environment variable names.
const (
	EnvDataset         = "SIXDEGREES_DATASET"
	EnvAddr            = "SIXDEGREES_ADDR"
	EnvLogLevel        = "SIXDEGREES_LOG_LEVEL"
	EnvLogFormat       = "SIXDEGREES_LOG_FORMAT"
	EnvKeepEmptyMovies = "SIXDEGREES_KEEP_EMPTY_MOVIES"
)

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds every tunable of the CLI and the query service.
type Config struct {
	// Dataset is the path of the movie data file.
	Dataset string `yaml:"dataset"`

	// Addr is the listen address of `sixdegrees serve`.
	Addr string `yaml:"addr"`

	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	// KeepEmptyMovies lists cast-less titles in the movie set instead of
	// skipping them.
	KeepEmptyMovies bool `yaml:"keep_empty_movies"`

	// Bins is the minimum number of histogram bins drawn (degrees 0..Bins-1).
	Bins int `yaml:"bins"`

	// MaxDegree bounds distribution traversals; 0 means unbounded.
	MaxDegree int `yaml:"max_degree"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Dataset:   "movie_data_small.txt",
		Addr:      ":8080",
		LogLevel:  "info",
		LogFormat: FormatText,
		Bins:      7,
	}
}

// Load is Resolve followed by Validate.
func Load(path string) (Config, error) {
	cfg, err := Resolve(path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Resolve merges defaults, then path (if non-empty and present), then the
// environment. The result is not validated: callers that layer further
// overrides on top (command-line flags) call Validate once they are applied.
// Only an unreadable or unparsable file is an error here.
func Resolve(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides cfg from SIXDEGREES_* variables. Unparsable booleans are
// ignored.
func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvDataset); v != "" {
		cfg.Dataset = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv(EnvKeepEmptyMovies); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.KeepEmptyMovies = b
		}
	}
}

// Validate checks the settings for consistency.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Dataset) == "" {
		return fmt.Errorf("%w: dataset path is empty", ErrInvalid)
	}
	if c.Addr == "" {
		return fmt.Errorf("%w: listen address is empty", ErrInvalid)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: log format %q (want text or json)", ErrInvalid, c.LogFormat)
	}
	if c.Bins < 1 {
		return fmt.Errorf("%w: bins must be positive, got %d", ErrInvalid, c.Bins)
	}
	if c.MaxDegree < 0 {
		return fmt.Errorf("%w: max_degree cannot be negative, got %d", ErrInvalid, c.MaxDegree)
	}
	return nil
}

// Logging translates the log settings. Call after Validate.
func (c Config) Logging(service string) logging.Config {
	level, _ := logging.ParseLevel(c.LogLevel)
	return logging.Config{
		Level:   level,
		Service: service,
		JSON:    strings.EqualFold(c.LogFormat, FormatJSON),
	}
}
