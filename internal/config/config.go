// Package config resolves swatch settings from defaults, an optional .env
// file, SWATCH_* environment variables and command-line flags, in that
// order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Environment variable names.
const (
	EnvColours       = "SWATCH_COLOURS"
	EnvFormat        = "SWATCH_FORMAT"
	EnvTimeout       = "SWATCH_TIMEOUT"
	EnvMaxFetchBytes = "SWATCH_MAX_FETCH_BYTES"
	EnvAllowPrivate  = "SWATCH_ALLOW_PRIVATE_HOSTS"
)

// DefaultEnvFile is read when no --env-file is given and it exists.
const DefaultEnvFile = ".env"

// MaxColours bounds the palette size accepted from users.
const MaxColours = 256

// Config holds the resolved settings for one invocation.
type Config struct {
	Colours       int
	Format        string
	Timeout       time.Duration
	MaxFetchBytes int64
	AllowPrivate  bool
}

// Formats returns the output formats the extract command understands.
func Formats() []string {
	return []string{"hex", "rgb", "table", "css", "scss", "json", "ase", "png"}
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		Colours:       8,
		Format:        "table",
		Timeout:       10 * time.Second,
		MaxFetchBytes: 50 * 1024 * 1024,
	}
}

// Validate checks the configuration for out-of-range values.
func (c Config) Validate() error {
	if c.Colours < 1 {
		return fmt.Errorf("colour count must be at least 1, got %d", c.Colours)
	}
	if c.Colours > MaxColours {
		return fmt.Errorf("colour count too large: %d (maximum: %d)", c.Colours, MaxColours)
	}
	if !slices.Contains(Formats(), c.Format) {
		return fmt.Errorf("unsupported format: %s (supported: %v)", c.Format, Formats())
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.MaxFetchBytes <= 0 {
		return fmt.Errorf("max fetch bytes must be positive, got %d", c.MaxFetchBytes)
	}
	return nil
}

// LoadEnvFile loads key/value pairs from path into the process environment
// without overriding variables that are already set. An empty path loads
// DefaultEnvFile if present; an explicit path must exist.
func LoadEnvFile(path string) error {
	if path == "" {
		if err := godotenv.Load(DefaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", DefaultEnvFile, err)
		}
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// Resolve layers environment variables and then explicitly set flags over
// base. Flags are looked up by name: colours, format, timeout and
// allow-private-hosts; flags missing from the set are ignored.
func Resolve(base Config, flags *pflag.FlagSet) (Config, error) {
	cfg, err := applyEnv(base, os.LookupEnv)
	if err != nil {
		return Config{}, err
	}

	if flags != nil {
		if flags.Changed("colours") {
			if cfg.Colours, err = flags.GetInt("colours"); err != nil {
				return Config{}, err
			}
		}
		if flags.Changed("format") {
			if cfg.Format, err = flags.GetString("format"); err != nil {
				return Config{}, err
			}
		}
		if flags.Changed("timeout") {
			if cfg.Timeout, err = flags.GetDuration("timeout"); err != nil {
				return Config{}, err
			}
		}
		if flags.Changed("allow-private-hosts") {
			if cfg.AllowPrivate, err = flags.GetBool("allow-private-hosts"); err != nil {
				return Config{}, err
			}
		}
	}

	return cfg, cfg.Validate()
}

func applyEnv(cfg Config, lookup func(string) (string, bool)) (Config, error) {
	if v, ok := lookup(EnvColours); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvColours, v, err)
		}
		cfg.Colours = n
	}
	if v, ok := lookup(EnvFormat); ok && v != "" {
		cfg.Format = v
	}
	if v, ok := lookup(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvTimeout, v, err)
		}
		cfg.Timeout = d
	}
	if v, ok := lookup(EnvMaxFetchBytes); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvMaxFetchBytes, v, err)
		}
		cfg.MaxFetchBytes = n
	}
	if v, ok := lookup(EnvAllowPrivate); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", EnvAllowPrivate, v, err)
		}
		cfg.AllowPrivate = b
	}
	return cfg, nil
}
