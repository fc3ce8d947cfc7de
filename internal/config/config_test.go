package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.IntP("colours", "c", Default().Colours, "")
	fs.StringP("format", "f", Default().Format, "")
	fs.Duration("timeout", Default().Timeout, "")
	fs.Bool("allow-private-hosts", false, "")
	return fs
}

func TestDefaultValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "zero colours", mutate: func(c *Config) { c.Colours = 0 }, wantErr: true},
		{name: "too many colours", mutate: func(c *Config) { c.Colours = 257 }, wantErr: true},
		{name: "max colours", mutate: func(c *Config) { c.Colours = 256 }},
		{name: "bad format", mutate: func(c *Config) { c.Format = "bmp" }, wantErr: true},
		{name: "ase format", mutate: func(c *Config) { c.Format = "ase" }},
		{name: "zero timeout", mutate: func(c *Config) { c.Timeout = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolvePrecedence(t *testing.T) {
	t.Setenv(EnvColours, "12")
	t.Setenv(EnvFormat, "json")
	t.Setenv(EnvTimeout, "3s")

	t.Run("env over defaults", func(t *testing.T) {
		cfg, err := Resolve(Default(), newFlags())
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if cfg.Colours != 12 || cfg.Format != "json" || cfg.Timeout != 3*time.Second {
			t.Errorf("Resolve() = %+v", cfg)
		}
	})

	t.Run("flags over env", func(t *testing.T) {
		fs := newFlags()
		if err := fs.Parse([]string{"-c", "4", "--format", "css"}); err != nil {
			t.Fatal(err)
		}
		cfg, err := Resolve(Default(), fs)
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if cfg.Colours != 4 || cfg.Format != "css" {
			t.Errorf("Resolve() = %+v, want colours 4 format css", cfg)
		}
		if cfg.Timeout != 3*time.Second {
			t.Errorf("Timeout = %s, want env value 3s", cfg.Timeout)
		}
	})
}

func TestResolveInvalidEnv(t *testing.T) {
	t.Setenv(EnvColours, "many")
	if _, err := Resolve(Default(), nil); err == nil {
		t.Error("Resolve() expected error for non-numeric colours")
	}
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "swatch.env")
	if err := os.WriteFile(path, []byte("SWATCH_COLOURS=6\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	// t.Setenv registers cleanup; unset so godotenv can populate it.
	t.Setenv(EnvColours, "")
	os.Unsetenv(EnvColours)

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile() error = %v", err)
	}
	cfg, err := Resolve(Default(), nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if cfg.Colours != 6 {
		t.Errorf("Colours = %d, want 6 from env file", cfg.Colours)
	}

	if err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Error("LoadEnvFile() expected error for explicit missing file")
	}
}
