// Package config loads pkgstat settings from a TOML file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	pkgerrors "github.com/matzehuels/pkgstat/pkg/errors"
	"github.com/matzehuels/pkgstat/pkg/terminal"
)

const (
	appName = "pkgstat"

	// DefaultRegistry is the public npm registry.
	DefaultRegistry = "https://registry.npmjs.org/"
)

// Config holds file-backed settings. Zero fields fall back to defaults.
type Config struct {
	Registry  string            `toml:"registry"`
	Label     string            `toml:"label"`
	UserAgent string            `toml:"user_agent"`
	Spinner   Spinner           `toml:"spinner"`
	Headers   map[string]string `toml:"headers"`
}

// Spinner configures the progress animation.
type Spinner struct {
	Interval    Duration `toml:"interval"`
	FramesAfter bool     `toml:"frames_after"`
}

// Duration is a time.Duration that decodes from strings like "80ms".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Registry: DefaultRegistry,
		Spinner:  Spinner{Interval: Duration{terminal.DefaultInterval}},
	}
}

// Path returns the default config file location using the XDG standard
// (~/.config/pkgstat/config.toml).
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the file at path over the defaults. An empty path means Path().
// A missing file is not an error unless path was given explicitly.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return Config{}, pkgerrors.Wrap(pkgerrors.ErrCodeInvalidConfig, err, "read config")
	}
	if err := Decode(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Decode parses TOML data into cfg and validates the result. Keys absent from
// data keep their current values; unknown keys are rejected.
func Decode(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return pkgerrors.New(pkgerrors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	return cfg.Validate()
}

// Validate checks that the registry is an absolute http(s) URL and the spinner
// interval is positive.
func (c Config) Validate() error {
	if err := pkgerrors.ValidateRegistryURL(c.Registry); err != nil {
		return pkgerrors.Wrap(pkgerrors.ErrCodeInvalidConfig, err, "registry")
	}
	if c.Spinner.Interval.Duration <= 0 {
		return pkgerrors.New(pkgerrors.ErrCodeInvalidConfig, "spinner interval must be positive, got %s", c.Spinner.Interval)
	}
	return nil
}
