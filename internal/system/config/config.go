// Released under an MIT license. See LICENSE.

// Package config loads logos settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// T (config) holds the settings read from config.toml.
type T struct {
	Prompt     string  `toml:"prompt"`
	History    string  `toml:"history"`
	Sandbox    bool    `toml:"sandbox"`
	DepthLimit int     `toml:"depth_limit"`
	Log        Log     `toml:"log"`
	Browser    Browser `toml:"browser"`

	// Path is the file the settings were read from, if any.
	Path string `toml:"-"`
}

// Log configures the session logger.
type Log struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Browser configures the Browser program's HTTP client.
type Browser struct {
	Timeout Duration `toml:"timeout"`
	Scheme  string   `toml:"scheme"`
}

// Duration is a time.Duration written as a string such as "30s".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}

	d.Duration = v

	return nil
}

// Default returns the settings used when there is no config file.
func Default() *T {
	return &T{
		Prompt:  ">>>> ",
		History: "~/.logos_history",
		Log:     Log{Level: "warn"},
		Browser: Browser{
			Timeout: Duration{30 * time.Second},
			Scheme:  "https",
		},
	}
}

// Load reads the settings in path. If path is empty, the default location
// is tried and a missing file there is not an error.
func Load(path string) (*T, error) {
	explicit := path != ""
	if !explicit {
		path = location()
	}

	c := Default()
	if path == "" {
		return c, nil
	}

	md, err := toml.DecodeFile(path, c)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("cannot load %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}

		sort.Strings(keys)

		return nil, fmt.Errorf("%s: unknown settings: %s", path, strings.Join(keys, ", "))
	}

	err = c.validate()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	c.Path = path

	return c, nil
}

// Level returns the configured log level.
func (c *T) Level() slog.Level {
	var l slog.Level

	_ = l.UnmarshalText([]byte(c.Log.Level))

	return l
}

func (c *T) validate() error {
	var l slog.Level

	err := l.UnmarshalText([]byte(c.Log.Level))
	if err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	switch c.Browser.Scheme {
	case "http", "https":
	default:
		return fmt.Errorf("browser.scheme must be http or https, not %q", c.Browser.Scheme)
	}

	if c.DepthLimit < 0 {
		return fmt.Errorf("depth_limit must not be negative, not %d", c.DepthLimit)
	}

	if c.Browser.Timeout.Duration < 0 {
		return fmt.Errorf("browser.timeout must not be negative, not %v", c.Browser.Timeout)
	}

	return nil
}

func location() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}

		dir = filepath.Join(home, ".config")
	}

	return filepath.Join(dir, "logos", "config.toml")
}
