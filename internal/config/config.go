// Package config loads the beautty CLI configuration: logging, the fallback
// terminal size, the layout remainder policy and a named style sheet.
//
// Files are TOML or YAML, chosen by extension. A missing file is not an
// error; the defaults apply.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"beautty"
)

// Environment variables that override the file.
const (
	ConfigEnvVar   = "BEAUTTY_CONFIG"
	LogLevelEnvVar = "BEAUTTY_LOG_LEVEL"
)

// ErrUnsupportedFormat is returned for a config file that is neither TOML
// nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config is the whole configuration file.
type Config struct {
	Log      LogConfig            `toml:"log" yaml:"log"`
	Terminal TerminalConfig       `toml:"terminal" yaml:"terminal"`
	Layout   LayoutConfig         `toml:"layout" yaml:"layout"`
	Styles   map[string]StyleSpec `toml:"styles" yaml:"styles"`

	// Path is the file the config was loaded from, empty for defaults.
	Path string `toml:"-" yaml:"-"`
	// Warnings lists unknown keys and values that fell back to defaults.
	Warnings []string `toml:"-" yaml:"-"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"`
	File  string `toml:"file" yaml:"file"`
}

// TerminalConfig is the size run falls back to when the real one cannot be
// queried, and the default size for the layout and snapshot commands.
type TerminalConfig struct {
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`
}

// LayoutConfig tunes the layout engine.
type LayoutConfig struct {
	// Remainder is "last" or "drop".
	Remainder string `toml:"remainder" yaml:"remainder"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Terminal: TerminalConfig{Width: 80, Height: 24},
		Layout:   LayoutConfig{Remainder: "last"},
		Styles:   map[string]StyleSpec{},
	}
}

// ResolvePath returns path, or $BEAUTTY_CONFIG when path is empty.
func ResolvePath(path string) string {
	if path != "" {
		return path
	}
	return os.Getenv(ConfigEnvVar)
}

// Load reads the config file at path (or $BEAUTTY_CONFIG), applies
// environment overrides and fills defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	path = ResolvePath(path)

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// File doesn't exist, not an error
		case err != nil:
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := cfg.decode(path, data); err != nil {
				return nil, err
			}
			cfg.Path = path
		}
	}

	cfg.applyEnv()
	cfg.normalize()
	return cfg, nil
}

func (c *Config) decode(path string, data []byte) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.Decode(string(data), c)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		for _, key := range md.Undecoded() {
			c.Warnings = append(c.Warnings, fmt.Sprintf("unknown key %q", key.String()))
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	return nil
}

func (c *Config) applyEnv() {
	if level := os.Getenv(LogLevelEnvVar); level != "" {
		c.Log.Level = level
	}
}

func (c *Config) normalize() {
	if c.Terminal.Width <= 0 {
		c.Terminal.Width = 80
	}
	if c.Terminal.Height <= 0 {
		c.Terminal.Height = 24
	}
	switch c.Layout.Remainder {
	case "last", "drop":
	case "":
		c.Layout.Remainder = "last"
	default:
		c.Warnings = append(c.Warnings, fmt.Sprintf("layout.remainder: unknown policy %q", c.Layout.Remainder))
		c.Layout.Remainder = "last"
	}
	if c.Styles == nil {
		c.Styles = map[string]StyleSpec{}
	}
}

// Engine returns the layout engine configured by Layout.
func (c *Config) Engine() beautty.Engine {
	if c.Layout.Remainder == "drop" {
		return beautty.Engine{Remainder: beautty.RemainderDrop}
	}
	return beautty.Engine{Remainder: beautty.RemainderLast}
}

// Lookup returns the named style from the style sheet.
func (c *Config) Lookup(name string) (beautty.Style, bool) {
	spec, ok := c.Styles[name]
	if !ok {
		return beautty.Style{}, false
	}
	s, _ := spec.Style()
	return s, true
}

// StyleWarnings converts every style in the sheet and returns the
// problems found, prefixed with the style name.
func (c *Config) StyleWarnings() []string {
	var out []string
	for name, spec := range c.Styles {
		_, warnings := spec.Style()
		for _, w := range warnings {
			out = append(out, "styles."+name+": "+w)
		}
	}
	return out
}
