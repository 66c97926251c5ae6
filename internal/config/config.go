// Package config holds the settings of the minidom command. They come
// from an optional YAML file; command line flags override them.
package config

import (
	"io"
	"os"

	yaml "github.com/goccy/go-yaml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Output formats.
const (
	FormatText = "text"
	FormatTree = "tree"
	FormatYAML = "yaml"
)

var (
	ErrConfig         = errors.New("config error")
	ErrInvalidLevel   = errors.New("invalid log level")
	ErrInvalidFormat  = errors.New("format must be one of text, tree, yaml")
	ErrNegativeLimit  = errors.New("limit cannot be negative")
	ErrUnknownSetting = errors.New("unknown setting")
)

// Config is what the command can be told before it starts.
type Config struct {
	LogLevel string `yaml:"log_level"`
	Format   string `yaml:"format"`
	// Limit caps the number of printed matches, 0 prints all of them.
	Limit int `yaml:"limit"`
}

// file is Config as written in YAML. Unset keys stay nil, and a file with
// no document at all leaves every field unset.
type file struct {
	LogLevel *string `yaml:"log_level"`
	Format   *string `yaml:"format"`
	Limit    *int    `yaml:"limit"`
}

// Default returns the settings used when nothing else is given.
func Default() *Config {
	return &Config{
		LogLevel: logrus.InfoLevel.String(),
		Format:   FormatText,
	}
}

// Load reads the file at path on top of the defaults. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening config %s", path)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	return c, nil
}

// Parse decodes a YAML document on top of the defaults and validates the
// result. Settings it does not know are rejected.
func Parse(r io.Reader) (*Config, error) {
	var f file
	decoder := yaml.NewDecoder(r, yaml.DisallowUnknownField())
	if err := decoder.Decode(&f); err != nil && err != io.EOF {
		return nil, errors.Wrapf(ErrConfig, "failed to decode YAML: %v", err)
	}

	c := Default()
	if f.LogLevel != nil {
		c.LogLevel = *f.LogLevel
	}
	if f.Format != nil {
		c.Format = *f.Format
	}
	if f.Limit != nil {
		c.Limit = *f.Limit
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(ErrInvalidLevel, "%q", c.LogLevel)
	}
	switch c.Format {
	case FormatText, FormatTree, FormatYAML:
	default:
		return errors.Wrapf(ErrInvalidFormat, "%q", c.Format)
	}
	if c.Limit < 0 {
		return errors.Wrapf(ErrNegativeLimit, "%d", c.Limit)
	}
	return nil
}

// Set overrides one setting by its YAML name, the way a flag does.
func (c *Config) Set(name, value string) error {
	switch name {
	case "log_level":
		c.LogLevel = value
	case "format":
		c.Format = value
	case "limit":
		if err := yaml.Unmarshal([]byte(value), &c.Limit); err != nil {
			return errors.Wrapf(ErrConfig, "limit %q: %v", value, err)
		}
	default:
		return errors.Wrap(ErrUnknownSetting, name)
	}
	return c.Validate()
}

// Level is the parsed log level. Validate has already vetted it.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
