// Package config loads the settings of the huff command.
//
// Settings are layered: built-in defaults, then an optional YAML file, then
// HUFF_* environment variables.  Command-line flags are applied last by the
// caller.
package config

import (
	"bytes"
	"io"
	"os"
	"strconv"

	"github.com/chronos-tachyon/huffman/v2"

	"github.com/imdario/mergo"
	"github.com/nuclio/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of the huff command.
type Config struct {
	Layout       string `yaml:"layout,omitempty"`
	MaxTreeDepth int    `yaml:"maxTreeDepth,omitempty"`
	Workers      int    `yaml:"workers,omitempty"`
	Verbose      bool   `yaml:"verbose,omitempty"`
}

// Default returns the built-in settings.
func Default() *Config {
	options := huffman.DefaultOptions()
	return &Config{
		Layout:       options.Layout.String(),
		MaxTreeDepth: options.MaxTreeDepth,
		Workers:      options.Workers,
	}
}

// Read parses YAML settings from reader and fills every unset field from
// Default.
func Read(reader io.Reader) (*Config, error) {
	contents, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to read configuration")
	}

	var config Config
	decoder := yaml.NewDecoder(bytes.NewReader(contents))
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "Failed to parse configuration")
	}

	if err := mergo.Merge(&config, *Default()); err != nil {
		return nil, errors.Wrap(err, "Failed to apply configuration defaults")
	}

	return &config, nil
}

// ReadFileOrDefault reads settings from the YAML file at path, or returns
// Default if path is empty.  Environment overrides are applied either way.
func ReadFileOrDefault(path string) (*Config, error) {
	config := Default()

	if path != "" {
		configFile, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "Failed to open configuration file %s", path)
		}

		// close after
		defer configFile.Close() // nolint: errcheck

		if config, err = Read(configFile); err != nil {
			return nil, errors.Wrapf(err, "Failed to read configuration file %s", path)
		}
	}

	if err := config.applyEnv(); err != nil {
		return nil, errors.Wrap(err, "Failed to apply environment overrides")
	}

	return config, nil
}

// Options converts the settings into codec options.
func (c *Config) Options() (huffman.Options, error) {
	layout, err := huffman.ParseLayout(c.Layout)
	if err != nil {
		return huffman.Options{}, errors.Wrap(err, "Invalid layout")
	}

	options := huffman.Options{
		Layout:       layout,
		MaxTreeDepth: c.MaxTreeDepth,
		Workers:      c.Workers,
	}

	if err := options.Validate(); err != nil {
		return huffman.Options{}, errors.Wrap(err, "Invalid configuration")
	}

	return options, nil
}

func (c *Config) applyEnv() error {
	c.Layout = getEnvOrDefaultString("HUFF_LAYOUT", c.Layout)

	var err error
	if c.MaxTreeDepth, err = getEnvOrDefaultInt("HUFF_MAX_TREE_DEPTH", c.MaxTreeDepth); err != nil {
		return err
	}
	if c.Workers, err = getEnvOrDefaultInt("HUFF_WORKERS", c.Workers); err != nil {
		return err
	}
	return nil
}

func getEnvOrDefaultString(key string, defaultValue string) string {
	if value, found := os.LookupEnv(key); found && value != "" {
		return value
	}
	return defaultValue
}

func getEnvOrDefaultInt(key string, defaultValue int) (int, error) {
	value := getEnvOrDefaultString(key, "")
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(err, "Failed to parse %s=%q as an integer", key, value)
	}
	return parsed, nil
}
