// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package config loads the pulsesim command configuration.
//
// Values are resolved in this order: defaults, YAML file, PULSESIM_*
// environment variables. Command line flags are applied last by the caller.
//
package config

import (
	"os"
	"strconv"

	"github.com/db47h/pulsesim"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the full command configuration.
//
type Config struct {
	// Input is the path of the network description.
	Input string `yaml:"input"`
	// Entry is the node receiving button presses.
	Entry string `yaml:"entry"`
	// Presses is the number of presses of the count command.
	Presses int `yaml:"presses"`

	Watch   WatchConfig   `yaml:"watch"`
	Search  SearchConfig  `yaml:"search"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// WatchConfig is the condition awaited by the search command.
//
type WatchConfig struct {
	Receiver string         `yaml:"receiver"`
	Level    pulsesim.Level `yaml:"level"`
}

// SearchConfig tunes the search command.
//
type SearchConfig struct {
	// Periodic selects the LCM shortcut instead of pressing until the
	// watched pulse shows up.
	Periodic bool `yaml:"periodic"`
	// Verify checks the periodicity assumption of the shortcut.
	Verify bool `yaml:"verify"`
	// Limit caps the number of presses. 0 means no limit.
	Limit uint64 `yaml:"limit"`
	// Progress is the number of presses between progress log entries.
	Progress uint64 `yaml:"progress"`
}

// LogConfig configures logging.
//
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn or error
	Format string `yaml:"format"` // text or json
}

// MetricsConfig configures the Prometheus endpoint.
//
type MetricsConfig struct {
	// Addr is the listen address of the /metrics endpoint. Empty disables it.
	Addr string `yaml:"addr"`
}

// Default returns the default configuration.
//
func Default() *Config {
	return &Config{
		Entry:   "broadcaster",
		Presses: 1000,
		Watch: WatchConfig{
			Receiver: "rx",
			Level:    pulsesim.Low,
		},
		Search: SearchConfig{
			Progress: 1000000,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load returns the default configuration overridden by the YAML file at
// path, if path is not empty, then by environment variables.
//
func Load(path string) (*Config, error) {
	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read config file")
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, errors.Wrapf(err, "parse config file %s", path)
		}
	}
	if err := c.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := map[string]*string{
		"PULSESIM_INPUT":          &c.Input,
		"PULSESIM_ENTRY":          &c.Entry,
		"PULSESIM_WATCH_RECEIVER": &c.Watch.Receiver,
		"PULSESIM_LOG_LEVEL":      &c.Log.Level,
		"PULSESIM_LOG_FORMAT":     &c.Log.Format,
		"PULSESIM_METRICS_ADDR":   &c.Metrics.Addr,
	}
	for k, p := range str {
		if v, ok := lookup(k); ok && v != "" {
			*p = v
		}
	}
	if v, ok := lookup("PULSESIM_PRESSES"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, "PULSESIM_PRESSES")
		}
		c.Presses = n
	}
	if v, ok := lookup("PULSESIM_WATCH_LEVEL"); ok && v != "" {
		l, err := pulsesim.ParseLevel(v)
		if err != nil {
			return errors.Wrap(err, "PULSESIM_WATCH_LEVEL")
		}
		c.Watch.Level = l
	}
	if v, ok := lookup("PULSESIM_SEARCH_PERIODIC"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrap(err, "PULSESIM_SEARCH_PERIODIC")
		}
		c.Search.Periodic = b
	}
	if v, ok := lookup("PULSESIM_SEARCH_LIMIT"); ok && v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return errors.Wrap(err, "PULSESIM_SEARCH_LIMIT")
		}
		c.Search.Limit = n
	}
	return nil
}

// Validate checks that the configuration is usable.
//
func (c *Config) Validate() error {
	if c.Entry == "" {
		return errors.New("entry node name must not be empty")
	}
	if c.Presses < 0 {
		return errors.Errorf("presses must be non-negative, got %d", c.Presses)
	}
	if c.Watch.Receiver == "" {
		return errors.New("watch receiver must not be empty")
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return errors.Errorf("invalid log level %q (valid: debug, info, warn, error)", c.Log.Level)
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return errors.Errorf("invalid log format %q (valid: text, json)", c.Log.Format)
	}
	return nil
}
