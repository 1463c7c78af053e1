// Package config loads settings for the gopoly tool server.
package config

import (
	"os"
	"time"

	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"
)

// Error is the class of configuration errors.
var Error = errs.Class("config")

type Config struct {
	Addr              string        `yaml:"addr"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	ReadTimeout       time.Duration `yaml:"read_timeout"`
	WriteTimeout      time.Duration `yaml:"write_timeout"`
	IdleTimeout       time.Duration `yaml:"idle_timeout"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes"`
	MetricsPrefix     string        `yaml:"metrics_prefix"`
	MetricsInterval   time.Duration `yaml:"metrics_interval"`
}

func Default() Config {
	return Config{
		Addr:              ":8080",
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxBodyBytes:      1 << 20, // 1 MiB
		MetricsPrefix:     "gopoly",
		MetricsInterval:   10 * time.Second,
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default value. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, Error.Wrap(err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, Error.Wrap(err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Addr == "" {
		return Error.New("addr is empty")
	}
	if c.MaxBodyBytes <= 0 {
		return Error.New("max_body_bytes must be positive, got %d", c.MaxBodyBytes)
	}
	for name, d := range map[string]time.Duration{
		"read_header_timeout": c.ReadHeaderTimeout,
		"read_timeout":        c.ReadTimeout,
		"write_timeout":       c.WriteTimeout,
		"idle_timeout":        c.IdleTimeout,
		"metrics_interval":    c.MetricsInterval,
	} {
		if d <= 0 {
			return Error.New("%s must be positive, got %s", name, d)
		}
	}
	return nil
}
