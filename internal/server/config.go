package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/iwvelando/price-projection/internal/config"
	"github.com/iwvelando/price-projection/pkg/constants"
	"gopkg.in/yaml.v3"
)

const (
	defaultReadTimeout     = 5 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address         string               `yaml:"address"`
	ReadTimeout     string               `yaml:"readTimeout"`
	WriteTimeout    string               `yaml:"writeTimeout"`
	ShutdownTimeout string               `yaml:"shutdownTimeout"`
	Logging         config.LoggingConfig `yaml:"logging"`

	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration
}

// LoadConfig loads the server configuration from YAML. If the file does not exist,
// defaults are returned without error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read server config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse server config: %w", err)
			}
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadTimeoutDuration returns the parsed read timeout.
func (c *Config) ReadTimeoutDuration() time.Duration {
	return c.readTimeout
}

// WriteTimeoutDuration returns the parsed write timeout.
func (c *Config) WriteTimeoutDuration() time.Duration {
	return c.writeTimeout
}

// ShutdownTimeoutDuration returns the parsed graceful shutdown timeout.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	return c.shutdownTimeout
}

func (c *Config) normalize() error {
	if strings.TrimSpace(c.Address) == "" {
		c.Address = constants.DefaultServerAddress
	}

	var err error
	if c.readTimeout, err = parseTimeout("readTimeout", c.ReadTimeout, defaultReadTimeout); err != nil {
		return err
	}
	if c.writeTimeout, err = parseTimeout("writeTimeout", c.WriteTimeout, defaultWriteTimeout); err != nil {
		return err
	}
	if c.shutdownTimeout, err = parseTimeout("shutdownTimeout", c.ShutdownTimeout, defaultShutdownTimeout); err != nil {
		return err
	}
	return nil
}

func parseTimeout(name, value string, fallback time.Duration) (time.Duration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(trimmed)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, value, err)
	}
	if d <= 0 {
		return fallback, nil
	}
	return d, nil
}
