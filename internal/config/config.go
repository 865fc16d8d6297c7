// Package config loads the YAML configuration of the sweeper binary and
// holds the board presets.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// SweeperConfig is the top-level configuration file.
type SweeperConfig struct {
	DefaultPreset string    `yaml:"default_preset"`
	TickRate      int       `yaml:"tick_rate"`
	LogLevel      string    `yaml:"log_level"`
	SSH           SSHConfig `yaml:"ssh"`
	Web           WebConfig `yaml:"web"`
}

// SSHConfig configures the SSH front door.
type SSHConfig struct {
	Address string `yaml:"address"`

	// HostKeyPath is generated on first start when missing. Empty means
	// ~/.sweeper/host_key.
	HostKeyPath string `yaml:"host_key_path"`

	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// WebConfig configures the websocket server.
type WebConfig struct {
	Address        string   `yaml:"address"`
	AllowedOrigins []string `yaml:"allowed_origins"`

	// ReadLimit caps the size of a single client message in bytes.
	ReadLimit int64 `yaml:"read_limit"`

	// MaxSize caps the side length of custom boards requested by clients.
	// Presets are always allowed.
	MaxSize int `yaml:"max_size"`
}

// Validate reports every problem found in the configuration.
func (c SweeperConfig) Validate() error {
	var errs []error

	if _, ok := LookupPreset(c.DefaultPreset); !ok {
		errs = append(errs, fmt.Errorf("default_preset: unknown preset %q", c.DefaultPreset))
	}
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate: must be positive, got %d", c.TickRate))
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level: %w", err))
	}
	if c.SSH.IdleTimeout < 0 {
		errs = append(errs, fmt.Errorf("ssh.idle_timeout: must not be negative, got %s", c.SSH.IdleTimeout))
	}
	if c.Web.ReadLimit <= 0 {
		errs = append(errs, fmt.Errorf("web.read_limit: must be positive, got %d", c.Web.ReadLimit))
	}
	if c.Web.MaxSize <= 0 {
		errs = append(errs, fmt.Errorf("web.max_size: must be positive, got %d", c.Web.MaxSize))
	}

	return errors.Join(errs...)
}
