package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/sweeper.yaml
var defaultSweeperYAML []byte

// DefaultConfig returns the built-in configuration. It matches the
// embedded defaults/sweeper.yaml and is the last fallback of Load.
func DefaultConfig() SweeperConfig {
	return SweeperConfig{
		DefaultPreset: "small",
		TickRate:      30,
		LogLevel:      "info",
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
		Web: WebConfig{
			Address:        ":8080",
			AllowedOrigins: []string{"*"},
			ReadLimit:      4096,
			MaxSize:        24,
		},
	}
}
