package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "sweeper.yaml"

// Load reads the configuration.
// Search order: customPath -> ~/.sweeper/config.yaml -> ./configs/sweeper.yaml
// -> embedded default -> DefaultConfig.
//
// Values missing from the file keep their defaults. Only a customPath that
// cannot be read or parsed is an error; the other locations are skipped
// when absent or broken.
func Load(customPath string) (SweeperConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SweeperConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return SweeperConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if path := userConfigPath(); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parse(defaultSweeperYAML); err == nil {
		return cfg, nil
	}
	return DefaultConfig(), nil
}

// parse decodes YAML over DefaultConfig.
func parse(data []byte) (SweeperConfig, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SweeperConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns ~/.sweeper/config.yaml, or empty if home is
// unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sweeper", "config.yaml")
}
