package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigMatchesEmbedded(t *testing.T) {
	embedded, err := parse(defaultSweeperYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}

	def := DefaultConfig()
	if embedded.DefaultPreset != def.DefaultPreset ||
		embedded.TickRate != def.TickRate ||
		embedded.LogLevel != def.LogLevel ||
		embedded.SSH != def.SSH ||
		embedded.Web.Address != def.Web.Address ||
		embedded.Web.ReadLimit != def.Web.ReadLimit ||
		embedded.Web.MaxSize != def.Web.MaxSize {
		t.Errorf("embedded defaults %+v differ from DefaultConfig %+v", embedded, def)
	}
	if err := def.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := `default_preset: large
tick_rate: 60
ssh:
  idle_timeout: 5m
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s): %v", path, err)
	}
	if cfg.DefaultPreset != "large" {
		t.Errorf("DefaultPreset = %q, want large", cfg.DefaultPreset)
	}
	if cfg.TickRate != 60 {
		t.Errorf("TickRate = %d, want 60", cfg.TickRate)
	}
	if cfg.SSH.IdleTimeout != 5*time.Minute {
		t.Errorf("SSH.IdleTimeout = %s, want 5m", cfg.SSH.IdleTimeout)
	}
	// Fields missing from the file keep their defaults.
	if cfg.SSH.Address != ":23234" || cfg.LogLevel != "info" {
		t.Errorf("defaults not kept: ssh.address=%q log_level=%q", cfg.SSH.Address, cfg.LogLevel)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("tick_rate: [nope"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.yaml")},
		{"invalid yaml", broken},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(tc.path); err == nil {
				t.Errorf("Load(%s) should fail", tc.path)
			}
		})
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultPreset != "small" || cfg.TickRate != 30 {
		t.Errorf("Load() = %+v, want embedded defaults", cfg)
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.Mkdir("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "sweeper.yaml"), []byte("default_preset: medium\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultPreset != "medium" {
		t.Errorf("DefaultPreset = %q, want medium", cfg.DefaultPreset)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SweeperConfig)
		wantErr string
	}{
		{"valid", func(*SweeperConfig) {}, ""},
		{"preset case-insensitive", func(c *SweeperConfig) { c.DefaultPreset = "MEDIUM" }, ""},
		{"unknown preset", func(c *SweeperConfig) { c.DefaultPreset = "huge" }, "default_preset"},
		{"zero tick rate", func(c *SweeperConfig) { c.TickRate = 0 }, "tick_rate"},
		{"bad log level", func(c *SweeperConfig) { c.LogLevel = "loud" }, "log_level"},
		{"negative idle timeout", func(c *SweeperConfig) { c.SSH.IdleTimeout = -time.Second }, "idle_timeout"},
		{"zero read limit", func(c *SweeperConfig) { c.Web.ReadLimit = 0 }, "read_limit"},
		{"zero max size", func(c *SweeperConfig) { c.Web.MaxSize = 0 }, "max_size"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, want error mentioning %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TickRate = -1
	cfg.DefaultPreset = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil")
	}
	msg := err.Error()
	if !strings.Contains(msg, "tick_rate") || !strings.Contains(msg, "default_preset") {
		t.Errorf("Validate() = %q, want both problems", msg)
	}
}
