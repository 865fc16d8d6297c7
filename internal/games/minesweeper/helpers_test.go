package minesweeper

import (
	"testing"

	"github.com/vovakirdan/tui-sweeper/internal/config"
)

func mustPreset(t *testing.T, name string) config.Preset {
	t.Helper()
	p, ok := config.LookupPreset(name)
	if !ok {
		t.Fatalf("preset %q not found", name)
	}
	return p
}
