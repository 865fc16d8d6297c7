package web

import (
	"fmt"

	"github.com/vovakirdan/tui-sweeper/internal/config"
)

// connectParams is the query string of GET /ws. A preset wins over an
// explicit size; with neither the server default is used.
type connectParams struct {
	Preset string `schema:"preset"`
	Size   int    `schema:"size"`
	Mines  int    `schema:"mines"`
	Seed   uint64 `schema:"seed"`
}

// boardSpec is what a session needs to start a board. Sizes up to the
// server limit are passed on; the engine checks the rest.
type boardSpec struct {
	Preset string
	Size   int
	Mines  int
	Seed   uint64
}

func (p connectParams) board(defaultPreset string, maxSize int) (boardSpec, error) {
	return resolveBoard(p.Preset, p.Size, p.Mines, p.Seed, defaultPreset, maxSize)
}

// resolveBoard picks a preset or a custom board. Custom boards larger than
// maxSize are rejected so a client cannot make the server allocate an
// arbitrarily large grid.
func resolveBoard(preset string, size, mines int, seed uint64, defaultPreset string, maxSize int) (boardSpec, error) {
	if preset == "" && size == 0 {
		preset = defaultPreset
	}
	if preset == "" {
		if size > maxSize {
			return boardSpec{}, fmt.Errorf("board size %d exceeds the limit of %d", size, maxSize)
		}
		return boardSpec{Size: size, Mines: mines, Seed: seed}, nil
	}

	p, ok := config.LookupPreset(preset)
	if !ok {
		return boardSpec{}, fmt.Errorf("unknown preset %q", preset)
	}
	return boardSpec{Preset: p.Name, Size: p.Size, Mines: p.Mines, Seed: seed}, nil
}
