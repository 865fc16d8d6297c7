package config

import (
	"fmt"
	"strings"
)

// Preset is a named board size.
type Preset struct {
	Name  string `json:"name"`
	Size  int    `json:"size"`
	Mines int    `json:"mines"`
}

var presets = []Preset{
	{Name: "small", Size: 9, Mines: 10},
	{Name: "medium", Size: 16, Mines: 40},
	{Name: "large", Size: 24, Mines: 150},
}

// Presets returns the preset table, smallest first.
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// LookupPreset finds a preset by case-insensitive name.
func LookupPreset(name string) (Preset, bool) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// Title returns the display name, e.g. "Medium (16x16, 40 mines)".
func (p Preset) Title() string {
	name := p.Name
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	return fmt.Sprintf("%s (%dx%d, %d mines)", name, p.Size, p.Size, p.Mines)
}
