package registry

import (
	"testing"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

type stubGame struct {
	id, title string
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }
func (g *stubGame) Description() string { return "stub " + g.id }

func TestRegisterListCreate(t *testing.T) {
	Register("stub_b", func() Game { return &stubGame{id: "stub_b", title: "B"} })
	Register("stub_a", func() Game { return &stubGame{id: "stub_a", title: "A"} })

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "stub_a" && info.Description != "stub stub_a" {
			t.Errorf("Description = %q, want %q", info.Description, "stub stub_a")
		}
	}
	posA, posB := -1, -1
	for i, id := range ids {
		switch id {
		case "stub_a":
			posA = i
		case "stub_b":
			posB = i
		}
	}
	if posA < 0 || posB < 0 || posB > posA {
		t.Errorf("List() order = %v, want stub_b before stub_a", ids)
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Title() != "A" {
		t.Errorf("Title() = %q, want A", g.Title())
	}
	if !Exists("stub_b") || Exists("missing") {
		t.Error("Exists reported the wrong result")
	}
	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
}
