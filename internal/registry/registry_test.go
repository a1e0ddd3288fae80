package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/match3/internal/core"
)

type stubGame struct {
	id    string
	desc  string
	state core.GameState
}

func (g *stubGame) ID() string               { return g.id }
func (g *stubGame) Title() string            { return strings.ToUpper(g.id) }
func (g *stubGame) Reset(core.RuntimeConfig) { g.state = core.GameState{} }
func (g *stubGame) Render(*core.Screen)      {}
func (g *stubGame) State() core.GameState    { return g.state }
func (g *stubGame) Description() string      { return g.desc }

func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.state.Score++
	return core.StepResult{State: g.state}
}

func TestRegisterListCreate(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub", desc: "a stub"} })
	Register("aa_stub", func() Game { return &stubGame{id: "aa_stub"} })

	if !Exists("zz_stub") || Exists("missing") {
		t.Fatal("Exists reports wrong registrations")
	}

	var ids []string
	for _, info := range List() {
		if strings.HasSuffix(info.ID, "_stub") {
			ids = append(ids, info.ID)
			if info.ID == "zz_stub" && (info.Title != "ZZ_STUB" || info.Description != "a stub") {
				t.Errorf("info = %+v", info)
			}
		}
	}
	if strings.Join(ids, ",") != "aa_stub,zz_stub" {
		t.Errorf("List order = %v, expected sorted by ID", ids)
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	g.Step(core.NewInputFrame())
	if g.State().Score != 1 {
		t.Error("Create should return a working game")
	}

	other, _ := Create("zz_stub")
	if other.State().Score != 0 {
		t.Error("Create should return a fresh instance each time")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create of unknown game should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup_stub", func() Game { return &stubGame{id: "dup_stub"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup_stub", func() Game { return &stubGame{id: "dup_stub"} })
}
