package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/minigames/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }
func (g *stubGame) HighScoreKey() string { return g.id + "High" }

func TestRegisterCreateList(t *testing.T) {
	Register("zz-stub", CategoryToy, func() Game { return &stubGame{id: "zz-stub"} })
	Register("aa-stub", CategoryPuzzle, func() Game { return &stubGame{id: "aa-stub"} })

	if !Exists("zz-stub") {
		t.Fatal("registered game should exist")
	}
	g, err := Create("aa-stub")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if HighScoreKey(g) != "aa-stubHigh" {
		t.Errorf("HighScoreKey = %q", HighScoreKey(g))
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List not sorted: %v", list)
		}
	}

	info, ok := Info("zz-stub")
	if !ok || info.Category != CategoryToy || info.Title != "Stub zz-stub" {
		t.Errorf("Info = %+v, %v", info, ok)
	}
	if len(ByCategory()[CategoryPuzzle]) == 0 {
		t.Error("ByCategory should group the puzzle stub")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does-not-exist")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("err = %v, expected ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", CategoryToy, func() Game { return &stubGame{id: "dup-stub"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup-stub", CategoryToy, func() Game { return &stubGame{id: "dup-stub"} })
}
