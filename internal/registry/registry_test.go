package registry

import (
	"testing"

	"github.com/vovakirdan/lab-arcade/internal/core"
)

type stubGame struct {
	id, code string
}

func (s *stubGame) ID() string                                    { return s.id }
func (s *stubGame) Title() string                                 { return "Stub " + s.id }
func (s *stubGame) UnlockCode() string                            { return s.code }
func (s *stubGame) Reset(core.RuntimeConfig, core.Host)           {}
func (s *stubGame) Step(float64, core.InputFrame) core.StepResult { return core.StepResult{} }
func (s *stubGame) Render(*core.Screen)                           {}
func (s *stubGame) State() core.GameState                         { return core.GameState{} }
func (s *stubGame) Exit()                                         {}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub_a", func() Game { return &stubGame{id: "zz_stub_a", code: "gattaca"} })

	if !Exists("zz_stub_a") {
		t.Fatal("registered game should exist")
	}
	g, err := Create("zz_stub_a")
	if err != nil || g.ID() != "zz_stub_a" {
		t.Fatalf("Create() = %v, %v", g, err)
	}
	if _, err := Create("zz_missing"); err == nil {
		t.Error("unknown game should fail")
	}

	if id := Secrets()["GATTACA"]; id != "zz_stub_a" {
		t.Errorf("Secrets()[GATTACA] = %q, expected the upper-cased code", id)
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub_a" {
			found = info.Title == "Stub zz_stub_a" && info.UnlockCode == "GATTACA"
		}
	}
	if !found {
		t.Errorf("List() missing or wrong entry: %+v", List())
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_stub_b", func() Game { return &stubGame{id: "zz_stub_b", code: "CODEB"} })

	tests := []struct {
		name string
		id   string
		code string
	}{
		{"same id", "zz_stub_b", "OTHER"},
		{"same code", "zz_stub_c", "codeb"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			Register(tc.id, func() Game { return &stubGame{id: tc.id, code: tc.code} })
		})
	}
}
