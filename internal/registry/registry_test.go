package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/ticking/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                                  { return g.id }
func (stubGame) Title() string                                 { return "Stub" }
func (stubGame) Reset(core.RuntimeConfig)                      {}
func (stubGame) Step(core.InputFrame, float64) core.StepResult { return core.StepResult{} }
func (stubGame) Render(*core.Screen)                           {}
func (stubGame) State() core.GameState                         { return core.GameState{} }

func stubEntry(id string) Entry {
	return Entry{ID: id, Title: "Stub", Summary: "a stub", New: func() Game { return stubGame{id: id} }}
}

func TestRegisterAndCreate(t *testing.T) {
	Register(stubEntry("stub"))

	if !Exists("stub") {
		t.Fatal("expected stub to be registered")
	}

	g, err := Create("stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub" {
		t.Errorf("expected ID stub, got %q", g.ID())
	}

	e, ok := Lookup("stub")
	if !ok || e.Title != "Stub" || e.Summary != "a stub" {
		t.Errorf("Lookup(stub) = %+v, %v", e, ok)
	}
}

func TestEntriesSorted(t *testing.T) {
	Register(stubEntry("zz-sorted"))
	Register(stubEntry("aa-sorted"))

	list := Entries()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID >= list[i].ID {
			t.Fatalf("entries not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("missing")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("expected ErrUnknownGame, got %v", err)
	}
}

func TestCreateRejectsMismatchedID(t *testing.T) {
	Register(Entry{ID: "liar", New: func() Game { return stubGame{id: "other"} }})

	if _, err := Create("liar"); err == nil {
		t.Error("expected error when the game reports another ID")
	}
}

func TestRegisterPanics(t *testing.T) {
	Register(stubEntry("dup"))

	tests := []struct {
		name  string
		entry Entry
	}{
		{"duplicate", stubEntry("dup")},
		{"empty id", Entry{New: func() Game { return stubGame{} }}},
		{"nil factory", Entry{ID: "nofactory"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			Register(tt.entry)
		})
	}
}
