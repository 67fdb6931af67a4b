package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/ticking/internal/games/sidescroller"
	"github.com/vovakirdan/ticking/internal/registry"
)

func TestPrintGames(t *testing.T) {
	one := []registry.Entry{{ID: "ticking", Title: "The Clock Is Ticking", Summary: "Walk right."}}
	two := []registry.Entry{{ID: "a", Title: "Alpha"}, {ID: "b", Title: "Beta"}}

	tests := []struct {
		name  string
		games []registry.Entry
		want  []string
		avoid []string
	}{
		{"none", nil, []string{"No games available."}, []string{"play"}},
		{"single", one, []string{"The Clock Is Ticking (ticking)", "Walk right.", "ticking play"}, []string{"ID  "}},
		{"several", two, []string{"ID", "Alpha", "Beta"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			printGames(&out, tt.games)
			for _, s := range tt.want {
				if !strings.Contains(out.String(), s) {
					t.Errorf("output missing %q:\n%s", s, out.String())
				}
			}
			for _, s := range tt.avoid {
				if strings.Contains(out.String(), s) {
					t.Errorf("output should not contain %q:\n%s", s, out.String())
				}
			}
		})
	}
}

func TestRegisteredGameListed(t *testing.T) {
	e, ok := registry.Lookup(sidescroller.ID)
	if !ok {
		t.Fatalf("expected %q registered", sidescroller.ID)
	}
	if e.Summary == "" {
		t.Error("expected a summary for ticking list")
	}
}
