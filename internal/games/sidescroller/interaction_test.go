package sidescroller

import (
	"testing"

	"github.com/vovakirdan/ticking/internal/core"
)

func testSign() InteractiveObject {
	return InteractiveObject{
		ID:   "sign",
		Kind: "sign",
		Name: "Sign",
		Box:  core.NewBox(1100, 91, 60, 70),
		Low:  900,
		High: 1300,
	}
}

func TestActiveObject(t *testing.T) {
	objects := []InteractiveObject{testSign()}

	tests := []struct {
		name     string
		x        float64
		grounded bool
		want     int
	}{
		{"left of range", 899, true, -1},
		{"range start inclusive", 900, true, 0},
		{"at the sign", 1100, true, 0},
		{"just inside end", 1299.5, true, 0},
		{"range end exclusive", 1300, true, -1},
		{"airborne in range", 1100, false, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Player{X: tt.x, Y: 128, W: 64, H: 144, Grounded: tt.grounded}
			if got := ActiveObject(objects, p); got != tt.want {
				t.Errorf("expected active %d, got %d", tt.want, got)
			}
		})
	}
}

func TestActiveObjectAirborneAllowed(t *testing.T) {
	sign := testSign()
	sign.Airborne = true

	p := Player{X: 1000, Y: 400, W: 64, H: 144}
	if got := ActiveObject([]InteractiveObject{sign}, p); got != 0 {
		t.Errorf("expected object active while airborne, got %d", got)
	}
}

func TestActiveObjectFirstWins(t *testing.T) {
	first := testSign()
	second := testSign()
	second.ID = "post"
	second.Name = "Post"

	p := Player{X: 1000, Y: 128, W: 64, H: 144, Grounded: true}
	objects := []InteractiveObject{first, second}
	if got := ActiveObject(objects, p); got != 0 {
		t.Errorf("expected first defined object to win, got %d", got)
	}
}

func TestPrompt(t *testing.T) {
	if got := testSign().Prompt(); got != "Press E to interact with Sign" {
		t.Errorf("unexpected prompt %q", got)
	}
}
