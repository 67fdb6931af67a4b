package sidescroller

import "fmt"

// InRange reports whether the object accepts an interaction from a player
// centered at x.
func (o InteractiveObject) InRange(x float64, grounded bool) bool {
	if x < o.Low || x >= o.High {
		return false
	}
	return grounded || o.Airborne
}

// Prompt returns the text shown while the object is active.
func (o InteractiveObject) Prompt() string {
	return fmt.Sprintf("Press E to interact with %s", o.Name)
}

// ActiveObject returns the index of the object the player can interact with,
// or -1. When several objects are in range the first one in definition order
// wins.
func ActiveObject(objects []InteractiveObject, p Player) int {
	for i, o := range objects {
		if o.InRange(p.X, p.Grounded) {
			return i
		}
	}
	return -1
}
