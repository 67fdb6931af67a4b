package core

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone         Action = iota
	ActionLeft                // A, Left arrow - start moving left
	ActionRight               // D, Right arrow - start moving right
	ActionReleaseLeft         // left key released (synthesized by the platform)
	ActionReleaseRight        // right key released (synthesized by the platform)
	ActionJump                // W, Up, Space
	ActionDown                // S, Down - fast drop
	ActionInteract            // E - interact with / leave an object
	ActionPause               // Esc, P - pause/unpause
	ActionConfirm             // Enter - start game, resume from pause
	ActionBack                // B - back out after the session ended
	ActionRestart             // R - restart after the session ended
	ActionQuit                // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionReleaseLeft:
		return "ReleaseLeft"
	case ActionReleaseRight:
		return "ReleaseRight"
	case ActionJump:
		return "Jump"
	case ActionDown:
		return "Down"
	case ActionInteract:
		return "Interact"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds every action triggered since the previous tick.
// Key handlers only set actions; the next tick consumes them.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// NewInputFrameOf creates a frame with the given actions set.
func NewInputFrameOf(actions ...Action) InputFrame {
	f := NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action is set.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
