package core

// Action is a player intent, decoupled from the key that produced it.
type Action int

const (
	ActionNone     Action = iota
	ActionLeft            // A, Left arrow - shift piece left
	ActionRight           // D, Right arrow - shift piece right
	ActionDown            // S, Down arrow - soft drop one row
	ActionRotate          // W, Up arrow, X - rotate clockwise
	ActionHardDrop        // Space - drop to the ghost and lock
	ActionHold            // C - swap with the hold slot
	ActionConfirm         // Enter - start from the title screen
	ActionBack            // B - back to the menu when paused or over
	ActionRestart         // R - restart after game over
	ActionQuit            // Q, Ctrl+C - exit game/session
	ActionPause           // P, Escape - pause/unpause game
)

var actionNames = [...]string{
	ActionNone:     "None",
	ActionLeft:     "Left",
	ActionRight:    "Right",
	ActionDown:     "Down",
	ActionRotate:   "Rotate",
	ActionHardDrop: "HardDrop",
	ActionHold:     "Hold",
	ActionConfirm:  "Confirm",
	ActionBack:     "Back",
	ActionRestart:  "Restart",
	ActionQuit:     "Quit",
	ActionPause:    "Pause",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions pressed since the previous tick.
// Every action is edge-triggered: the platform clears the frame after each
// Step, so a held key shows up again only through key repeat.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set records an action. A zero frame allocates on first use.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action was pressed this frame.
func (f InputFrame) Empty() bool {
	for _, v := range f.Actions {
		if v {
			return false
		}
	}
	return true
}

// Clear drops every action, keeping the allocated map.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone returns an independent copy.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.Actions {
		c.Actions[k] = v
	}
	return c
}
