package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H - move left
	ActionRight          // Right arrow, D, L - move right
	ActionUp             // Up arrow, W, K - move up
	ActionDown           // Down arrow, S, J - move down
	ActionConfirm        // Enter, Space - press the play button
	ActionQuit           // Q, Esc, Ctrl+C - close the game
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Opposite returns the direction opposite to a movement action, or ActionNone.
func (a Action) Opposite() Action {
	switch a {
	case ActionLeft:
		return ActionRight
	case ActionRight:
		return ActionLeft
	case ActionUp:
		return ActionDown
	case ActionDown:
		return ActionUp
	default:
		return ActionNone
	}
}

// InputFrame represents the input state during one simulation tick.
type InputFrame struct {
	// Actions holds the actions that are held down this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Presses are pointer presses in field coordinates, in arrival order.
	Presses []Vec2
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Press records a pointer press at field coordinates (x, y).
func (f *InputFrame) Press(x, y float64) {
	f.Presses = append(f.Presses, Vec2{X: x, Y: y})
}

// Clear resets all actions and presses for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Presses = f.Presses[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Presses = append(clone.Presses, f.Presses...)
	return clone
}

// HoldTracker turns discrete key-press events into held actions.
// Terminals report key presses (and auto-repeat) but never key releases, so a
// press keeps its action held for a fixed window; each repeat extends it.
type HoldTracker struct {
	hold     time.Duration
	deadline map[Action]time.Time
}

// NewHoldTracker creates a tracker that holds each pressed action for hold.
func NewHoldTracker(hold time.Duration) *HoldTracker {
	return &HoldTracker{
		hold:     hold,
		deadline: make(map[Action]time.Time),
	}
}

// Press marks a as held until now+hold. Pressing a direction releases its
// opposite immediately so turning around does not stall the avatar.
func (h *HoldTracker) Press(a Action, now time.Time) {
	if a == ActionNone {
		return
	}
	if opp := a.Opposite(); opp != ActionNone {
		delete(h.deadline, opp)
	}
	h.deadline[a] = now.Add(h.hold)
}

// Apply sets every action still held at now on the frame and forgets
// actions whose window has elapsed.
func (h *HoldTracker) Apply(frame *InputFrame, now time.Time) {
	for a, until := range h.deadline {
		if !now.Before(until) {
			delete(h.deadline, a)
			continue
		}
		frame.Set(a)
	}
}

// Reset releases every held action.
func (h *HoldTracker) Reset() {
	for a := range h.deadline {
		delete(h.deadline, a)
	}
}
