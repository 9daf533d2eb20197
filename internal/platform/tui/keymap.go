package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/goomba-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action. isQuit reports a quit
// request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case " ", "w", "up":
		return core.ActionJump, false
	case "s", "down":
		return core.ActionDown, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// IsHeld reports whether an action describes a held key rather than a
// one-shot command.
func IsHeld(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionJump, core.ActionDown:
		return true
	}
	return false
}

// tapTicks is how long a jump press stays down. It is short so that two
// quick taps read as two presses to the jump latch.
const tapTicks = 3

// HoldTracker emulates key releases. Terminals only report presses and
// auto-repeat, so a movement key counts as held for a number of ticks after
// its last report.
type HoldTracker struct {
	ticks     int
	remaining map[core.Action]int
}

// NewHoldTracker creates a tracker holding keys for ticks ticks per report.
func NewHoldTracker(ticks int) *HoldTracker {
	return &HoldTracker{
		ticks:     max(ticks, 1),
		remaining: make(map[core.Action]int),
	}
}

// Press records a report of a held action. Pressing one direction
// releases the opposite one.
func (h *HoldTracker) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h.remaining, core.ActionRight)
	case core.ActionRight:
		delete(h.remaining, core.ActionLeft)
	}
	n := h.ticks
	if a == core.ActionJump {
		n = min(n, tapTicks)
	}
	h.remaining[a] = n
}

// Apply marks every held action in frame and ages the holds by one tick.
func (h *HoldTracker) Apply(frame *core.InputFrame) {
	for a, n := range h.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
}

// Held reports whether a is currently held.
func (h *HoldTracker) Held(a core.Action) bool {
	return h.remaining[a] > 0
}

// Release drops every hold.
func (h *HoldTracker) Release() {
	clear(h.remaining)
}
