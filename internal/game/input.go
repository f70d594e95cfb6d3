package game

import (
	"time"

	"roomcrawl/internal/system"

	"github.com/gdamore/tcell/v2"
)

// Signal is one of the held gameplay inputs.
type Signal uint8

const (
	SignalUp Signal = iota
	SignalDown
	SignalLeft
	SignalRight
	SignalAttack
	numSignals
)

// Command is a one-shot menu input.
type Command uint8

const (
	CommandNone Command = iota
	CommandConfirm
	CommandPause
	CommandRestart
	CommandQuit
)

// keyToSignal maps a key to a gameplay signal. Arrows and WASD move; space
// and J attack.
func keyToSignal(ev *tcell.EventKey) (Signal, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return SignalUp, true
	case tcell.KeyDown:
		return SignalDown, true
	case tcell.KeyLeft:
		return SignalLeft, true
	case tcell.KeyRight:
		return SignalRight, true
	case tcell.KeyRune:
	default:
		return 0, false
	}

	switch ev.Rune() {
	case 'w', 'W':
		return SignalUp, true
	case 's', 'S':
		return SignalDown, true
	case 'a', 'A':
		return SignalLeft, true
	case 'd', 'D':
		return SignalRight, true
	case ' ', 'j', 'J':
		return SignalAttack, true
	}
	return 0, false
}

// keyToCommand maps a key to a flow command.
func keyToCommand(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEnter:
		return CommandConfirm
	case tcell.KeyEscape:
		return CommandPause
	case tcell.KeyCtrlC:
		return CommandQuit
	}
	switch ev.Rune() {
	case 'p', 'P':
		return CommandPause
	case 'r', 'R':
		return CommandRestart
	case 'q', 'Q':
		return CommandQuit
	}
	return CommandNone
}

// HoldTracker turns key presses into held signals. Terminals report presses
// and auto-repeats but never releases, so a signal counts as held for a short
// window after its last press.
type HoldTracker struct {
	hold time.Duration
	last [numSignals]time.Time
}

// NewHoldTracker returns a tracker with the given hold window.
func NewHoldTracker(hold time.Duration) *HoldTracker {
	return &HoldTracker{hold: hold}
}

// Press records a press of s at time at.
func (h *HoldTracker) Press(s Signal, at time.Time) {
	if s < numSignals {
		h.last[s] = at
	}
}

// Held reports whether s was pressed within the hold window before now.
func (h *HoldTracker) Held(s Signal, now time.Time) bool {
	t := h.last[s]
	return !t.IsZero() && now.Sub(t) < h.hold
}

// Input snapshots the held signals at now.
func (h *HoldTracker) Input(now time.Time) system.Input {
	return system.Input{
		Up:     h.Held(SignalUp, now),
		Down:   h.Held(SignalDown, now),
		Left:   h.Held(SignalLeft, now),
		Right:  h.Held(SignalRight, now),
		Attack: h.Held(SignalAttack, now),
	}
}

// Reset releases every signal.
func (h *HoldTracker) Reset() {
	h.last = [numSignals]time.Time{}
}
