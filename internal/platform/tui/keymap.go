package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akovalev/fridayfall/internal/core"
)

// logical button indices inside KeyboardSource's hold table
type button int

const (
	btnSys1 button = iota
	btnSys2
	btnP1Left
	btnP1Right
	btnP1Up
	btnP1Down
	btnP1A
	btnP2Left
	btnP2Right
	btnP2A
	buttonCount
)

// DefaultHoldTicks is how many ticks a key press counts as held. Terminals
// deliver key-down events but no key-up, so a press opens a short hold
// window that OS key repeat keeps refreshing while the key stays down.
// The window must outlast the repeat gap at 60 ticks/s or held movement
// stutters between repeats.
const DefaultHoldTicks = 6

// KeyboardSource adapts terminal key events to the held-button snapshot
// model. It implements core.Source, making the keyboard interchangeable
// with any other input provider attached to the tick driver.
type KeyboardSource struct {
	holdTicks int
	remaining [buttonCount]int
}

// NewKeyboardSource creates a keyboard source. holdTicks <= 0 uses the default.
func NewKeyboardSource(holdTicks int) *KeyboardSource {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &KeyboardSource{holdTicks: holdTicks}
}

// HandleKey refreshes the hold window for the buttons bound to the key.
// Returns true when the key is a quit request.
func (k *KeyboardSource) HandleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "ctrl+c", "q":
		return true

	case "1":
		k.press(btnSys1)
	case "2":
		k.press(btnSys2)

	case "left":
		k.press(btnP1Left)
	case "right":
		k.press(btnP1Right)
	case "up":
		k.press(btnP1Up)
	case "down":
		k.press(btnP1Down)
	case "enter", " ":
		k.press(btnP1A)

	// WASD-side bindings drive the second player on a shared keyboard
	case "a":
		k.press(btnP2Left)
	case "d":
		k.press(btnP2Right)
	case "s":
		k.press(btnP2A)
	}
	return false
}

func (k *KeyboardSource) press(b button) {
	k.remaining[b] = k.holdTicks
}

// Tick decays every hold window by one simulation tick.
func (k *KeyboardSource) Tick() {
	for b := range k.remaining {
		if k.remaining[b] > 0 {
			k.remaining[b]--
		}
	}
}

func (k *KeyboardSource) held(b button) bool {
	return k.remaining[b] > 0
}

// Snapshot implements core.Source.
func (k *KeyboardSource) Snapshot() core.InputSnapshot {
	return core.InputSnapshot{
		SystemOnePlayer: k.held(btnSys1),
		SystemTwoPlayer: k.held(btnSys2),
		P1Left:          k.held(btnP1Left),
		P1Right:         k.held(btnP1Right),
		P1Up:            k.held(btnP1Up),
		P1Down:          k.held(btnP1Down),
		P1A:             k.held(btnP1A),
		P2Left:          k.held(btnP2Left),
		P2Right:         k.held(btnP2Right),
		P2A:             k.held(btnP2A),
	}
}
