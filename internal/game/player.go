package game

import "github.com/akovalev/fridayfall/internal/core"

// PlayerSlot is one player's live state during a round. Slot is the original
// player index (0 for P1, 1 for P2) and stays stable even as eliminated
// players are removed from the roster, so input dispatch must look players up
// by Slot, never by array position.
type PlayerSlot struct {
	Slot   int
	X, Y   float64
	Score  int
	Health int
}

// Alive reports whether the player is still in the round.
func (p *PlayerSlot) Alive() bool {
	return p.Health > 0
}

// Rect returns the player's collision box.
func (p *PlayerSlot) Rect(w, h float64) core.Rect {
	return core.NewRect(p.X, p.Y, w, h)
}

// newPlayerSlot places slot index among total players, centered in its share
// of the field width and resting above the bottom margin.
func newPlayerSlot(index, total int, cfg roundTuning) *PlayerSlot {
	spacing := cfg.fieldW / float64(total+1)
	center := spacing * float64(index+1)
	return &PlayerSlot{
		Slot:   index,
		X:      center - cfg.playerW/2,
		Y:      cfg.fieldH - cfg.playerH - cfg.bottomMargin,
		Score:  0,
		Health: cfg.health,
	}
}
