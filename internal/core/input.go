package core

// InputSnapshot is an immutable record of the logical buttons held during one
// tick, merged from all attached input sources. Two system buttons select the
// player count on arcade cabinets; the rest are per-player controls.
type InputSnapshot struct {
	SystemOnePlayer bool
	SystemTwoPlayer bool

	P1Left  bool
	P1Right bool
	P1Up    bool
	P1Down  bool
	P1A     bool

	P2Left  bool
	P2Right bool
	P2A     bool
}

// Merge returns the logical OR of two snapshots, button by button.
// A button held on either source counts as held.
func (s InputSnapshot) Merge(o InputSnapshot) InputSnapshot {
	return InputSnapshot{
		SystemOnePlayer: s.SystemOnePlayer || o.SystemOnePlayer,
		SystemTwoPlayer: s.SystemTwoPlayer || o.SystemTwoPlayer,
		P1Left:          s.P1Left || o.P1Left,
		P1Right:         s.P1Right || o.P1Right,
		P1Up:            s.P1Up || o.P1Up,
		P1Down:          s.P1Down || o.P1Down,
		P1A:             s.P1A || o.P1A,
		P2Left:          s.P2Left || o.P2Left,
		P2Right:         s.P2Right || o.P2Right,
		P2A:             s.P2A || o.P2A,
	}
}

// Confirm reports whether either player's action button is held.
func (s InputSnapshot) Confirm() bool {
	return s.P1A || s.P2A
}

// Source produces a snapshot of currently-held buttons. Keyboard and hardware
// controllers are capability-equivalent providers of this; the platform
// attaches zero or more of them to the tick driver.
type Source interface {
	Snapshot() InputSnapshot
}

// Combine merges the snapshots of all attached sources. Nil sources are
// allowed and contribute nothing, so an absent controller is simply a nil
// slot rather than a special case.
func Combine(sources ...Source) InputSnapshot {
	var merged InputSnapshot
	for _, src := range sources {
		if src == nil {
			continue
		}
		merged = merged.Merge(src.Snapshot())
	}
	return merged
}
