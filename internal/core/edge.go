package core

// EdgeSet marks the discrete actions that fired this tick: a button counts as
// an edge only on the tick it transitions from released to held. Movement
// stays level-based and never goes through here.
type EdgeSet struct {
	SystemOnePlayer bool
	SystemTwoPlayer bool
	Confirm         bool
	Up              bool
	Down            bool
	Left            bool
	Right           bool
}

// DetectEdges diffs two consecutive snapshots into an EdgeSet. The detector
// is stateless; the caller owns the previous snapshot across ticks, one slot
// per consuming context, since different phases observe the same raw buttons.
func DetectEdges(prev, cur InputSnapshot) EdgeSet {
	return EdgeSet{
		SystemOnePlayer: cur.SystemOnePlayer && !prev.SystemOnePlayer,
		SystemTwoPlayer: cur.SystemTwoPlayer && !prev.SystemTwoPlayer,
		Confirm:         cur.Confirm() && !prev.Confirm(),
		Up:              cur.P1Up && !prev.P1Up,
		Down:            cur.P1Down && !prev.P1Down,
		Left:            (cur.P1Left || cur.P2Left) && !(prev.P1Left || prev.P2Left),
		Right:           (cur.P1Right || cur.P2Right) && !(prev.P1Right || prev.P2Right),
	}
}
