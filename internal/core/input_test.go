package core

import "testing"

type stubSource struct {
	snap InputSnapshot
}

func (s stubSource) Snapshot() InputSnapshot {
	return s.snap
}

func TestMergeIsOr(t *testing.T) {
	kb := InputSnapshot{P1Left: true, SystemOnePlayer: true}
	ctrl := InputSnapshot{P1Left: true, P2A: true}

	merged := kb.Merge(ctrl)

	if !merged.P1Left {
		t.Error("P1Left held on both sources should stay held")
	}
	if !merged.SystemOnePlayer {
		t.Error("SystemOnePlayer held on keyboard only should be held")
	}
	if !merged.P2A {
		t.Error("P2A held on controller only should be held")
	}
	if merged.P1Right || merged.P2Left || merged.P1A {
		t.Error("Buttons held on neither source should stay released")
	}
}

func TestCombineSkipsNilSources(t *testing.T) {
	kb := stubSource{snap: InputSnapshot{P1Right: true}}

	// Absent controller contributes all-false
	merged := Combine(kb, nil)

	if !merged.P1Right {
		t.Error("Keyboard input lost when controller is absent")
	}
	if merged != (InputSnapshot{P1Right: true}) {
		t.Errorf("Unexpected buttons set: %+v", merged)
	}
}

func TestConfirmEitherPlayer(t *testing.T) {
	if (InputSnapshot{}).Confirm() {
		t.Error("Confirm should be false with no buttons held")
	}
	if !(InputSnapshot{P1A: true}).Confirm() {
		t.Error("P1A should confirm")
	}
	if !(InputSnapshot{P2A: true}).Confirm() {
		t.Error("P2A should confirm")
	}
}

func TestDetectEdgesFiresOncePerPress(t *testing.T) {
	held := InputSnapshot{P1A: true, P1Down: true}

	// First tick of the press: edges fire
	edges := DetectEdges(InputSnapshot{}, held)
	if !edges.Confirm {
		t.Error("Confirm edge should fire on the press tick")
	}
	if !edges.Down {
		t.Error("Down edge should fire on the press tick")
	}

	// Holding across N further ticks produces no further edges
	for i := 0; i < 10; i++ {
		edges = DetectEdges(held, held)
		if edges.Confirm || edges.Down {
			t.Fatalf("Edge fired while button stayed held (tick %d)", i)
		}
	}

	// Release then press again: exactly one more edge
	edges = DetectEdges(held, InputSnapshot{})
	if edges.Confirm || edges.Down {
		t.Error("Release must not fire an edge")
	}
	edges = DetectEdges(InputSnapshot{}, held)
	if !edges.Confirm {
		t.Error("Re-press should fire a fresh edge")
	}
}

func TestDetectEdgesMergedButtons(t *testing.T) {
	// Confirm is P1A or P2A: switching from one to the other without a
	// release is not a new edge.
	prev := InputSnapshot{P1A: true}
	cur := InputSnapshot{P2A: true}
	if DetectEdges(prev, cur).Confirm {
		t.Error("Handing confirm from P1 to P2 without release is not an edge")
	}

	// Same rule for left/right which merge both players.
	if DetectEdges(InputSnapshot{P1Left: true}, InputSnapshot{P2Left: true}).Left {
		t.Error("Left held by either player continuously is not a new edge")
	}
	if !DetectEdges(InputSnapshot{}, InputSnapshot{P2Right: true}).Right {
		t.Error("P2 right press should produce a right edge")
	}
}

func TestDetectEdgesSystemButtons(t *testing.T) {
	edges := DetectEdges(InputSnapshot{}, InputSnapshot{SystemTwoPlayer: true})
	if !edges.SystemTwoPlayer {
		t.Error("System 2P press should produce an edge")
	}
	if edges.SystemOnePlayer {
		t.Error("System 1P should not fire without a press")
	}
}
