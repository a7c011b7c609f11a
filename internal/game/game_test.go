package game

import (
	"testing"

	"github.com/akovalev/fridayfall/internal/core"
	"github.com/akovalev/fridayfall/internal/leaderboard"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New(nil)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

// press steps once with the snapshot held, then once released, so each call
// is a clean press-and-release producing exactly one edge.
func press(g *Game, in core.InputSnapshot) {
	g.Step(in)
	g.Step(core.InputSnapshot{})
}

// drainRoster eliminates every living player on the next step by dropping
// their health to 1 and planting a bad item on each hitbox.
func drainRoster(t *testing.T, g *Game) {
	t.Helper()
	if g.phase != PhasePlaying || g.round == nil {
		t.Fatalf("drainRoster outside Playing (phase %v)", g.phase)
	}
	for _, p := range g.round.Players {
		p.Health = 1
		g.round.Objects = append(g.round.Objects, overObject(p, BadItem))
	}
}

func TestResetStartsAtModeSelect(t *testing.T) {
	g := newTestGame(t, 1)
	if g.Phase() != PhaseModeSelect {
		t.Errorf("phase = %v, want mode select", g.Phase())
	}
	if g.menuSelection != leaderboard.ModeSingle {
		t.Errorf("menu selection = %v, want single", g.menuSelection)
	}
	st := g.State()
	if st.Playing || st.GameOver || st.Score != 0 {
		t.Errorf("state = %+v, want idle zero state", st)
	}
}

func TestSystemButtonsQuickStart(t *testing.T) {
	g := newTestGame(t, 1)
	press(g, core.InputSnapshot{SystemOnePlayer: true})

	if g.Phase() != PhasePlaying {
		t.Fatalf("phase = %v, want playing", g.Phase())
	}
	if g.Mode() != leaderboard.ModeSingle || len(g.round.Players) != 1 {
		t.Errorf("mode %v with %d players, want single/1", g.Mode(), len(g.round.Players))
	}

	g = newTestGame(t, 1)
	press(g, core.InputSnapshot{SystemTwoPlayer: true})
	if g.Mode() != leaderboard.ModeTwo || len(g.round.Players) != 2 {
		t.Errorf("mode %v with %d players, want two/2", g.Mode(), len(g.round.Players))
	}
}

func TestMenuHighlightThenConfirm(t *testing.T) {
	g := newTestGame(t, 1)

	// Right edge moves the highlight, confirm starts the highlighted mode
	press(g, core.InputSnapshot{P1Right: true})
	if g.menuSelection != leaderboard.ModeTwo {
		t.Fatalf("selection = %v after right edge, want two", g.menuSelection)
	}
	press(g, core.InputSnapshot{P1A: true})

	if g.Phase() != PhasePlaying || g.Mode() != leaderboard.ModeTwo {
		t.Fatalf("phase/mode = %v/%v, want playing/two", g.Phase(), g.Mode())
	}
	if len(g.round.Players) != 2 {
		t.Errorf("got %d players, want 2", len(g.round.Players))
	}
}

func TestMenuHeldButtonIsOneEdge(t *testing.T) {
	g := newTestGame(t, 1)

	// Hold right for many ticks, then flip back with a single left press.
	// If holds retriggered, the final left edge could not win.
	for i := 0; i < 10; i++ {
		g.Step(core.InputSnapshot{P1Right: true})
	}
	if g.menuSelection != leaderboard.ModeTwo {
		t.Fatalf("selection = %v, want two", g.menuSelection)
	}
	press(g, core.InputSnapshot{P1Left: true})
	if g.menuSelection != leaderboard.ModeSingle {
		t.Errorf("selection = %v, want single", g.menuSelection)
	}
	if g.Phase() != PhaseModeSelect {
		t.Errorf("phase = %v, menu navigation must not start a round", g.Phase())
	}
}

func TestEitherPlayersConfirmStartsRound(t *testing.T) {
	g := newTestGame(t, 1)
	press(g, core.InputSnapshot{P2A: true})
	if g.Phase() != PhasePlaying {
		t.Errorf("phase = %v, P2 confirm must work at the menu", g.Phase())
	}
}

func TestRoundEndEntersNameEntry(t *testing.T) {
	g := newTestGame(t, 1)
	press(g, core.InputSnapshot{SystemOnePlayer: true})

	drainRoster(t, g)
	g.Step(core.InputSnapshot{})

	if g.Phase() != PhaseNameEntry {
		t.Fatalf("phase = %v, want name entry", g.Phase())
	}
	if g.round != nil {
		t.Error("round not discarded on leaving playing")
	}
	if len(g.finals) != 1 || g.finals[0].Slot != 0 {
		t.Errorf("finals = %+v, want one slot-0 entry", g.finals)
	}
	if got := g.entry.Name(); got != "AAA" {
		t.Errorf("initial name = %q, want AAA", got)
	}
	if g.entry.cursor != 0 {
		t.Errorf("initial cursor = %d, want 0", g.entry.cursor)
	}
}

func TestThreeBadHitsEndSinglePlayerRound(t *testing.T) {
	g := newTestGame(t, 1)
	press(g, core.InputSnapshot{SystemOnePlayer: true})

	for hit := 0; hit < 3; hit++ {
		p := g.round.playerBySlot(0)
		if p == nil {
			t.Fatalf("player gone after %d hits", hit)
		}
		if p.Health != 3-hit {
			t.Fatalf("health = %d before hit %d, want %d", p.Health, hit+1, 3-hit)
		}
		g.round.Objects = append(g.round.Objects, overObject(p, BadItem))
		g.Step(core.InputSnapshot{})
	}

	if g.Phase() != PhaseNameEntry {
		t.Errorf("phase = %v after three bad hits, want name entry", g.Phase())
	}
}

func TestSurvivorPlaysOnAfterPartnerEliminated(t *testing.T) {
	g := newTestGame(t, 1)
	press(g, core.InputSnapshot{SystemTwoPlayer: true})

	p0 := g.round.playerBySlot(0)
	p0.Health = 1
	p0.Score = 25
	g.round.Objects = append(g.round.Objects, overObject(p0, BadItem))
	g.Step(core.InputSnapshot{})

	if g.Phase() != PhasePlaying {
		t.Fatalf("phase = %v, round must continue for slot 1", g.Phase())
	}

	results := g.DrainRoundResults()
	if len(results) != 1 || results[0] != (FinalScore{Slot: 0, Score: 25}) {
		t.Errorf("drained results = %+v, want [{0 25}]", results)
	}
	if extra := g.DrainRoundResults(); len(extra) != 0 {
		t.Errorf("second drain = %+v, want empty", extra)
	}

	// Survivor input still routes by slot index
	p1 := g.round.playerBySlot(1)
	before := p1.X
	g.Step(core.InputSnapshot{P2Right: true})
	if p1.X <= before {
		t.Errorf("slot 1 did not move: %v -> %v", before, p1.X)
	}

	drainRoster(t, g)
	g.Step(core.InputSnapshot{})
	if g.Phase() != PhaseNameEntry {
		t.Errorf("phase = %v once both are out, want name entry", g.Phase())
	}
	if len(g.finals) != 2 {
		t.Errorf("finals = %+v, want both archived", g.finals)
	}
}

func TestNameEntryEditsAndCommit(t *testing.T) {
	g := newTestGame(t, 1)
	press(g, core.InputSnapshot{SystemOnePlayer: true})
	g.round.playerBySlot(0).Score = 100
	drainRoster(t, g)
	g.Step(core.InputSnapshot{})

	// One down edge at cursor 0 turns AAA into BAA
	press(g, core.InputSnapshot{P1Down: true})
	if got := g.entry.Name(); got != "BAA" {
		t.Fatalf("name = %q after down edge, want BAA", got)
	}

	press(g, core.InputSnapshot{P1A: true})

	if g.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v after commit, want game over", g.Phase())
	}
	entries := g.board.Entries()
	if len(entries) != 1 || entries[0].Name != "BAA" || entries[0].Score != 100 {
		t.Errorf("board = %+v, want [{BAA 100 single}]", entries)
	}
}

func TestNameEntryCursorAndWrap(t *testing.T) {
	g := newTestGame(t, 1)
	press(g, core.InputSnapshot{SystemOnePlayer: true})
	drainRoster(t, g)
	g.Step(core.InputSnapshot{})

	press(g, core.InputSnapshot{P1Up: true})
	if got := g.entry.Name(); got != "ZAA" {
		t.Errorf("name = %q after up edge, want ZAA (wrap)", got)
	}

	press(g, core.InputSnapshot{P1Right: true})
	press(g, core.InputSnapshot{P1Right: true})
	press(g, core.InputSnapshot{P1Right: true}) // clamped at the last slot
	if g.entry.cursor != 2 {
		t.Errorf("cursor = %d, want 2", g.entry.cursor)
	}
	press(g, core.InputSnapshot{P1Down: true})
	if got := g.entry.Name(); got != "ZAB" {
		t.Errorf("name = %q, want ZAB", got)
	}
}

func TestHeldConfirmCommitsOncePerPress(t *testing.T) {
	g := newTestGame(t, 1)
	press(g, core.InputSnapshot{SystemTwoPlayer: true})
	g.round.playerBySlot(0).Score = 50
	g.round.playerBySlot(1).Score = 60
	drainRoster(t, g)
	g.Step(core.InputSnapshot{})

	if g.Phase() != PhaseNameEntry {
		t.Fatalf("phase = %v, want name entry", g.Phase())
	}

	// Two pending names; a held confirm must not race through both
	for i := 0; i < 5; i++ {
		g.Step(core.InputSnapshot{P1A: true})
	}
	if g.Phase() != PhaseNameEntry {
		t.Fatalf("held confirm committed more than once (phase %v)", g.Phase())
	}
	if got := g.board.Len(); got != 1 {
		t.Fatalf("board has %d entries after held confirm, want 1", got)
	}
	if got := g.entry.Name(); got != "AAA" {
		t.Errorf("name = %q for second entry, want reset to AAA", got)
	}

	g.Step(core.InputSnapshot{})
	press(g, core.InputSnapshot{P1A: true})
	if g.Phase() != PhaseGameOver {
		t.Errorf("phase = %v after second commit, want game over", g.Phase())
	}
	if got := g.board.Len(); got != 2 {
		t.Errorf("board has %d entries, want 2", got)
	}
}

func TestConfirmHeldAcrossRoundEndDoesNotCommit(t *testing.T) {
	g := newTestGame(t, 1)
	press(g, core.InputSnapshot{SystemOnePlayer: true})
	drainRoster(t, g)

	// Round ends on a tick where confirm is already held; the entry screen
	// must prime its previous snapshot so no stale edge fires.
	held := core.InputSnapshot{P1A: true}
	g.Step(held)
	if g.Phase() != PhaseNameEntry {
		t.Fatalf("phase = %v, want name entry", g.Phase())
	}
	for i := 0; i < 5; i++ {
		g.Step(held)
	}
	if g.Phase() != PhaseNameEntry || g.board.Len() != 0 {
		t.Fatalf("stale confirm committed: phase %v, board %d", g.Phase(), g.board.Len())
	}

	g.Step(core.InputSnapshot{})
	press(g, core.InputSnapshot{P1A: true})
	if g.Phase() != PhaseGameOver || g.board.Len() != 1 {
		t.Errorf("fresh press did not commit: phase %v, board %d", g.Phase(), g.board.Len())
	}
}

func TestGameOverRestartAndMenuReturn(t *testing.T) {
	g := newTestGame(t, 1)
	press(g, core.InputSnapshot{SystemOnePlayer: true})
	drainRoster(t, g)
	g.Step(core.InputSnapshot{})
	press(g, core.InputSnapshot{P1A: true}) // commit name, now game over

	if g.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, want game over", g.Phase())
	}
	if !g.State().GameOver {
		t.Error("State().GameOver = false at game over")
	}

	// Restart straight into a fresh two-player round
	press(g, core.InputSnapshot{SystemTwoPlayer: true})
	if g.Phase() != PhasePlaying || g.Mode() != leaderboard.ModeTwo {
		t.Fatalf("phase/mode = %v/%v, want playing/two", g.Phase(), g.Mode())
	}
	if g.round.Difficulty != 1.0 || len(g.finals) != 0 {
		t.Errorf("restart carried old round state: difficulty %v, finals %+v",
			g.round.Difficulty, g.finals)
	}

	drainRoster(t, g)
	g.Step(core.InputSnapshot{})
	press(g, core.InputSnapshot{P1A: true}) // first name
	press(g, core.InputSnapshot{P1A: true}) // second name
	if g.Phase() != PhaseGameOver {
		t.Fatalf("phase = %v, want game over", g.Phase())
	}

	press(g, core.InputSnapshot{P1A: true})
	if g.Phase() != PhaseModeSelect {
		t.Errorf("phase = %v, confirm at game over must return to menu", g.Phase())
	}
	if g.menuSelection != leaderboard.ModeSingle {
		t.Errorf("menu selection = %v, want reset to single", g.menuSelection)
	}
}

func TestStateScoreTracksBestPlayer(t *testing.T) {
	g := newTestGame(t, 1)
	press(g, core.InputSnapshot{SystemTwoPlayer: true})
	g.round.playerBySlot(0).Score = 30
	g.round.playerBySlot(1).Score = 70

	if got := g.State().Score; got != 70 {
		t.Errorf("state score = %d, want 70", got)
	}

	drainRoster(t, g)
	g.Step(core.InputSnapshot{})
	if got := g.State().Score; got != 70 {
		t.Errorf("state score after round end = %d, want 70", got)
	}
}

func TestSnapshotPerPhase(t *testing.T) {
	g := newTestGame(t, 1)

	if snap := g.Snapshot(); snap.Phase != "mode_select" {
		t.Errorf("phase = %q, want mode_select", snap.Phase)
	}

	press(g, core.InputSnapshot{SystemTwoPlayer: true})
	snap := g.Snapshot()
	if snap.Phase != "playing" || len(snap.Players) != 2 {
		t.Errorf("playing snapshot = %+v, want 2 players", snap)
	}

	drainRoster(t, g)
	g.Step(core.InputSnapshot{})
	snap = g.Snapshot()
	if snap.Phase != "name_entry" || snap.EntryName != "AAA" || len(snap.FinalScores) != 2 {
		t.Errorf("name entry snapshot = %+v", snap)
	}
}

func TestNameEntryHeaderCentered(t *testing.T) {
	g := newTestGame(t, 1)
	press(g, core.InputSnapshot{SystemOnePlayer: true})
	g.round.playerBySlot(0).Score = 100
	drainRoster(t, g)
	g.Step(core.InputSnapshot{})

	s := core.NewScreen(80, 24)
	g.Render(s)

	want := "PLAYER 1 - 100 PTS"
	wantX := (80 - len([]rune(want))) / 2
	for i, ch := range want {
		if got := s.GetCell(wantX+i, 4).Rune; got != ch {
			t.Fatalf("cell (%d, 4) = %q, want %q", wantX+i, got, ch)
		}
	}
	if s.GetCell(wantX-1, 4).Rune != ' ' {
		t.Errorf("header not centered, text starts before column %d", wantX)
	}
}
