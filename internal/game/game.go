// Package game implements the Black Friday simulation: a one- or two-player
// actor catching good deals and dodging bad items falling through a shared
// playfield, with an arcade menu / name-entry / game-over flow around it.
//
// The package is pure simulation: no terminal, no storage, no clock. The
// platform drives it one Step per frame and renders the result.
package game

import (
	"math/rand"

	"github.com/akovalev/fridayfall/internal/config"
	"github.com/akovalev/fridayfall/internal/core"
	"github.com/akovalev/fridayfall/internal/leaderboard"
	"github.com/akovalev/fridayfall/internal/registry"
)

// Package-level settings applied before game creation (CLI wiring).
var configPath string

// SetConfigPath sets a custom tuning config file path for new games.
func SetConfigPath(path string) {
	configPath = path
}

// Game is the top-level controller: it owns the phase state machine, the
// round lifecycle, the menu and name-entry substates, and the leaderboard.
type Game struct {
	cfg     config.GameConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	board   *leaderboard.Board

	phase         Phase
	mode          leaderboard.Mode
	menuSelection leaderboard.Mode

	round      *Round
	seenFinals int
	finals     []FinalScore // Survives round teardown for the game-over screen
	entry      nameEntry

	// One previous-snapshot slot per edge-consuming phase. Each is primed to
	// the snapshot that caused the transition into its phase, so a button
	// held across a phase change never fires a stale edge.
	menuPrev core.InputSnapshot
	namePrev core.InputSnapshot
	overPrev core.InputSnapshot

	// Newly archived results waiting for the platform to drain into history.
	pendingResults []FinalScore
}

// New creates the game. A nil board gets an in-memory, non-persisted one.
func New(board *leaderboard.Board) *Game {
	if board == nil {
		board = leaderboard.New(nil, 0)
	}
	return &Game{board: board}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "friday"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Black Friday"
}

// Board exposes the leaderboard for display layers.
func (g *Game) Board() *leaderboard.Board {
	return g.board
}

// Reset initializes or restarts the whole game at the mode-select screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	cfg, err := config.Load(configPath)
	if err != nil {
		cfg = config.DefaultGameConfig()
	}
	g.cfg = cfg

	g.phase = PhaseModeSelect
	g.mode = leaderboard.ModeSingle
	g.menuSelection = leaderboard.ModeSingle
	g.round = nil
	g.seenFinals = 0
	g.finals = nil
	g.entry = nameEntry{}
	g.menuPrev = core.InputSnapshot{}
	g.namePrev = core.InputSnapshot{}
	g.overPrev = core.InputSnapshot{}
	g.pendingResults = nil

	g.board.SetSize(cfg.Scoring.LeaderboardSize)
	g.board.Reload()
}

// Step advances the simulation by one tick given the merged held-button
// snapshot for this frame.
func (g *Game) Step(in core.InputSnapshot) core.StepResult {
	switch g.phase {
	case PhaseModeSelect:
		g.stepModeSelect(in)
	case PhasePlaying:
		g.stepPlaying(in)
	case PhaseNameEntry:
		g.stepNameEntry(in)
	case PhaseGameOver:
		g.stepGameOver(in)
	}
	return core.StepResult{State: g.State()}
}

// stepModeSelect handles menu navigation and round start.
func (g *Game) stepModeSelect(in core.InputSnapshot) {
	edges := core.DetectEdges(g.menuPrev, in)
	g.menuPrev = in

	if edges.Left {
		g.menuSelection = leaderboard.ModeSingle
	}
	if edges.Right {
		g.menuSelection = leaderboard.ModeTwo
	}

	// System buttons choose and start in one press, bypassing the highlight
	switch {
	case edges.SystemTwoPlayer:
		g.startRound(leaderboard.ModeTwo)
	case edges.SystemOnePlayer:
		g.startRound(leaderboard.ModeSingle)
	case edges.Confirm:
		g.startRound(g.menuSelection)
	}
}

// startRound resets all round state and enters Playing.
func (g *Game) startRound(mode leaderboard.Mode) {
	g.mode = mode
	g.finals = nil
	g.seenFinals = 0
	g.entry = nameEntry{}
	g.round = NewRound(mode, g.cfg, g.rng)
	g.phase = PhasePlaying
}

// stepPlaying applies held movement, advances the round, and watches for
// the round-over signal.
func (g *Game) stepPlaying(in core.InputSnapshot) {
	if in.P1Left {
		g.round.MovePlayer(0, -1)
	}
	if in.P1Right {
		g.round.MovePlayer(0, +1)
	}
	if g.mode == leaderboard.ModeTwo {
		if in.P2Left {
			g.round.MovePlayer(1, -1)
		}
		if in.P2Right {
			g.round.MovePlayer(1, +1)
		}
	}

	over := g.round.Advance()

	// Hand newly archived results to the platform for history recording
	if n := len(g.round.FinalScores); n > g.seenFinals {
		g.pendingResults = append(g.pendingResults, g.round.FinalScores[g.seenFinals:n]...)
		g.seenFinals = n
	}

	if !over {
		return
	}

	g.finals = append([]FinalScore(nil), g.round.FinalScores...)
	g.round = nil

	if g.entry.start(g.finals) {
		g.phase = PhaseNameEntry
		g.namePrev = in
	} else {
		g.phase = PhaseGameOver
		g.overPrev = in
	}
}

// stepNameEntry edits the 3-letter name for the front pending score.
// Commit is edge-triggered so a held button cannot race through every
// pending name in one press.
func (g *Game) stepNameEntry(in core.InputSnapshot) {
	edges := core.DetectEdges(g.namePrev, in)
	g.namePrev = in

	g.entry.handleEdges(edges)

	if edges.Confirm {
		if g.entry.commit(g.board, g.mode) {
			g.phase = PhaseGameOver
			g.overPrev = in
		}
	}
}

// stepGameOver waits for a restart or a return to the menu.
func (g *Game) stepGameOver(in core.InputSnapshot) {
	edges := core.DetectEdges(g.overPrev, in)
	g.overPrev = in

	switch {
	case edges.SystemTwoPlayer:
		g.startRound(leaderboard.ModeTwo)
	case edges.SystemOnePlayer:
		g.startRound(leaderboard.ModeSingle)
	case edges.Confirm:
		g.backToMenu(in)
	}
}

// backToMenu returns to mode select and refreshes the leaderboard display.
func (g *Game) backToMenu(in core.InputSnapshot) {
	g.phase = PhaseModeSelect
	g.menuSelection = leaderboard.ModeSingle
	g.finals = nil
	g.round = nil
	g.menuPrev = in
	g.board.Reload()
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Mode returns the player mode of the current or last round.
func (g *Game) Mode() leaderboard.Mode {
	return g.mode
}

// DrainRoundResults returns results archived since the last drain and
// clears the queue. The platform records them to round history.
func (g *Game) DrainRoundResults() []FinalScore {
	out := g.pendingResults
	g.pendingResults = nil
	return out
}

// State returns the platform-facing game state.
func (g *Game) State() core.GameState {
	best := 0
	if g.round != nil {
		for _, p := range g.round.Players {
			if p.Score > best {
				best = p.Score
			}
		}
	}
	for _, f := range g.finals {
		if f.Score > best {
			best = f.Score
		}
	}
	return core.GameState{
		Score:    best,
		GameOver: g.phase == PhaseGameOver,
		Playing:  g.phase == PhasePlaying,
	}
}

// Register the game with the registry
func init() {
	registry.Register("friday", func() registry.Game {
		return New(nil)
	})
}
