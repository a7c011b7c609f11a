package game

import "github.com/akovalev/fridayfall/internal/leaderboard"

// PlayerView is a read-only copy of one player slot's state.
type PlayerView struct {
	Slot   int     `json:"slot"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Score  int     `json:"score"`
	Health int     `json:"health"`
}

// ObjectView is a read-only copy of one falling object.
type ObjectView struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Kind string  `json:"kind"`
}

// Snapshot is a full read-only view of the game, safe to serialize.
// The spectator feed broadcasts one per tick.
type Snapshot struct {
	Phase       string              `json:"phase"`
	Mode        string              `json:"mode"`
	Tick        int                 `json:"tick"`
	Difficulty  float64             `json:"difficulty"`
	Players     []PlayerView        `json:"players,omitempty"`
	Objects     []ObjectView        `json:"objects,omitempty"`
	FinalScores []FinalScore        `json:"final_scores,omitempty"`
	EntryName   string              `json:"entry_name,omitempty"`
	EntryCursor int                 `json:"entry_cursor,omitempty"`
	Top         []leaderboard.Entry `json:"top,omitempty"`
}

// Snapshot captures the current state for spectators and tests.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Phase: g.phase.String(),
		Mode:  g.mode.String(),
	}

	switch g.phase {
	case PhaseModeSelect:
		snap.Top = g.board.Top(leaderboard.DefaultSize)
	case PhasePlaying:
		r := g.round
		if r == nil {
			break
		}
		snap.Tick = r.Tick
		snap.Difficulty = r.Difficulty
		snap.Players = make([]PlayerView, 0, len(r.Players))
		for _, p := range r.Players {
			snap.Players = append(snap.Players, PlayerView{
				Slot:   p.Slot,
				X:      p.X,
				Y:      p.Y,
				Score:  p.Score,
				Health: p.Health,
			})
		}
		snap.Objects = make([]ObjectView, 0, len(r.Objects))
		for _, o := range r.Objects {
			snap.Objects = append(snap.Objects, ObjectView{X: o.X, Y: o.Y, Kind: o.Kind.String()})
		}
		snap.FinalScores = append([]FinalScore(nil), r.FinalScores...)
	case PhaseNameEntry:
		snap.FinalScores = append([]FinalScore(nil), g.finals...)
		snap.EntryName = g.entry.Name()
		snap.EntryCursor = g.entry.cursor
	case PhaseGameOver:
		snap.FinalScores = append([]FinalScore(nil), g.finals...)
		snap.Top = g.board.Top(leaderboard.DefaultSize)
	}

	return snap
}
