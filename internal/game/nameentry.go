package game

import (
	"github.com/akovalev/fridayfall/internal/core"
	"github.com/akovalev/fridayfall/internal/leaderboard"
)

// nameEntry is the substate for entering 3-letter names after a round.
// It works through pending final scores one at a time, front first.
type nameEntry struct {
	pending []FinalScore
	name    [leaderboard.NameLength]byte
	cursor  int
}

// reset prepares name entry for the next pending score.
func (n *nameEntry) reset() {
	for i := range n.name {
		n.name[i] = 'A'
	}
	n.cursor = 0
}

// start loads the pending list. Returns false when there is nothing to
// enter, in which case the caller skips straight to game over.
func (n *nameEntry) start(finals []FinalScore) bool {
	if len(finals) == 0 {
		return false
	}
	n.pending = append(n.pending[:0], finals...)
	n.reset()
	return true
}

// current returns the entry being named. ok is false if nothing is pending.
func (n *nameEntry) current() (FinalScore, bool) {
	if len(n.pending) == 0 {
		return FinalScore{}, false
	}
	return n.pending[0], true
}

// Name returns the in-progress name as a string.
func (n *nameEntry) Name() string {
	return string(n.name[:])
}

// handleEdges applies one tick of navigation: up/down cycle the letter at
// the cursor (wrapping both ways), left/right move the cursor, clamped.
func (n *nameEntry) handleEdges(edges core.EdgeSet) {
	if n.cursor < 0 || n.cursor >= len(n.name) {
		// Host misuse guard; skip the mutation rather than fault
		return
	}

	if edges.Up {
		c := n.name[n.cursor]
		if c == 'A' {
			c = 'Z'
		} else {
			c--
		}
		n.name[n.cursor] = c
	}
	if edges.Down {
		c := n.name[n.cursor]
		if c == 'Z' {
			c = 'A'
		} else {
			c++
		}
		n.name[n.cursor] = c
	}

	if edges.Left && n.cursor > 0 {
		n.cursor--
	}
	if edges.Right && n.cursor < len(n.name)-1 {
		n.cursor++
	}
}

// commit records the current name against the front pending score and pops
// it. Returns true when no pending scores remain. Committing with an empty
// pending list is a no-op that reports done.
func (n *nameEntry) commit(board *leaderboard.Board, mode leaderboard.Mode) bool {
	cur, ok := n.current()
	if !ok {
		return true
	}

	board.Add(leaderboard.Entry{
		Name:  n.Name(),
		Score: cur.Score,
		Mode:  mode,
	})
	n.pending = n.pending[1:]

	if len(n.pending) == 0 {
		return true
	}
	n.reset()
	return false
}
