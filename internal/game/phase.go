package game

// Phase is the top-level state of the game flow.
//
//	ModeSelect -> Playing -> (NameEntry ->) GameOver -> ModeSelect
//
// GameOver can also restart straight into Playing via the system buttons.
type Phase int

const (
	PhaseModeSelect Phase = iota
	PhasePlaying
	PhaseNameEntry
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseModeSelect:
		return "mode_select"
	case PhasePlaying:
		return "playing"
	case PhaseNameEntry:
		return "name_entry"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
