package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt rendering to screen size and for deterministic
// simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState communicates status to the platform after each tick.
type GameState struct {
	Score    int  // Best score among current/finished players
	GameOver bool // True while the game-over screen is showing
	Playing  bool // True while a round is running
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
}
