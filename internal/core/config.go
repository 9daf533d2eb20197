package core

// RuntimeConfig is passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed, 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is what a game reports to the platform after each tick.
type GameState struct {
	Score      int
	Lives      int
	Shield     bool
	GameOver   bool   // Round ended by losing the last life
	Victory    bool   // Round ended by defeating the final boss
	DeathCause string // Set when GameOver is true
	Bosses     int    // Bosses defeated this round
	Playing    bool   // False on title and result screens
	Paused     bool
	Round      int // Increments each time a round starts
}

// Finished reports whether the round has ended either way.
func (s GameState) Finished() bool {
	return s.GameOver || s.Victory
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
