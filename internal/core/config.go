package core

// RuntimeConfig is passed to the game at initialization.
// The game adapts to screen size and uses the seed for deterministic runs.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means the platform picks a time-based seed
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState communicates the current run status to the platform.
type GameState struct {
	Stash    int  // Run-local score from collected pickups
	Distance int  // Distance traveled in meters
	Lives    int  // Remaining lives
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
}
