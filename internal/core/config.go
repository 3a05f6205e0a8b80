package core

// RuntimeConfig contains configuration passed to games at initialization.
// World dimensions are in pixels; each frontend derives them from its own surface.
type RuntimeConfig struct {
	WorldW   int   // Play area width in pixels
	WorldH   int   // Play area height in pixels
	TickRate int   // Frames per second requested from the host (terminal frontend only)
	Seed     int64 // RNG seed for entity generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		WorldW:   960,
		WorldH:   720,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Tick     int  // Ticks simulated since Reset
	PowerUps int  // Power-ups collected since Reset
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
