package core

// RuntimeConfig contains configuration passed to games at Reset.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	TickRate  int   // Simulation ticks per second (default 60)
	Seed      int64 // RNG seed for deterministic gameplay
	BestScore int   // Persisted high score, shown in the HUD
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

// Ticks converts a duration in seconds to a tick count at this config's rate.
// Never returns less than 1 for a positive duration.
func (c RuntimeConfig) Ticks(seconds float64) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	n := int(seconds * float64(rate))
	if n < 1 && seconds > 0 {
		return 1
	}
	return n
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
	Won      bool // Whether the game ended in victory
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
