package core

// RuntimeConfig is passed to games on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one
}

// DefaultConfig returns a RuntimeConfig for a standard 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Moves    int  // Accepted moves since the last reset
	GameOver bool // No further moves are accepted
	Won      bool // Set together with GameOver when the player won
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
}
