package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW    int     // Screen width in characters
	ScreenH    int     // Screen height in characters
	Seed       int64   // RNG seed for deterministic gameplay
	Spawn4Prob float64 // Chance a spawned tile is a 4 (0 = engine default)
	WinTile    int     // Tile that wins classic mode (0 = 2048)
	Theme      string  // "light" or "dark"
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
		Theme:   ThemeLight,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	MaxTile  int  // Highest tile on the board
	Moves    int  // Number of moves that changed the board
	GameOver bool // No move is possible
	Won      bool // Win notification is showing (fires once per game)
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each input.
type StepResult struct {
	State   GameState
	Changed bool // The board changed; the platform should auto-save
}
