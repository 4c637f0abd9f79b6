package game

import "github.com/vovakirdan/tui-2048/internal/engine"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying      GameStateType = "playing"
	StatePaused       GameStateType = "paused"
	StateWon          GameStateType = "won"
	StateLevelCleared GameStateType = "level_cleared"
	StateCampaignDone GameStateType = "campaign_complete"
	StateGameOver     GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Mode    string
	Level   int // Campaign level (1-indexed), 0 otherwise
	Target  int // Campaign target or classic win tile, 0 for endless
	Score   int
	Moves   int
	Board   [engine.Cells]int
	MaxTile int
	State   GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.campaignDone:
		state = StateCampaignDone
	case g.won:
		state = StateWon
	case g.levelCleared:
		state = StateLevelCleared
	case g.paused:
		state = StatePaused
	}

	s := Snapshot{
		Mode:    string(g.mode),
		Score:   g.score,
		Moves:   g.moves,
		Board:   g.board.Values(),
		MaxTile: engine.MaxTile(g.board),
		State:   state,
	}
	switch g.mode {
	case ModeCampaign:
		s.Level = g.levelIndex + 1
		s.Target = g.currentTarget
	case ModeClassic:
		s.Target = g.winTile
	}
	return s
}
