package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// SavedGame is a resumable game. Only tile values by position and the score
// are stored; tile identity is regenerated on load.
type SavedGame struct {
	GameID  string
	Cells   [16]int
	Score   int
	Moves   int
	Level   int
	SavedAt time.Time
}

// SaveGame stores the in-progress game for a mode, replacing any earlier save.
func (s *Store) SaveGame(g SavedGame) error {
	cells, err := json.Marshal(g.Cells)
	if err != nil {
		return fmt.Errorf("storage: cannot encode board: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO saved_games (game_id, cells, score, moves, level, saved_at)
		 VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(game_id) DO UPDATE SET
		   cells = excluded.cells,
		   score = excluded.score,
		   moves = excluded.moves,
		   level = excluded.level,
		   saved_at = excluded.saved_at`,
		g.GameID, string(cells), g.Score, g.Moves, g.Level,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game: %w", err)
	}
	return nil
}

// LoadGame returns the saved game for a mode, or nil if there is none.
func (s *Store) LoadGame(gameID string) (*SavedGame, error) {
	g := SavedGame{GameID: gameID}
	var cells string
	var savedAt any

	err := s.db.QueryRow(
		`SELECT cells, score, moves, level, saved_at FROM saved_games WHERE game_id = ?`,
		gameID,
	).Scan(&cells, &g.Score, &g.Moves, &g.Level, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load game: %w", err)
	}

	if err := json.Unmarshal([]byte(cells), &g.Cells); err != nil {
		return nil, fmt.Errorf("storage: corrupt saved board for %s: %w", gameID, err)
	}
	g.SavedAt = parseTime(savedAt)

	return &g, nil
}

// ClearGame removes the saved game for a mode.
func (s *Store) ClearGame(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM saved_games WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear saved game: %w", err)
	}
	return nil
}
