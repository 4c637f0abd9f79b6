// Package game runs a 2048 session on top of the board engine: it owns the
// current board and score, sequences move, spawn and terminal checks, and
// implements the classic, endless and campaign modes.
package game

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeClassic  Mode = "classic"
	ModeEndless  Mode = "endless"
	ModeCampaign Mode = "campaign"
)

// Registry IDs for each mode.
const (
	IDClassic  = "2048"
	IDEndless  = "2048_endless"
	IDCampaign = "2048_campaign"
)

// startTiles is the number of tiles placed on a fresh board.
const startTiles = 2

// Game implements a 2048 session.
type Game struct {
	mode    Mode
	rng     *rand.Rand
	ids     engine.IDSource
	spawner engine.Spawner
	theme   core.Theme

	board   engine.Board
	score   int
	best    int // Best score known to the platform, raised as the score grows
	moves   int
	winTile int

	levelIndex    int // Current campaign level (0-indexed)
	currentTarget int // Current campaign target, 0 outside campaign
	startLevel    int // Requested campaign start level (1-indexed), 0 = first

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver     bool
	won          bool // Win notification is showing
	winNotified  bool // Win notification already fired this game
	levelCleared bool
	campaignDone bool
	paused       bool
}

// Option configures a Game.
type Option func(*Game)

// WithIDSource sets the tile identity source (defaults to UUIDs).
func WithIDSource(ids engine.IDSource) Option {
	return func(g *Game) {
		g.ids = ids
	}
}

// WithStartLevel starts a campaign at the given level (1-indexed).
func WithStartLevel(level int) Option {
	return func(g *Game) {
		g.SetStartLevel(level)
	}
}

// New creates a game in the given mode.
func New(mode Mode, opts ...Option) *Game {
	g := &Game{
		mode: mode,
		ids:  engine.UUIDSource{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ModeFor maps a registry ID to its mode.
func ModeFor(id string) (Mode, bool) {
	switch id {
	case IDClassic:
		return ModeClassic, true
	case IDEndless:
		return ModeEndless, true
	case IDCampaign:
		return ModeCampaign, true
	}
	return "", false
}

func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New(ModeClassic)
	})
	registry.Register(IDEndless, func() registry.Game {
		return New(ModeEndless)
	})
	registry.Register(IDCampaign, func() registry.Game {
		return New(ModeCampaign)
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	switch g.mode {
	case ModeEndless:
		return IDEndless
	case ModeCampaign:
		return IDCampaign
	default:
		return IDClassic
	}
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.mode {
	case ModeEndless:
		return "2048 (Endless)"
	case ModeCampaign:
		return "2048 (Campaign)"
	default:
		return "2048"
	}
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// SetStartLevel picks the campaign level the next Reset starts at (1-indexed).
// Ignored outside campaign mode.
func (g *Game) SetStartLevel(level int) {
	g.startLevel = level
}

// SetBest seeds the best score shown in the HUD.
func (g *Game) SetBest(best int) {
	g.best = max(best, g.score)
}

// Best returns the best score seen so far.
func (g *Game) Best() int {
	return g.best
}

// Reset starts a new game: an empty board with two spawned tiles.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.configure(cfg)
	g.score = 0
	g.moves = 0

	if g.mode == ModeCampaign && g.startLevel > 0 && g.startLevel <= LevelCount() {
		g.levelIndex = g.startLevel - 1
	} else {
		g.levelIndex = 0
	}
	g.loadLevel(cfg)

	g.board = engine.NewBoard()
	for range startTiles {
		g.board = g.spawner.Spawn(g.board)
	}
}

// configure applies runtime settings shared by Reset and Restore.
func (g *Game) configure(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.theme = core.ThemeByName(cfg.Theme)
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.winTile = cfg.WinTile
	if g.winTile <= 0 {
		g.winTile = engine.WinValue
	}

	g.gameOver = false
	g.won = false
	g.winNotified = false
	g.levelCleared = false
	g.campaignDone = false
	g.paused = false
}

// loadLevel sets the spawn probability and target for the current mode/level.
func (g *Game) loadLevel(cfg core.RuntimeConfig) {
	prob := cfg.Spawn4Prob
	if prob <= 0 {
		prob = engine.DefaultSpawn4Prob
	}
	g.currentTarget = 0

	if g.mode == ModeCampaign {
		level := GetLevel(g.levelIndex)
		if level == nil {
			level = GetLevel(LevelCount() - 1)
		}
		g.currentTarget = level.Target
		prob = level.Spawn4
	}

	g.spawner = engine.Spawner{Rand: g.rng, IDs: g.ids, Spawn4Prob: prob}
}

// Restore replaces the board and score with a saved state.
// Tiles get fresh identities. A board that already reached the win tile does
// not notify again.
func (g *Game) Restore(cfg core.RuntimeConfig, s registry.SaveState) error {
	board, err := engine.FromValues(s.Cells, g.ids)
	if err != nil {
		return fmt.Errorf("game: restore: %w", err)
	}
	if s.Score < 0 {
		return fmt.Errorf("game: restore: negative score %d", s.Score)
	}

	g.configure(cfg)
	g.levelIndex = 0
	if g.mode == ModeCampaign && s.Level > 0 && s.Level <= LevelCount() {
		g.levelIndex = s.Level - 1
	}
	g.loadLevel(cfg)

	g.board = board
	g.score = s.Score
	g.best = max(g.best, s.Score)
	g.moves = s.Moves
	g.winNotified = g.reachedWin()
	// A campaign board saved on its target resumes on the level-clear banner.
	if g.mode == ModeCampaign && engine.Reaches(board, g.currentTarget) {
		g.levelCleared = true
		return nil
	}
	g.gameOver = engine.IsGameOver(board)
	return nil
}

// Save captures the resumable state.
func (g *Game) Save() registry.SaveState {
	s := registry.SaveState{
		Cells: g.board.Values(),
		Score: g.score,
		Moves: g.moves,
	}
	if g.mode == ModeCampaign {
		s.Level = g.levelIndex + 1
	}
	return s
}

// Board returns the current board.
func (g *Game) Board() engine.Board {
	return g.board
}

// Step applies one input frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// The win notification and level-clear banner block moves until dismissed.
	if g.won {
		if in.Has(core.ActionContinue) {
			g.Continue()
		}
		return core.StepResult{State: g.State()}
	}
	if g.levelCleared {
		if in.Has(core.ActionContinue) {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if g.gameOver || g.campaignDone {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	changed := g.Move(dir)
	return core.StepResult{State: g.State(), Changed: changed}
}

// directionFor picks the first direction action in the frame.
func directionFor(in core.InputFrame) (engine.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return engine.Up, true
	case in.Has(core.ActionDown):
		return engine.Down, true
	case in.Has(core.ActionLeft):
		return engine.Left, true
	case in.Has(core.ActionRight):
		return engine.Right, true
	}
	return 0, false
}

// Move applies dir. When the board changes it adds the score, spawns exactly
// one tile and re-checks the terminal state. Returns whether the board changed.
func (g *Game) Move(dir engine.Direction) bool {
	res, err := engine.ApplyMove(g.board, dir)
	if err != nil || !res.Changed {
		return false
	}

	g.board = g.spawner.Spawn(res.Board)
	g.score += res.ScoreDelta
	g.best = max(g.best, g.score)
	g.moves++

	switch g.mode {
	case ModeClassic:
		if !g.winNotified && g.reachedWin() {
			g.won = true
			g.winNotified = true
			return true
		}
	case ModeCampaign:
		if engine.Reaches(g.board, g.currentTarget) {
			g.levelCleared = true
			return true
		}
	}

	if engine.IsGameOver(g.board) {
		g.gameOver = true
	}
	return true
}

// reachedWin reports whether the board holds the classic win tile.
func (g *Game) reachedWin() bool {
	if g.winTile == engine.WinValue {
		return engine.HasWon(g.board)
	}
	return engine.Reaches(g.board, g.winTile)
}

// Continue dismisses the win notification and keeps playing.
// The notification does not fire again in this game.
func (g *Game) Continue() {
	if !g.won {
		return
	}
	g.won = false
	if engine.IsGameOver(g.board) {
		g.gameOver = true
	}
}

// advanceLevel moves to the next campaign level, keeping board and score.
func (g *Game) advanceLevel() {
	g.levelCleared = false

	if g.levelIndex >= LevelCount()-1 {
		g.campaignDone = true
		return
	}

	g.levelIndex++
	level := GetLevel(g.levelIndex)
	g.currentTarget = level.Target
	g.spawner.Spawn4Prob = level.Spawn4

	// The new target may already be reached by a lucky merge chain.
	if engine.Reaches(g.board, g.currentTarget) {
		g.levelCleared = true
		return
	}
	if engine.IsGameOver(g.board) {
		g.gameOver = true
	}
}

// ClearCues drops the spawn/merge highlights once the platform has shown them.
func (g *Game) ClearCues() {
	g.board = engine.ClearCues(g.board)
}

// Resize updates the screen dimensions without touching the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		MaxTile:  engine.MaxTile(g.board),
		Moves:    g.moves,
		GameOver: g.gameOver || g.campaignDone,
		Won:      g.won,
		Paused:   g.paused || g.levelCleared,
	}
}
