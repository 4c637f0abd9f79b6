package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Optional game capabilities the model uses when present.
type (
	cueClearer interface{ ClearCues() }
	resizer    interface{ Resize(w, h int) }
	bestKeeper interface{ SetBest(best int) }
)

// Options tune a game Model.
type Options struct {
	// Resume restores the stored game for this mode if one exists.
	Resume bool
	// Embedded makes Back return to the menu instead of quitting.
	Embedded bool
	Logger   *log.Logger
}

// Model is the Bubble Tea model for a running game.
// It maps keys to actions, auto-saves after every changed move or banner
// dismissal and records the score when the game ends.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	gameState  core.GameState
	flashSeq   int
	embedded   bool
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a model for the given game and starts it, resuming the
// saved game when asked to.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	m := Model{
		game:     game,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:    store,
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		logger:   logger.With("game", game.ID()),
		embedded: opts.Embedded,
	}
	m.start(opts.Resume)
	return m
}

// start resets or restores the game and seeds the best score.
func (m *Model) start(resume bool) {
	restored := false
	if resume && m.store != nil {
		saved, err := m.store.LoadGame(m.game.ID())
		if err != nil {
			m.logger.Warn("could not load saved game", "err", err)
		} else if saved != nil {
			err = m.game.Restore(m.config, registry.SaveState{
				Cells: saved.Cells,
				Score: saved.Score,
				Moves: saved.Moves,
				Level: saved.Level,
			})
			if err != nil {
				m.logger.Warn("discarding unreadable saved game", "err", err)
			} else {
				restored = true
				m.logger.Debug("resumed saved game", "score", saved.Score, "moves", saved.Moves)
			}
		}
	}
	if !restored {
		m.game.Reset(m.config)
	}

	m.gameState = m.game.State()
	m.scoreSaved = false

	if bk, ok := m.game.(bestKeeper); ok && m.store != nil {
		best, err := m.store.HighScore(m.game.ID())
		if err != nil {
			m.logger.Warn("could not read best score", "err", err)
		}
		bk.SetBest(best)
	}

	// A restored board may already be lost.
	m.recordGameOver()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FlashMsg:
		// Only the latest move's cues are cleared; an older tick is stale.
		if msg.Seq == m.flashSeq {
			if cc, ok := m.game.(cueClearer); ok {
				cc.ClearCues()
			}
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.help.ShowAll {
		// Any key closes the help screen
		m.help.ShowAll = false
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		if m.embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case core.ActionRestart:
		m.restart()
		return m, nil

	case core.ActionNone:
		if key.Matches(msg, m.keys.Help) {
			m.help.ShowAll = true
		}
		return m, nil

	default:
		return m.step(m.keys.Action(msg))
	}
}

// step feeds one action to the game and runs the persistence hooks.
func (m Model) step(action core.Action) (tea.Model, tea.Cmd) {
	before := m.gameState
	result := m.game.Step(core.FrameOf(action))
	m.gameState = result.State

	// Dismissing a banner can end the game without moving a tile.
	if !m.recordGameOver() && (result.Changed || result.State != before) {
		m.autosave()
	}

	if !result.Changed {
		return m, nil
	}
	m.flashSeq++
	return m, flashCmd(m.flashSeq, flashDuration)
}

// restart abandons the current game and starts a fresh one.
func (m *Model) restart() {
	m.config.Seed = time.Now().UnixNano()
	if m.store != nil {
		if err := m.store.ClearGame(m.game.ID()); err != nil {
			m.logger.Warn("could not clear saved game", "err", err)
		}
	}
	m.start(false)
}

// autosave stores the resumable state of the current game.
func (m *Model) autosave() {
	if m.store == nil {
		return
	}
	s := m.game.Save()
	err := m.store.SaveGame(storage.SavedGame{
		GameID: m.game.ID(),
		Cells:  s.Cells,
		Score:  s.Score,
		Moves:  s.Moves,
		Level:  s.Level,
	})
	if err != nil {
		m.logger.Warn("autosave failed", "err", err)
	}
}

// recordGameOver saves the score and drops the saved game once per finished
// game. Returns whether the game is over.
func (m *Model) recordGameOver() bool {
	if !m.gameState.GameOver {
		return false
	}
	if m.scoreSaved {
		return true
	}
	m.scoreSaved = true

	if m.store == nil {
		return true
	}
	if m.gameState.Score > 0 {
		_, err := m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.MaxTile, m.gameState.Moves)
		if err != nil {
			m.logger.Warn("could not save score", "err", err)
		} else {
			m.logger.Info("game over", "score", m.gameState.Score, "max_tile", m.gameState.MaxTile)
		}
	}
	if err := m.store.ClearGame(m.game.ID()); err != nil {
		m.logger.Warn("could not clear saved game", "err", err)
	}
	return true
}

// handleResize processes window resize events without touching the game.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, msg.Height)
	}
	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.help.ShowAll {
		page := lipgloss.JoinVertical(lipgloss.Left,
			howToPlay(), "", m.help.View(m.keys))
		return lipgloss.Place(m.config.ScreenW, m.config.ScreenH,
			lipgloss.Center, lipgloss.Center, page)
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

var (
	ruleTitleStyle = lipgloss.NewStyle().Bold(true)
	ruleLabelStyle = ruleTitleStyle.Width(7)
	ruleTextStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(48)
)

var rules = [][2]string{
	{"Move", "Arrows, WASD or HJKL slide every tile as far as it goes."},
	{"Merge", "Two equal tiles that collide become one of double value, once per move."},
	{"Win", "Make a 2048 tile to win, then press C to keep going for a higher score."},
	{"Lose", "The game ends when the board is full and no neighbours match."},
	{"Tip", "Keep the biggest tile parked in a corner."},
}

// howToPlay renders the rules shown above the key bindings.
func howToPlay() string {
	lines := []string{ruleTitleStyle.Render("How to play")}
	for _, r := range rules {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			ruleLabelStyle.Render(r[0]), ruleTextStyle.Render(r[1])))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Config returns the current runtime config (may have been updated by resize).
func (m Model) Config() core.RuntimeConfig {
	return m.config
}

// Run starts a full-screen program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
