package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

const (
	scoreLimit   = 100 // rows loaded per mode
	dateColWidth = 12  // "Jan 02 15:04"
	fixedCols    = 4 + 9 + 6 + 7
	chromeRows   = 11 // title, mode strip, summary, borders, help
)

// ScoreboardKeyMap binds the scoreboard keys.
type ScoreboardKeyMap struct {
	Scroll key.Binding
	Mode   key.Binding
	Back   key.Binding
	Quit   key.Binding

	up, down, next, prev key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Mode, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns the scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Scroll: key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "scroll")),
		Mode:   key.NewBinding(key.WithKeys("left", "right", "tab"), key.WithHelp("←/→/tab", "mode")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "menu")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		up:   key.NewBinding(key.WithKeys("up", "k", "w")),
		down: key.NewBinding(key.WithKeys("down", "j", "s")),
		next: key.NewBinding(key.WithKeys("right", "l", "d", "tab")),
		prev: key.NewBinding(key.WithKeys("left", "h", "a", "shift+tab")),
	}
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#edc22e"))
	modeActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f9f6f2")).
			Background(lipgloss.Color("#f59563")).Padding(0, 1)
	modeIdleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	summaryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	frameStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#bbada0"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
)

// ScoreboardModel lists the best finished games of each mode.
type ScoreboardModel struct {
	modes   []registry.GameInfo
	current int
	store   *storage.Store
	logger  *log.Logger
	scores  []storage.ScoreEntry
	stats   storage.GameStats
	table   table.Model
	help    help.Model
	keys    ScoreboardKeyMap
	width   int
	height  int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel opens the scoreboard on the first registered mode.
func NewScoreboardModel(store *storage.Store, width, height int, logger *log.Logger) ScoreboardModel {
	if logger == nil {
		logger = log.Default()
	}
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		logger: logger,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.table = newScoreTable(width, height)
	m.reload()
	return m
}

// scoreColumns gives the date column whatever the fixed columns leave over.
func scoreColumns(width int) []table.Column {
	date := dateColWidth
	if spare := width - fixedCols - dateColWidth - 8; spare > 0 {
		date += min(spare, 8)
	}
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 9},
		{Title: "Tile", Width: 6},
		{Title: "Moves", Width: 7},
		{Title: "Played", Width: date},
	}
}

// scoreRows is the number of table rows that fit under the chrome.
func scoreRows(height int) int {
	return max(height-chromeRows, 3)
}

func newScoreTable(width, height int) table.Model {
	t := table.New(
		table.WithColumns(scoreColumns(width)),
		table.WithHeight(scoreRows(height)),
		table.WithFocused(true),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).Foreground(lipgloss.Color("#776e65")).
		BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("#f9f6f2")).Background(lipgloss.Color("#8f7a66"))
	t.SetStyles(s)
	return t
}

// mode returns the selected mode ID, or "" when nothing is registered.
func (m ScoreboardModel) mode() string {
	if len(m.modes) == 0 {
		return ""
	}
	return m.modes[m.current].ID
}

// reload reads scores and stats for the selected mode.
func (m *ScoreboardModel) reload() {
	id := m.mode()
	m.scores = nil
	m.stats = storage.GameStats{GameID: id}

	if m.store != nil && id != "" {
		if scores, err := m.store.TopScores(id, scoreLimit); err != nil {
			m.logger.Warn("could not load scores", "game", id, "err", err)
		} else {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(id); err != nil {
			m.logger.Warn("could not load stats", "game", id, "err", err)
		} else {
			m.stats = *stats
		}
	}

	rows := make([]table.Row, 0, len(m.scores))
	for i, s := range m.scores {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(s.Score),
			strconv.Itoa(s.MaxTile),
			strconv.Itoa(s.Moves),
			s.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// cycle moves the mode selection by delta, wrapping around.
func (m *ScoreboardModel) cycle(delta int) {
	n := len(m.modes)
	if n == 0 {
		return
	}
	m.current = ((m.current+delta)%n + n) % n
	m.reload()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
		case key.Matches(msg, m.keys.next):
			m.cycle(1)
		case key.Matches(msg, m.keys.prev):
			m.cycle(-1)
		case key.Matches(msg, m.keys.up):
			m.table.MoveUp(1)
		case key.Matches(msg, m.keys.down):
			m.table.MoveDown(1)
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetColumns(scoreColumns(msg.Width))
		m.table.SetHeight(scoreRows(msg.Height))
		m.help.Width = msg.Width
	}
	return m, nil
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	body := emptyStyle.Render("No finished games yet.")
	if len(m.scores) > 0 {
		body = m.table.View()
	}

	page := lipgloss.JoinVertical(lipgloss.Center,
		boardTitleStyle.Render("HIGH SCORES"),
		"",
		m.modeStrip(),
		"",
		frameStyle.Render(body),
		summaryStyle.Render(m.summary()),
		"",
		m.help.View(m.keys),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Top, page)
}

// modeStrip renders one tab per mode with the selected one highlighted.
func (m ScoreboardModel) modeStrip() string {
	tabs := make([]string, len(m.modes))
	for i, info := range m.modes {
		if i == m.current {
			tabs[i] = modeActiveStyle.Render(info.Title)
		} else {
			tabs[i] = modeIdleStyle.Render(info.Title)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// summary is the aggregate line under the table.
func (m ScoreboardModel) summary() string {
	if m.stats.GamesCount == 0 {
		return ""
	}
	parts := []string{
		fmt.Sprintf("%d games", m.stats.GamesCount),
		fmt.Sprintf("best %d", m.stats.HighScore),
		fmt.Sprintf("top tile %d", m.stats.BestTile),
		fmt.Sprintf("avg %.0f", m.stats.AvgScore),
		"last " + m.stats.LastPlayed.Format("Jan 02"),
	}
	return strings.Join(parts, " · ")
}

// IsGoingBack reports whether the user asked for the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
