package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/game"
)

func TestScoreboardCyclesModes(t *testing.T) {
	store := testStore(t)
	if _, err := store.SaveScore(game.IDClassic, 900, 64, 80); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if _, err := store.SaveScore(game.IDEndless, 4000, 256, 300); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	m := NewScoreboardModel(store, 80, 30, quietLogger())
	if m.mode() != game.IDClassic || len(m.scores) != 1 || m.scores[0].Score != 900 {
		t.Fatalf("Opened on %q with %+v, want the classic score", m.mode(), m.scores)
	}

	seen := map[string]int{}
	for range m.modes {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
		m = next.(ScoreboardModel)
		seen[m.mode()] = len(m.scores)
	}
	if seen[game.IDEndless] != 1 || seen[game.IDCampaign] != 0 {
		t.Errorf("Rows per mode = %v, want one endless and no campaign scores", seen)
	}
	if m.mode() != game.IDClassic {
		t.Errorf("A full cycle should wrap back to classic, got %q", m.mode())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = next.(ScoreboardModel)
	if m.mode() != m.modes[len(m.modes)-1].ID {
		t.Errorf("Left from the first mode should wrap to the last, got %q", m.mode())
	}
}

func TestScoreboardView(t *testing.T) {
	store := testStore(t)
	store.SaveScore(game.IDClassic, 2500, 256, 150)

	m := NewScoreboardModel(store, 80, 30, quietLogger())
	view := m.View()
	for _, want := range []string{"HIGH SCORES", "Endless", "2500", "1 games"} {
		if !strings.Contains(view, want) {
			t.Errorf("View should contain %q, got:\n%s", want, view)
		}
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if !strings.Contains(m.View(), "No finished games yet.") {
		t.Error("A mode without scores should show the empty note")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 30, quietLogger())

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	back := next.(ScoreboardModel)
	if !back.IsGoingBack() || back.IsQuitting() || cmd != nil {
		t.Error("Esc should return to the menu without quitting")
	}

	next, cmd = m.Update(keyRunes("q"))
	if !next.(ScoreboardModel).IsQuitting() || cmd == nil {
		t.Error("q should quit the program")
	}
}

func TestScoreColumnsFitWidth(t *testing.T) {
	narrow, wide := scoreColumns(40), scoreColumns(200)
	if narrow[4].Width != dateColWidth {
		t.Errorf("Narrow date width = %d, want %d", narrow[4].Width, dateColWidth)
	}
	if wide[4].Width != dateColWidth+8 {
		t.Errorf("Wide date width = %d, want %d", wide[4].Width, dateColWidth+8)
	}
	if scoreRows(5) != 3 {
		t.Errorf("scoreRows(5) = %d, want the minimum of 3", scoreRows(5))
	}
}
