package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/engine"
)

func TestAutoplayStopsAtMoveLimit(t *testing.T) {
	g := newTestGame(ModeClassic)
	g.Reset(testConfig())

	res := Autoplay(g, StrategyCycle, 5, nil)

	if res.Moves != 5 {
		t.Errorf("Moves = %d, want 5", res.Moves)
	}
	if res.GameOver {
		t.Error("Game should not be over after 5 moves")
	}
	if got := engine.TileCount(res.Board); got > 7 {
		t.Errorf("TileCount = %d, want at most 7 (two start tiles + one per move)", got)
	}
}

func TestAutoplayPlaysToTheEnd(t *testing.T) {
	for _, strategy := range Strategies {
		t.Run(string(strategy), func(t *testing.T) {
			g := newTestGame(ModeClassic)
			g.Reset(testConfig())

			res := Autoplay(g, strategy, 100000, rand.New(rand.NewSource(7)))

			if !res.GameOver {
				t.Fatalf("Game should end, stopped after %d moves", res.Moves)
			}
			if !engine.IsGameOver(res.Board) {
				t.Error("Final board should have no moves left")
			}
			if res.MaxTile != engine.MaxTile(res.Board) {
				t.Errorf("MaxTile = %d, board says %d", res.MaxTile, engine.MaxTile(res.Board))
			}
		})
	}
}

func TestAutoplayDeterministic(t *testing.T) {
	run := func() AutoplayResult {
		g := newTestGame(ModeEndless)
		g.Reset(testConfig())
		return Autoplay(g, StrategyRandom, 200, rand.New(rand.NewSource(99)))
	}

	a, b := run(), run()
	if a.Board.Values() != b.Board.Values() || a.Score != b.Score || a.Moves != b.Moves {
		t.Errorf("Same seeds should give the same run:\n%v\nvs\n%v", a.Board, b.Board)
	}
}

func TestAutoplayCampaignAdvances(t *testing.T) {
	g := newTestGame(ModeCampaign)
	g.Reset(testConfig())
	setBoard(t, g, [engine.Cells]int{
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		64, 64, 0, 0,
	})

	// Down is blocked, so the corner strategy merges left first.
	res := Autoplay(g, StrategyCorner, 3, nil)

	if res.Level < 2 {
		t.Errorf("Level = %d, want at least 2 after merging to 128", res.Level)
	}
}

func TestParseStrategy(t *testing.T) {
	for _, s := range Strategies {
		got, err := ParseStrategy(string(s))
		if err != nil || got != s {
			t.Errorf("ParseStrategy(%q) = %q, %v", s, got, err)
		}
	}
	if _, err := ParseStrategy("greedy"); err == nil {
		t.Error("ParseStrategy should reject unknown names")
	}
}

func TestBestScoreTracking(t *testing.T) {
	g := newTestGame(ModeClassic)
	g.Reset(testConfig())
	g.SetBest(10)

	setBoard(t, g, [engine.Cells]int{
		8, 8, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	})
	g.Move(engine.Left)

	if g.Best() != 16 {
		t.Errorf("Best() = %d, want 16 once the score passes it", g.Best())
	}

	g.Reset(testConfig())
	if g.Best() != 16 {
		t.Errorf("Reset should keep the best score, got %d", g.Best())
	}
}
