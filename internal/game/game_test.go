package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/engine"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    42,
		Theme:   core.ThemeLight,
	}
}

// setBoard replaces the game board with the given values.
func setBoard(t *testing.T, g *Game, vals [engine.Cells]int) {
	t.Helper()
	b, err := engine.FromValues(vals, g.ids)
	if err != nil {
		t.Fatalf("FromValues() failed: %v", err)
	}
	g.board = b
}

func step(g *Game, actions ...core.Action) core.StepResult {
	return g.Step(core.FrameOf(actions...))
}

func newTestGame(mode Mode) *Game {
	return New(mode, WithIDSource(&engine.CounterSource{}))
}

func TestResetSpawnsTwoTiles(t *testing.T) {
	g := newTestGame(ModeClassic)
	g.Reset(testConfig())

	if n := engine.TileCount(g.board); n != 2 {
		t.Errorf("TileCount after Reset = %d, want 2", n)
	}
	if g.score != 0 || g.moves != 0 {
		t.Errorf("Reset should zero score and moves, got %d/%d", g.score, g.moves)
	}
}

func TestDeterministicReset(t *testing.T) {
	g1 := newTestGame(ModeClassic)
	g1.Reset(testConfig())

	g2 := newTestGame(ModeClassic)
	g2.Reset(testConfig())

	if g1.Save().Cells != g2.Save().Cells {
		t.Errorf("Same seed should produce same initial board:\n%v\nvs\n%v", g1.board, g2.board)
	}
}

func TestMoveSpawnsExactlyOnce(t *testing.T) {
	g := newTestGame(ModeClassic)
	g.Reset(testConfig())
	setBoard(t, g, [engine.Cells]int{2, 2})

	res := step(g, core.ActionLeft)

	if !res.Changed {
		t.Fatal("Step should report a change")
	}
	if res.State.Score != 4 {
		t.Errorf("Score = %d, want 4", res.State.Score)
	}
	if n := engine.TileCount(g.board); n != 2 {
		t.Errorf("TileCount = %d, want 2 (merged tile + one spawn)", n)
	}
	spawned := 0
	for _, tile := range g.board {
		if tile.Spawned {
			spawned++
		}
	}
	if spawned != 1 {
		t.Errorf("spawned tiles = %d, want 1", spawned)
	}
	if g.moves != 1 {
		t.Errorf("moves = %d, want 1", g.moves)
	}
}

func TestUnchangedMoveDoesNotSpawn(t *testing.T) {
	g := newTestGame(ModeClassic)
	g.Reset(testConfig())
	setBoard(t, g, [engine.Cells]int{2, 4})

	res := step(g, core.ActionLeft)

	if res.Changed {
		t.Error("Step should not report a change")
	}
	if n := engine.TileCount(g.board); n != 2 {
		t.Errorf("TileCount = %d, want 2", n)
	}
	if g.moves != 0 {
		t.Errorf("moves = %d, want 0", g.moves)
	}
}

func TestWinNotifiesOnce(t *testing.T) {
	g := newTestGame(ModeClassic)
	g.Reset(testConfig())
	setBoard(t, g, [engine.Cells]int{1024, 1024})

	res := step(g, core.ActionLeft)
	if !res.State.Won {
		t.Fatal("Reaching 2048 should show the win notification")
	}

	// Moves are blocked until the player continues
	before := g.board
	step(g, core.ActionRight)
	if g.board != before {
		t.Error("Moves should be ignored while the win notification shows")
	}

	res = step(g, core.ActionContinue)
	if res.State.Won {
		t.Fatal("Continue should dismiss the notification")
	}

	// A second 2048 in the same game does not notify again
	setBoard(t, g, [engine.Cells]int{
		2048, 0, 0, 0,
		1024, 1024, 0, 0,
	})
	res = step(g, core.ActionLeft)
	if res.State.Won {
		t.Error("Win notification should fire only once per game")
	}

	// A new game re-arms it
	g.Reset(testConfig())
	setBoard(t, g, [engine.Cells]int{1024, 1024})
	if res = step(g, core.ActionLeft); !res.State.Won {
		t.Error("Win notification should fire again after Reset")
	}
}

func TestRestoreWonBoardDoesNotNotify(t *testing.T) {
	g := newTestGame(ModeClassic)
	err := g.Restore(testConfig(), registry.SaveState{
		Cells: [engine.Cells]int{2048, 0, 2, 2},
		Score: 20000,
	})
	if err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}

	res := step(g, core.ActionLeft)
	if !res.Changed {
		t.Fatal("move should change the board")
	}
	if res.State.Won {
		t.Error("Restored game that already won should not notify again")
	}
	if res.State.Score != 20004 {
		t.Errorf("Score = %d, want 20004", res.State.Score)
	}
}

func TestSaveRestoreRoundTrip(t *testing.T) {
	g := newTestGame(ModeCampaign)
	g.Reset(testConfig())
	setBoard(t, g, [engine.Cells]int{2, 4, 8, 16, 0, 0, 32})
	g.score = 123
	g.moves = 9
	g.levelIndex = 2

	saved := g.Save()
	if saved.Level != 3 {
		t.Errorf("Save().Level = %d, want 3", saved.Level)
	}

	g2 := newTestGame(ModeCampaign)
	if err := g2.Restore(testConfig(), saved); err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}
	if g2.Save() != saved {
		t.Errorf("round trip mismatch: got %+v, want %+v", g2.Save(), saved)
	}
	if g2.currentTarget != 512 {
		t.Errorf("currentTarget = %d, want 512", g2.currentTarget)
	}
}

func TestRestoreRejectsInvalidBoard(t *testing.T) {
	g := newTestGame(ModeClassic)
	err := g.Restore(testConfig(), registry.SaveState{Cells: [engine.Cells]int{3}})
	if err == nil {
		t.Fatal("Restore() should reject a non power of two")
	}

	err = g.Restore(testConfig(), registry.SaveState{Score: -1})
	if err == nil {
		t.Fatal("Restore() should reject a negative score")
	}
}

func TestGameOverBlocksMoves(t *testing.T) {
	g := newTestGame(ModeClassic)
	err := g.Restore(testConfig(), registry.SaveState{
		Cells: [engine.Cells]int{
			2, 4, 2, 4,
			4, 2, 4, 2,
			2, 4, 2, 4,
			4, 2, 4, 2,
		},
		Score: 50,
	})
	if err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}

	res := step(g, core.ActionUp)
	if !res.State.GameOver {
		t.Error("Full board without merges should be game over")
	}
	if res.Changed {
		t.Error("No move should be applied after game over")
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("Snapshot State = %s, want game_over", g.Snapshot().State)
	}
}

func TestCampaignProgression(t *testing.T) {
	g := newTestGame(ModeCampaign)
	g.Reset(testConfig())
	setBoard(t, g, [engine.Cells]int{64, 64})

	step(g, core.ActionLeft)
	if !g.levelCleared {
		t.Fatal("Should detect level cleared when target tile is reached")
	}

	// Moves are blocked on the banner
	if res := step(g, core.ActionRight); res.Changed {
		t.Error("Moves should be ignored while the level banner shows")
	}

	step(g, core.ActionContinue)
	if g.levelIndex != 1 {
		t.Errorf("Should advance to level 2, got level %d", g.levelIndex+1)
	}
	if g.currentTarget != 256 {
		t.Errorf("currentTarget = %d, want 256", g.currentTarget)
	}
}

func TestRestoreClearedLevel(t *testing.T) {
	g := newTestGame(ModeCampaign)
	err := g.Restore(testConfig(), registry.SaveState{
		Cells: [engine.Cells]int{128, 2},
		Score: 1200,
		Level: 1,
	})
	if err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}
	if g.Snapshot().State != StateLevelCleared {
		t.Fatalf("Snapshot State = %s, want the level-clear banner", g.Snapshot().State)
	}

	step(g, core.ActionContinue)
	if g.levelIndex != 1 || g.levelCleared {
		t.Errorf("level = %d cleared = %v, want level 2 in play", g.levelIndex+1, g.levelCleared)
	}
}

func TestCampaignStartLevel(t *testing.T) {
	g := New(ModeCampaign, WithIDSource(&engine.CounterSource{}), WithStartLevel(7))
	g.Reset(testConfig())

	snap := g.Snapshot()
	if snap.Level != 7 || snap.Target != 8192 {
		t.Errorf("Snapshot level/target = %d/%d, want 7/8192", snap.Level, snap.Target)
	}
	if g.spawner.Spawn4Prob != 0.15 {
		t.Errorf("Spawn4Prob = %v, want 0.15", g.spawner.Spawn4Prob)
	}
}

func TestCampaignComplete(t *testing.T) {
	g := newTestGame(ModeCampaign)
	g.Reset(testConfig())
	g.levelIndex = LevelCount() - 1
	g.currentTarget = 8192
	setBoard(t, g, [engine.Cells]int{4096, 4096})

	step(g, core.ActionLeft)
	step(g, core.ActionContinue)

	if !g.State().GameOver {
		t.Error("Finishing the last level should end the game")
	}
	if g.Snapshot().State != StateCampaignDone {
		t.Errorf("Snapshot State = %s, want campaign_complete", g.Snapshot().State)
	}
}

func TestEndlessModeNoWin(t *testing.T) {
	g := newTestGame(ModeEndless)
	g.Reset(testConfig())
	setBoard(t, g, [engine.Cells]int{1024, 1024})

	res := step(g, core.ActionLeft)

	if res.State.Won {
		t.Error("Endless mode should not have win state")
	}
	if g.levelCleared {
		t.Error("Endless mode should not have level cleared")
	}
}

func TestPauseBlocksMoves(t *testing.T) {
	g := newTestGame(ModeClassic)
	g.Reset(testConfig())
	setBoard(t, g, [engine.Cells]int{2, 2})

	step(g, core.ActionPause)
	if res := step(g, core.ActionLeft); res.Changed || !res.State.Paused {
		t.Error("Paused game should ignore moves")
	}

	step(g, core.ActionPause)
	if res := step(g, core.ActionLeft); !res.Changed {
		t.Error("Unpaused game should accept moves")
	}
}

func TestClearCues(t *testing.T) {
	g := newTestGame(ModeClassic)
	g.Reset(testConfig())
	g.ClearCues()

	for i, tile := range g.board {
		if tile.Spawned || tile.Merged {
			t.Errorf("index %d still carries a cue", i)
		}
	}
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(ModeCampaign)
	g.Reset(testConfig())

	snap := g.Snapshot()

	if snap.Mode != "campaign" {
		t.Errorf("Snapshot Mode = %s, want campaign", snap.Mode)
	}
	if snap.Level != 1 {
		t.Errorf("Snapshot Level = %d, want 1", snap.Level)
	}
	if snap.Target != 128 {
		t.Errorf("Snapshot Target = %d, want 128", snap.Target)
	}
	if snap.State != StatePlaying {
		t.Errorf("Snapshot State = %s, want playing", snap.State)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(ModeClassic)
	g.Reset(testConfig())
	setBoard(t, g, [engine.Cells]int{2048, 0, 0, 0, 0, 16})

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Score: 0", "2048", "16", "Moves: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render output missing %q", want)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	cfg := testConfig()
	cfg.ScreenW = 20
	cfg.ScreenH = 8

	g := newTestGame(ModeClassic)
	g.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("Small screen should show the resize hint")
	}
}

func TestRegistryModes(t *testing.T) {
	for _, id := range []string{IDClassic, IDEndless, IDCampaign} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("Create(%q).ID() = %q", id, g.ID())
		}
		if _, ok := ModeFor(id); !ok {
			t.Errorf("ModeFor(%q) not found", id)
		}
	}
}

func TestLevelCount(t *testing.T) {
	if LevelCount() != 10 {
		t.Errorf("LevelCount() = %d, want 10", LevelCount())
	}
	if GetLevel(-1) != nil || GetLevel(10) != nil {
		t.Error("GetLevel out of range should return nil")
	}
}
