package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var (
	flagDifficulty string
	flagResume     bool
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game",
	Long: `Start playing 2048. The mode defaults to classic.

Modes:
  classic   - Reach 2048 to win, then keep going
  endless   - No target, play until stuck
  campaign  - Ten levels with rising targets

Controls:
  Arrows/WASD/hjkl - Slide
  C                - Keep playing after a win / next level
  P                - Pause
  R                - New game
  ?                - Help
  Q/Ctrl+C         - Quit

Difficulty options (chance of spawning a 4):
  easy   - 5%
  normal - 10%
  hard   - 20%

The game is saved after every move and resumed next time unless
--resume=false is given.

Examples:
  t2048 play
  t2048 play endless --difficulty easy
  t2048 play campaign --level 3
  t2048 play --seed 42 --resume=false`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagResume, "resume", true, "Resume the saved game for this mode")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign start level (1-10)")
}

func runPlay(_ *cobra.Command, args []string) {
	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	gameID, err := modeID(arg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := loadConfig()
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		os.Exit(1)
	}
	config.ApplyPreset(&cfg, preset)

	if flagLevel < 0 || flagLevel > game.LevelCount() {
		fmt.Fprintf(os.Stderr, "Error: level must be between 1 and %d\n", game.LevelCount())
		os.Exit(1)
	}

	logger := newLogger(cfg)

	g, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	resume := flagResume
	if lg, ok := g.(*game.Game); ok && flagLevel > 0 {
		lg.SetStartLevel(flagLevel)
		resume = false // An explicit level starts fresh
	}

	store := openStore(cfg, logger)
	rc := runtimeConfig(cfg, store, logger)

	runErr := tui.Run(g, store, rc, tui.Options{
		Resume: resume,
		Logger: logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
