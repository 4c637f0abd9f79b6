package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start 2048 in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
Esc in a game returns to the menu; the game is saved.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - High scores
  T            - Toggle light/dark theme
  Q            - Quit

Examples:
  t2048 menu
  t2048 menu --db ./t2048.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger := newLogger(cfg)
	store := openStore(cfg, logger)

	err := tui.RunSession(store, runtimeConfig(cfg, store, logger), logger)

	if store != nil {
		store.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
