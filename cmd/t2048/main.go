// t2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	t2048 play [mode]        - Play a mode (classic, endless, campaign)
//	t2048 menu               - Pick a mode interactively
//	t2048 serve              - Start SSH server for remote play
//	t2048 scores [mode]      - Show high scores
//	t2048 list               - List available modes
//	t2048 sim                - Headless seeded run
//	t2048 reset              - Delete scores, saved games and settings
//	t2048 config init|show   - Manage the config file
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible games
//	--db <path>         - Set database path (default from config: ~/.t2048/t2048.db)
//	--config <path>     - Use a specific config file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Join the tiles in your terminal",
	Long: `t2048 is the 2048 sliding-tile puzzle for the terminal.

Slide the board with the arrow keys, WASD or hjkl. Equal tiles merge;
reach 2048 to win, then keep going if you like.

Available commands:
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - Show all modes
  sim      - Headless deterministic run
  reset    - Wipe stored data

Examples:
  t2048 play
  t2048 play campaign --difficulty hard
  t2048 menu
  t2048 serve --ssh :2222
  t2048 sim --seed 42 --strategy corner`,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig reads the config file or exits.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger builds the stderr logger. The flag wins over the config level.
func newLogger(cfg config.Config) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
	})

	name := cfg.Log.Level
	if flagLogLevel != "" {
		name = flagLogLevel
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", name)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// dbPath returns the database path: flag, then config.
func dbPath(cfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	return cfg.Storage.DBPath
}

// openStore opens the database. Games still run without it.
func openStore(cfg config.Config, logger *log.Logger) *storage.Store {
	store, err := storage.Open(dbPath(cfg))
	if err != nil {
		logger.Warn("could not open database, scores will not be saved", "err", err)
		return nil
	}
	return store
}

// runtimeConfig builds the game config from the terminal size, the loaded
// config and the stored theme preference.
func runtimeConfig(cfg config.Config, store *storage.Store, logger *log.Logger) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc = cfg.Runtime(rc)

	rc.Seed = flagSeed
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	if store != nil {
		theme, ok, err := store.Setting(storage.SettingTheme)
		switch {
		case err != nil:
			logger.Warn("could not read theme setting", "err", err)
		case ok:
			rc.Theme = theme
		}
	}
	return rc
}

// modeID resolves a mode name or registry ID.
func modeID(arg string) (string, error) {
	switch arg {
	case "", string(game.ModeClassic), game.IDClassic:
		return game.IDClassic, nil
	case string(game.ModeEndless), game.IDEndless:
		return game.IDEndless, nil
	case string(game.ModeCampaign), game.IDCampaign:
		return game.IDCampaign, nil
	}
	return "", fmt.Errorf("unknown mode %q (run 't2048 list' to see available modes)", arg)
}
