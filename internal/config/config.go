// Package config provides YAML-based configuration loading for the game,
// including rule tweaks, the color theme and difficulty presets.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Config is the top-level configuration.
type Config struct {
	Rules      RulesConfig      `yaml:"rules"`
	Theme      string           `yaml:"theme"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
	Storage    StorageConfig    `yaml:"storage"`
	Log        LogConfig        `yaml:"log"`
}

// RulesConfig tunes the game rules.
type RulesConfig struct {
	WinTile    int     `yaml:"win_tile"`
	Spawn4Prob float64 `yaml:"spawn4_prob"`
}

// StorageConfig locates the score database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig sets the log level.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Validate checks the loaded values.
func (c Config) Validate() error {
	if w := c.Rules.WinTile; w != 0 && (w < 4 || w&(w-1) != 0) {
		return fmt.Errorf("config: win_tile %d is not a power of two >= 4", w)
	}
	if p := c.Rules.Spawn4Prob; p < 0 || p > 1 {
		return fmt.Errorf("config: spawn4_prob %v out of range [0, 1]", p)
	}
	switch c.Theme {
	case "", core.ThemeLight, core.ThemeDark:
	default:
		return fmt.Errorf("config: unknown theme %q", c.Theme)
	}
	if _, ok := presetSpawn4[c.Difficulty]; !ok && c.Difficulty != "" {
		return fmt.Errorf("config: unknown difficulty %q", c.Difficulty)
	}
	return nil
}

// Runtime fills the rule and theme fields of a RuntimeConfig.
func (c Config) Runtime(base core.RuntimeConfig) core.RuntimeConfig {
	base.WinTile = c.Rules.WinTile
	base.Spawn4Prob = c.Rules.Spawn4Prob
	if c.Theme != "" {
		base.Theme = c.Theme
	}
	return base
}
