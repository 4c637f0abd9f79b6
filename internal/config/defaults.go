package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Rules: RulesConfig{
			WinTile:    2048,
			Spawn4Prob: 0.10,
		},
		Theme:      "light",
		Difficulty: DifficultyNormal,
		Storage: StorageConfig{
			DBPath: "~/.t2048/t2048.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
