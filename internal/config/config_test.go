package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "t2048.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v, want %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := writeConfig(t, `
rules:
  win_tile: 4096
theme: dark
difficulty: hard
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Rules.WinTile != 4096 {
		t.Errorf("WinTile = %d, want 4096", cfg.Rules.WinTile)
	}
	if cfg.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", cfg.Theme)
	}
	if cfg.Rules.Spawn4Prob != 0.20 {
		t.Errorf("Spawn4Prob = %v, want 0.20 from the hard preset", cfg.Rules.Spawn4Prob)
	}
	if cfg.Storage.DBPath != Default().Storage.DBPath {
		t.Errorf("unset keys should keep defaults, got DBPath %q", cfg.Storage.DBPath)
	}
}

func TestExplicitSpawnProbWins(t *testing.T) {
	path := writeConfig(t, `
rules:
  spawn4_prob: 0.5
difficulty: easy
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Rules.Spawn4Prob != 0.5 {
		t.Errorf("Spawn4Prob = %v, want 0.5", cfg.Rules.Spawn4Prob)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"win tile not power of two", "rules:\n  win_tile: 1000\n"},
		{"probability out of range", "rules:\n  spawn4_prob: 1.5\n"},
		{"unknown theme", "theme: neon\n"},
		{"unknown difficulty", "difficulty: brutal\n"},
		{"unknown key", "colour: red\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body)); err == nil {
				t.Error("Load() should fail")
			}
		})
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}

func TestEmptyFileUsesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("empty config = %+v, want defaults", cfg)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := Default()
	ApplyPreset(&cfg, DifficultyEasy)
	if cfg.Rules.Spawn4Prob != 0.05 || cfg.Difficulty != DifficultyEasy {
		t.Errorf("ApplyPreset(easy) = %+v", cfg)
	}

	before := cfg
	ApplyPreset(&cfg, "")
	if cfg != before {
		t.Error("empty preset should leave config untouched")
	}

	if _, ok := ParsePreset("hard"); !ok {
		t.Error("ParsePreset(hard) should succeed")
	}
	if _, ok := ParsePreset("insane"); ok {
		t.Error("ParsePreset(insane) should fail")
	}
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Theme = "dark"

	if err := Write(path, cfg); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}

func TestRuntime(t *testing.T) {
	cfg := Default()
	cfg.Theme = "dark"
	rt := cfg.Runtime(core.DefaultConfig())
	if rt.Theme != "dark" || rt.WinTile != 2048 || rt.Spawn4Prob != 0.10 {
		t.Errorf("Runtime() = %+v", rt)
	}
}
