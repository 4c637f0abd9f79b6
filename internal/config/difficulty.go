package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// presetSpawn4 maps each preset to the chance of spawning a 4.
var presetSpawn4 = map[DifficultyPreset]float64{
	DifficultyEasy:   0.05,
	DifficultyNormal: 0.10,
	DifficultyHard:   0.20,
}

// ParsePreset validates a preset name. Empty means "keep config".
func ParsePreset(s string) (DifficultyPreset, bool) {
	p := DifficultyPreset(s)
	if s == "" {
		return p, true
	}
	_, ok := presetSpawn4[p]
	return p, ok
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	prob, ok := presetSpawn4[preset]
	if !ok {
		return
	}
	cfg.Difficulty = preset
	cfg.Rules.Spawn4Prob = prob
}
