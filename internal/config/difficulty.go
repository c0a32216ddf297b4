package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means "no preset".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialIntervalForPreset returns the starting gravity interval for a preset.
// Returns 0 for presets that keep the configured interval.
func InitialIntervalForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 90
	case DifficultyNormal:
		return 60
	case DifficultyHard:
		return 30
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables the speed-up.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyBlocksPreset modifies the config based on a difficulty preset.
func ApplyBlocksPreset(cfg *BlocksConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Gravity.SpeedUp = false
		return
	}
	if interval := InitialIntervalForPreset(preset); interval > 0 {
		cfg.Gravity.SpeedUp = true
		cfg.Gravity.InitialInterval = interval
	}

	// Hard also shortens the lock delay
	if preset == DifficultyHard && cfg.Piece.LockDelay > 30 {
		cfg.Piece.LockDelay = 30
	}
}
