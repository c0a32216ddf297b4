package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

// DefaultBlocksConfig returns the built-in rules.
// It mirrors defaults/blocks.yaml and is used when the embedded file cannot be parsed.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Board: BoardConfig{
			Cols: 12,
			Rows: 20,
		},
		Gravity: GravityConfig{
			InitialInterval: 90,
			Step:            3,
			Floor:           10,
			SpeedUp:         true,
		},
		Scoring: ScoringConfig{
			BasePerLine:   50,
			LinesPerLevel: 10,
		},
		Piece: PieceConfig{
			LockDelay: 45,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBlocksYAML
}
