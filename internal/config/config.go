// Package config provides YAML-based rule loading and difficulty presets
// for the blocks game.
package config

import (
	"errors"
	"fmt"
)

// BlocksConfig contains every tunable rule of the game.
type BlocksConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Gravity GravityConfig `yaml:"gravity"`
	Scoring ScoringConfig `yaml:"scoring"`
	Piece   PieceConfig   `yaml:"piece"`
}

// BoardConfig defines the playfield dimensions in cells.
type BoardConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// GravityConfig defines the speed curve.
// The interval is the number of ticks between forced downward steps.
type GravityConfig struct {
	InitialInterval int  `yaml:"initial_interval"`
	Step            int  `yaml:"step"`     // Decrease per level-up
	Floor           int  `yaml:"floor"`    // No level-ups at or below this interval
	SpeedUp         bool `yaml:"speed_up"` // false keeps the interval fixed
}

// ScoringConfig defines line scoring and leveling.
type ScoringConfig struct {
	BasePerLine   int `yaml:"base_per_line"`
	LinesPerLevel int `yaml:"lines_per_level"`
}

// PieceConfig defines per-piece timing.
type PieceConfig struct {
	LockDelay int `yaml:"lock_delay"` // Ticks a resting piece waits before locking
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid blocks config")

// Pieces spawn with their left edge at column cols/2-1 and the widest piece
// spans four columns, so every board needs room for that span.
const (
	widestPiece = 4
	MinCols     = 5
	MinRows     = 4
)

func spawnFits(cols int) bool {
	return cols/2-1+widestPiece <= cols
}

// Validate checks that the rules describe a playable game.
func (c BlocksConfig) Validate() error {
	switch {
	case !spawnFits(c.Board.Cols):
		return fmt.Errorf("%w: board.cols must be at least %d, got %d", ErrInvalidConfig, MinCols, c.Board.Cols)
	case c.Board.Rows < MinRows:
		return fmt.Errorf("%w: board.rows must be at least %d, got %d", ErrInvalidConfig, MinRows, c.Board.Rows)
	case c.Gravity.InitialInterval <= 0:
		return fmt.Errorf("%w: gravity.initial_interval must be positive", ErrInvalidConfig)
	case c.Gravity.Step < 0:
		return fmt.Errorf("%w: gravity.step must not be negative", ErrInvalidConfig)
	case c.Gravity.Floor < 1:
		return fmt.Errorf("%w: gravity.floor must be at least 1", ErrInvalidConfig)
	case c.Scoring.BasePerLine < 0:
		return fmt.Errorf("%w: scoring.base_per_line must not be negative", ErrInvalidConfig)
	case c.Scoring.LinesPerLevel <= 0:
		return fmt.Errorf("%w: scoring.lines_per_level must be positive", ErrInvalidConfig)
	case c.Piece.LockDelay < 0:
		return fmt.Errorf("%w: piece.lock_delay must not be negative", ErrInvalidConfig)
	}
	return nil
}

// WithBoard returns a copy of the config with a different field size.
func (c BlocksConfig) WithBoard(cols, rows int) BlocksConfig {
	c.Board = BoardConfig{Cols: cols, Rows: rows}
	return c
}
