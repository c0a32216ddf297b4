package blocks

import "github.com/vovakirdan/tui-blocks/internal/config"

// Rules are the numeric parameters of one game.
type Rules struct {
	Cols int
	Rows int

	InitialGravity int
	GravityStep    int
	GravityFloor   int
	SpeedUp        bool

	BasePerLine   int
	LinesPerLevel int

	LockDelay int
}

// DefaultRules returns the reference 12 x 20 rules.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultBlocksConfig())
}

// RulesFromConfig copies the loaded YAML rules into engine rules.
func RulesFromConfig(c config.BlocksConfig) Rules {
	return Rules{
		Cols:           c.Board.Cols,
		Rows:           c.Board.Rows,
		InitialGravity: c.Gravity.InitialInterval,
		GravityStep:    c.Gravity.Step,
		GravityFloor:   c.Gravity.Floor,
		SpeedUp:        c.Gravity.SpeedUp,
		BasePerLine:    c.Scoring.BasePerLine,
		LinesPerLevel:  c.Scoring.LinesPerLevel,
		LockDelay:      c.Piece.LockDelay,
	}
}

// LevelUp records one level reached and the gravity interval that came with it.
type LevelUp struct {
	Level   int
	Gravity int
}

// ClearResult describes what one lock event's cleared rows did to the counters.
type ClearResult struct {
	Rows     int
	Points   int
	LevelUps []LevelUp
}

// Progression holds score, lines, level and the gravity interval.
type Progression struct {
	rules   Rules
	score   int
	lines   int
	level   int
	gravity int
}

// NewProgression creates counters at their initial values.
func NewProgression(r Rules) *Progression {
	p := &Progression{rules: r}
	p.Reset()
	return p
}

// Reset returns every counter to its initial value.
func (p *Progression) Reset() {
	p.score = 0
	p.lines = 0
	p.level = 1
	p.gravity = p.rules.InitialGravity
}

func (p *Progression) Score() int   { return p.score }
func (p *Progression) Lines() int   { return p.lines }
func (p *Progression) Level() int   { return p.level }
func (p *Progression) Gravity() int { return p.gravity }

// Apply scores rows cleared by a single lock. Points use the level in effect
// before this clear's level-ups, so the rows that reach a new level still
// score at the old one. Each line is counted separately so a multi-row clear
// that crosses a threshold levels up exactly once per threshold crossed.
func (p *Progression) Apply(rows int) ClearResult {
	res := ClearResult{Rows: rows}
	if rows <= 0 {
		return res
	}

	res.Points = p.rules.BasePerLine * p.level * rows
	p.score += res.Points

	for i := 0; i < rows; i++ {
		p.lines++
		if p.lines%p.rules.LinesPerLevel != 0 || p.gravity <= p.rules.GravityFloor {
			continue
		}
		p.level++
		if p.rules.SpeedUp {
			if p.gravity > p.rules.GravityStep*2 {
				p.gravity -= p.rules.GravityStep
			} else {
				p.gravity--
			}
		}
		res.LevelUps = append(res.LevelUps, LevelUp{Level: p.level, Gravity: p.gravity})
	}
	return res
}
