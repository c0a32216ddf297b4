package blocks

import (
	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
	"github.com/vovakirdan/tui-blocks/internal/registry"
)

const (
	flashFrames   = 8  // line-clear highlight
	levelUpFrames = 60 // level-up banner
	classicCols   = 10
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Mode selects the field width.
type Mode int

const (
	ModeStandard Mode = iota // width from config, 12 by default
	ModeClassic              // 10 columns
)

// Game adapts the Engine to the platform's registry.Game interface.
type Game struct {
	mode    Mode
	runtime core.RuntimeConfig
	cfg     config.BlocksConfig
	engine  *Engine

	flashRows   []int
	flashTicks  int
	bannerLevel int
	bannerTicks int
	tooSmall    bool
	lastEvents  []Event
}

// New creates the standard mode.
func New() *Game {
	return &Game{mode: ModeStandard}
}

// NewClassic creates the 10-column mode.
func NewClassic() *Game {
	return &Game{mode: ModeClassic}
}

func init() {
	registry.Register("blocks", func() registry.Game {
		return New()
	})
	registry.Register("blocks_classic", func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "blocks_classic"
	}
	return "blocks"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Blocks (Classic 10x20)"
	}
	return "Blocks"
}

// Reset loads the rules and builds a fresh engine in the Menu state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBlocks(configPath)
	if err != nil {
		cfg = config.DefaultBlocksConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBlocksPreset(&cfg, difficultyPreset)
	}
	if g.mode == ModeClassic {
		cfg = cfg.WithBoard(classicCols, cfg.Board.Rows)
	}
	g.cfg = cfg

	g.engine = NewEngine(RulesFromConfig(cfg), runtime.Seed)
	g.flashRows = nil
	g.flashTicks = 0
	g.bannerLevel = 0
	g.bannerTicks = 0
	g.lastEvents = nil
}

// Config returns the rules in effect after the last Reset.
func (g *Game) Config() config.BlocksConfig {
	return g.cfg
}

// Engine exposes the underlying engine.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Snapshot returns the engine snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.engine.Snapshot()
}

// Events returns the events produced by the last Step.
func (g *Game) Events() []Event {
	return g.lastEvents
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.flashTicks > 0 {
		g.flashTicks--
	}
	if g.bannerTicks > 0 {
		g.bannerTicks--
	}

	cmds := CommandsFromInput(in)
	if g.tooSmall && g.engine.State() == StatePlaying {
		// frozen until the terminal is large enough again
		g.lastEvents = nil
		return core.StepResult{State: g.State()}
	}

	events := g.engine.Tick(cmds)
	g.lastEvents = events

	var notices []string
	for _, ev := range events {
		switch ev.Kind {
		case EventLineClear:
			g.flashRows = ev.Rows
			g.flashTicks = flashFrames
			notices = append(notices, ev.String())
		case EventLevelUp:
			g.bannerLevel = ev.Level
			g.bannerTicks = levelUpFrames
			notices = append(notices, ev.String())
		case EventGameOver:
			notices = append(notices, ev.String())
		case EventStateChanged:
			if ev.To == StatePlaying && ev.From == StateGameOver {
				g.flashTicks = 0
				g.bannerTicks = 0
			}
		}
	}

	return core.StepResult{State: g.State(), Notices: notices}
}

// State returns the platform summary.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{Level: 1}
	}
	s := g.engine.State()
	return core.GameState{
		Score:    g.engine.progress.Score(),
		Lines:    g.engine.progress.Lines(),
		Level:    g.engine.progress.Level(),
		Ticks:    g.engine.tick,
		GameOver: s == StateGameOver,
		Paused:   s == StatePaused,
	}
}
