package blocks

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-blocks/internal/config"
	"github.com/vovakirdan/tui-blocks/internal/core"
)

func newPlaying(t *testing.T, seed int64) *Engine {
	t.Helper()
	e := NewEngine(DefaultRules(), seed)
	e.Tick(Commands{Start: true})
	require.Equal(t, StatePlaying, e.State())
	return e
}

// force replaces the active piece with a fresh one of the given variant.
func force(e *Engine, v Variant) {
	e.active = NewPiece(v)
	e.active.SetPosition(e.spawnAnchor)
	e.refreshGhost()
}

func findEvent(events []Event, kind EventKind) (Event, bool) {
	for _, ev := range events {
		if ev.Kind == kind {
			return ev, true
		}
	}
	return Event{}, false
}

func TestEngineStartsInMenu(t *testing.T) {
	e := NewEngine(DefaultRules(), 1)
	assert.Equal(t, StateMenu, e.State())

	s := e.Snapshot()
	require.NotNil(t, s.Active)
	assert.Equal(t, core.Pt(5, 0), s.Active.Anchor)
	assert.Equal(t, 5, s.BagLen)
	assert.Nil(t, s.Held)
	assert.True(t, s.CanHold)

	events := e.Tick(Commands{Left: true, HardDrop: true, Hold: true, Pause: true})
	assert.Empty(t, events)
	assert.Equal(t, s, e.Snapshot(), "menu must not advance gameplay")

	events = e.Tick(Commands{Start: true})
	require.Len(t, events, 1)
	assert.Equal(t, EventStateChanged, events[0].Kind)
	assert.Equal(t, StateMenu, events[0].From)
	assert.Equal(t, StatePlaying, events[0].To)
}

func TestEnginePauseFreezesWorld(t *testing.T) {
	e := newPlaying(t, 1)
	for i := 0; i < 30; i++ {
		e.Tick(Commands{})
	}

	e.Tick(Commands{Pause: true})
	require.Equal(t, StatePaused, e.State())
	frozen := e.Snapshot()

	for i := 0; i < 200; i++ {
		e.Tick(Commands{Down: true, HardDrop: true, Hold: true})
	}
	assert.Equal(t, frozen, e.Snapshot())

	e.Tick(Commands{Pause: true})
	assert.Equal(t, StatePlaying, e.State())
}

func TestEngineGravityMovesActivePiece(t *testing.T) {
	e := newPlaying(t, 1)
	start := e.Snapshot().Active.Anchor

	for i := 0; i < e.Rules().InitialGravity; i++ {
		e.Tick(Commands{})
	}
	assert.Equal(t, start.Down(1), e.Snapshot().Active.Anchor)
}

func TestEngineHardDrop(t *testing.T) {
	e := newPlaying(t, 3)
	before := e.Snapshot()
	want := before.Ghost.Anchor.Y - before.Active.Anchor.Y

	events := e.Tick(Commands{HardDrop: true})

	ev, ok := findEvent(events, EventHardDrop)
	require.True(t, ok)
	assert.Equal(t, want, ev.Distance)
	_, ok = findEvent(events, EventLock)
	assert.True(t, ok)

	after := e.Snapshot()
	require.Len(t, after.Board, 4)
	for i, c := range after.Board {
		assert.Contains(t, before.Ghost.Cells, c.Pos, "cell %d", i)
		assert.Equal(t, before.Active.Variant.Color(), c.Tag)
	}
	assert.Equal(t, before.Next.Variant, after.Active.Variant)
	assert.Equal(t, e.SpawnAnchor(), after.Active.Anchor)
	assert.True(t, after.CanHold)
}

func TestEngineLockAfterPieceDeactivates(t *testing.T) {
	e := newPlaying(t, 5)
	first := e.Snapshot().Active.Variant

	locked := false
	for i := 0; i < 5000 && !locked; i++ {
		events := e.Tick(Commands{Down: true})
		_, locked = findEvent(events, EventLock)
	}
	require.True(t, locked)
	assert.Equal(t, 4, len(e.Snapshot().Board))
	for _, c := range e.Snapshot().Board {
		assert.Equal(t, first.Color(), c.Tag)
	}
}

func TestEngineHoldIsExclusive(t *testing.T) {
	e := newPlaying(t, 9)
	s0 := e.Snapshot()

	e.Hold()
	s1 := e.Snapshot()
	require.NotNil(t, s1.Held)
	assert.Equal(t, s0.Active.Variant, s1.Held.Variant)
	assert.Equal(t, s0.Next.Variant, s1.Active.Variant)
	assert.False(t, s1.CanHold)

	e.Hold()
	assert.Equal(t, s1, e.Snapshot(), "second hold before a lock is a no-op")
}

func TestEngineHoldSwap(t *testing.T) {
	e := newPlaying(t, 11)
	a := e.Snapshot().Active.Variant

	e.Tick(Commands{Hold: true})
	e.Tick(Commands{HardDrop: true})
	c := e.Snapshot().Active.Variant
	require.True(t, e.Snapshot().CanHold)

	events := e.Tick(Commands{Hold: true})
	_, ok := findEvent(events, EventHold)
	assert.True(t, ok)

	s := e.Snapshot()
	assert.Equal(t, a, s.Active.Variant)
	assert.Equal(t, e.SpawnAnchor(), s.Active.Anchor)
	canonical := NewPiece(a)
	canonical.SetPosition(e.SpawnAnchor())
	assert.Equal(t, canonical.Cells(), s.Active.Cells, "held piece comes back in canonical orientation")
	assert.Equal(t, c, s.Held.Variant)
	assert.False(t, s.CanHold)
}

func TestEngineHoldTakesPrecedenceOverHardDrop(t *testing.T) {
	e := newPlaying(t, 13)
	s0 := e.Snapshot()

	e.Tick(Commands{Hold: true, HardDrop: true})

	s := e.Snapshot()
	assert.Equal(t, s0.Active.Variant, s.Held.Variant)
	require.Len(t, s.Board, 4)
	for _, c := range s.Board {
		assert.Equal(t, s0.Next.Variant.Color(), c.Tag, "the replacement piece is the one dropped")
	}
}

func TestEngineLineClear(t *testing.T) {
	e := newPlaying(t, 1)
	force(e, VariantBar)
	fillRow(e.board, 19, 5, 6, 7, 8)

	events := e.Tick(Commands{HardDrop: true})

	ev, ok := findEvent(events, EventLineClear)
	require.True(t, ok)
	assert.Equal(t, 1, ev.Count)
	assert.Equal(t, []int{19}, ev.Rows)
	assert.Equal(t, 50, ev.Score)

	s := e.Snapshot()
	assert.Empty(t, s.Board)
	assert.Equal(t, 50, s.Score)
	assert.Equal(t, 1, s.Lines)
}

func TestEngineMultiLineClearCollapses(t *testing.T) {
	e := newPlaying(t, 1)
	force(e, VariantSquare)
	fillRow(e.board, 19, 5, 6)
	fillRow(e.board, 18, 5, 6)
	put(e.board, 0, 17)
	put(e.board, 1, 16)

	e.Tick(Commands{HardDrop: true})

	s := e.Snapshot()
	assert.Equal(t, 100, s.Score)
	assert.Equal(t, 2, s.Lines)
	require.Len(t, s.Board, 2)
	assert.Equal(t, core.Pt(1, 18), s.Board[0].Pos)
	assert.Equal(t, core.Pt(0, 19), s.Board[1].Pos)
}

func TestEngineLevelUpEvent(t *testing.T) {
	e := newPlaying(t, 1)
	e.progress.lines = 9
	force(e, VariantBar)
	fillRow(e.board, 19, 5, 6, 7, 8)

	events := e.Tick(Commands{HardDrop: true})

	ev, ok := findEvent(events, EventLevelUp)
	require.True(t, ok)
	assert.Equal(t, 2, ev.Level)
	assert.Equal(t, 87, ev.Gravity)
	assert.Equal(t, 87, e.Snapshot().Gravity)
}

func TestEngineGameOverOnSpawnCollision(t *testing.T) {
	e := newPlaying(t, 1)
	for y := 3; y < 20; y++ {
		fillRow(e.board, y, 0)
	}
	force(e, VariantBar)
	e.next = NewPiece(VariantL1)

	events := e.Tick(Commands{HardDrop: true})

	_, ok := findEvent(events, EventGameOver)
	require.True(t, ok)
	s := e.Snapshot()
	assert.Equal(t, StateGameOver, s.State)
	assert.Nil(t, s.Ghost)
	assert.False(t, s.Active.Active)
	assert.Equal(t, VariantL1, s.Next.Variant, "next piece is not promoted on a blocked spawn")
}

func TestEngineGameOverWhenLockedAtSpawn(t *testing.T) {
	e := newPlaying(t, 1)
	for y := 2; y < 20; y++ {
		fillRow(e.board, y, 0)
	}
	force(e, VariantSquare)

	events := e.Tick(Commands{HardDrop: true})

	ev, ok := findEvent(events, EventHardDrop)
	require.True(t, ok)
	assert.Zero(t, ev.Distance)
	assert.Equal(t, StateGameOver, e.State())
}

func TestEngineGameOverIgnoresGameplay(t *testing.T) {
	e := newPlaying(t, 1)
	playToGameOver(t, e)
	s := e.Snapshot()

	assert.Empty(t, e.Tick(Commands{HardDrop: true, Hold: true, Pause: true, Left: true}))
	assert.Equal(t, s, e.Snapshot())
}

func playToGameOver(t *testing.T, e *Engine) {
	t.Helper()
	for i := 0; i < 500 && e.State() != StateGameOver; i++ {
		e.Tick(Commands{HardDrop: true})
	}
	require.Equal(t, StateGameOver, e.State())
}

func TestEngineRestartIsIdempotent(t *testing.T) {
	var first Snapshot
	for seed := int64(1); seed <= 5; seed++ {
		e := newPlaying(t, seed)
		// vary the state reached before game over
		for i := 0; i < int(seed)*40; i++ {
			e.Tick(Commands{Left: i%3 == 0, Rotate: i%7 == 0, Hold: i == 10})
		}
		playToGameOver(t, e)

		events := e.Tick(Commands{Restart: true})
		ev, ok := findEvent(events, EventStateChanged)
		require.True(t, ok)
		assert.Equal(t, StateGameOver, ev.From)
		assert.Equal(t, StatePlaying, ev.To)

		s := e.Snapshot()
		assert.Equal(t, StatePlaying, s.State)
		assert.Empty(t, s.Board)
		assert.Zero(t, s.Score)
		assert.Zero(t, s.Lines)
		assert.Equal(t, 1, s.Level)
		assert.Equal(t, 90, s.Gravity)
		assert.Nil(t, s.Held)
		assert.True(t, s.CanHold)
		assert.Equal(t, 5, s.BagLen)
		require.NotNil(t, s.Active)
		assert.True(t, s.Active.Active)
		assert.Equal(t, e.SpawnAnchor(), s.Active.Anchor)
		require.NotNil(t, s.Ghost)
		assert.Zero(t, s.Tick)

		// everything but the dealt pieces matches across seeds
		if seed == 1 {
			first = s
			continue
		}
		assert.Equal(t, first.Board, s.Board)
		assert.Equal(t, first.Score, s.Score)
		assert.Equal(t, first.Lines, s.Lines)
		assert.Equal(t, first.Level, s.Level)
		assert.Equal(t, first.Gravity, s.Gravity)
		assert.Equal(t, first.CanHold, s.CanHold)
		assert.Equal(t, first.BagLen, s.BagLen)
		assert.Equal(t, first.Held, s.Held)
	}
}

func TestEngineNarrowestValidBoardNeverPanics(t *testing.T) {
	cfg := config.DefaultBlocksConfig().WithBoard(config.MinCols, 20)
	require.NoError(t, cfg.Validate())
	rules := RulesFromConfig(cfg)

	for seed := int64(1); seed <= 50; seed++ {
		e := NewEngine(rules, seed)
		require.Equal(t, StateMenu, e.State(), "seed %d", seed)
		require.NotNil(t, e.active, "seed %d", seed)

		assert.NotPanics(t, func() {
			for i := 0; i < 300; i++ {
				e.Tick(Commands{Start: true, Restart: true, HardDrop: true})
			}
		}, "seed %d", seed)
	}
}

func TestEngineNeverPlaysWithoutActivePiece(t *testing.T) {
	// four columns leave no room for a bar at the spawn column
	r := DefaultRules()
	r.Cols = 4

	blocked := 0
	for seed := int64(1); seed <= 50; seed++ {
		e := NewEngine(r, seed)
		assert.NotPanics(t, func() {
			for i := 0; i < 300; i++ {
				e.Tick(Commands{Start: true, Restart: true, HardDrop: true})
				if e.State() == StatePlaying && e.active == nil {
					assert.Fail(t, "playing without an active piece", "seed %d tick %d", seed, i)
					return
				}
				if e.active == nil {
					blocked++
				}
			}
		}, "seed %d", seed)
	}
	assert.Positive(t, blocked)
}

func TestEngineRestartOnlyFromGameOver(t *testing.T) {
	e := newPlaying(t, 1)
	e.Tick(Commands{HardDrop: true})
	before := e.Snapshot()

	assert.False(t, e.Restart())
	assert.Equal(t, before, e.Snapshot())
}

func TestEngineLockConflictPanics(t *testing.T) {
	e := newPlaying(t, 1)
	c := e.active.Cells()[0]
	put(e.board, c.X, c.Y)

	assert.Panics(t, func() { e.lockActive() })
}

func randomCommands(rng *rand.Rand, state State) Commands {
	return Commands{
		Left:     rng.Intn(4) == 0,
		Right:    rng.Intn(4) == 0,
		Down:     rng.Intn(3) == 0,
		Rotate:   rng.Intn(6) == 0,
		HardDrop: rng.Intn(40) == 0,
		Hold:     rng.Intn(50) == 0,
		Pause:    rng.Intn(300) == 0,
		Restart:  state == StateGameOver && rng.Intn(5) == 0,
	}
}

func TestEngineDeterministic(t *testing.T) {
	a := newPlaying(t, 77)
	b := newPlaying(t, 77)
	ra := rand.New(rand.NewSource(3))
	rb := rand.New(rand.NewSource(3))

	for i := 0; i < 5000; i++ {
		ea := a.Tick(randomCommands(ra, a.State()))
		eb := b.Tick(randomCommands(rb, b.State()))
		require.Equal(t, ea, eb, "tick %d", i)
		if i%250 == 0 {
			require.Equal(t, a.Snapshot(), b.Snapshot(), "tick %d", i)
		}
	}
	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestEngineRandomPlayKeepsBoardConsistent(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		e := newPlaying(t, seed)
		rng := rand.New(rand.NewSource(seed * 31))
		lastScore, lastLines := 0, 0

		for i := 0; i < 4000; i++ {
			events := e.Tick(randomCommands(rng, e.State()))
			s := e.Snapshot()

			if ev, ok := findEvent(events, EventStateChanged); ok && ev.From == StateGameOver {
				lastScore, lastLines = 0, 0
			}
			require.GreaterOrEqual(t, s.Score, lastScore, "seed %d tick %d", seed, i)
			require.GreaterOrEqual(t, s.Lines, lastLines, "seed %d tick %d", seed, i)
			lastScore, lastLines = s.Score, s.Lines

			require.LessOrEqual(t, s.BagLen, 7)
			for _, c := range s.Board {
				require.True(t, e.board.InBounds(c.Pos))
			}

			if s.State != StatePlaying || !s.Active.Active {
				continue
			}
			require.True(t, e.board.Fits(s.Active.Cells), "active overlaps stack: seed %d tick %d", seed, i)
			require.NotNil(t, s.Ghost)
			require.True(t, e.board.Fits(s.Ghost.Cells))
			assert.Zero(t, DropDistance(e.ghost, e.board), "ghost must rest on something")
		}
	}
}
