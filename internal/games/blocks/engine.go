package blocks

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// Engine owns the whole world of one game: board, bag, piece slots,
// progression and state. All mutation happens inside Tick and the methods
// it calls.
type Engine struct {
	rules Rules
	rng   *rand.Rand

	board    *Board
	bag      *Bag
	progress *Progression

	active  *Piece
	next    *Piece
	held    *Piece
	ghost   *Piece
	canHold bool

	state State
	tick  uint64

	spawnAnchor   core.Point
	previewAnchor core.Point

	events []Event
}

// NewEngine creates an engine in the Menu state with a freshly dealt world.
func NewEngine(r Rules, seed int64) *Engine {
	e := &Engine{
		rules:         r,
		rng:           rand.New(rand.NewSource(seed)),
		board:         NewBoard(r.Cols, r.Rows),
		progress:      NewProgression(r),
		spawnAnchor:   core.Pt(r.Cols/2-1, 0),
		previewAnchor: core.Pt(0, 0),
		state:         StateMenu,
	}
	e.bag = NewBag(e.rng)
	e.reset()
	return e
}

// Rules returns the rules the engine was built with.
func (e *Engine) Rules() Rules { return e.rules }

// State returns the current game state.
func (e *Engine) State() State { return e.state }

// SpawnAnchor returns where new pieces appear.
func (e *Engine) SpawnAnchor() core.Point { return e.spawnAnchor }

// Tick advances the engine by one frame and returns the events it produced.
func (e *Engine) Tick(cmds Commands) []Event {
	e.events = nil

	switch e.state {
	case StateMenu:
		if cmds.Start {
			e.Start()
		}
		return e.events
	case StateGameOver:
		if cmds.Restart || cmds.Start {
			e.Restart()
		}
		return e.events
	}

	if cmds.Pause {
		e.TogglePause()
	}
	if e.state != StatePlaying {
		return e.events
	}

	e.tick++

	if cmds.Hold {
		e.Hold()
		if e.state != StatePlaying {
			return e.events
		}
	}
	if cmds.HardDrop {
		e.HardDrop()
		return e.events
	}

	if e.active == nil {
		return e.events
	}
	if !e.active.Active() {
		e.lockActive()
		return e.events
	}
	e.active.Tick(e.board, cmds.motion(), e.progress.Gravity(), e.rules.LockDelay)
	e.refreshGhost()
	return e.events
}

// Start leaves the menu.
func (e *Engine) Start() {
	if e.state == StateMenu {
		e.setState(StatePlaying)
	}
}

// TogglePause switches between Playing and Paused. Other states ignore it.
func (e *Engine) TogglePause() {
	switch e.state {
	case StatePlaying:
		e.setState(StatePaused)
	case StatePaused:
		e.setState(StatePlaying)
	}
}

// Restart performs a full reset and resumes play. It only acts in GameOver
// and leaves the game over if the fresh board cannot take a piece.
func (e *Engine) Restart() bool {
	if e.state != StateGameOver {
		return false
	}
	if !e.reset() {
		return false
	}
	e.setState(StatePlaying)
	return true
}

// Hold stores the active piece, or swaps it with the held one. At most one
// hold is allowed per spawned piece.
func (e *Engine) Hold() {
	if e.state != StatePlaying || !e.canHold || e.active == nil {
		return
	}

	cur := e.active
	cur.Reset()
	cur.SetPosition(e.previewAnchor)

	if e.held == nil {
		e.held = cur
		e.active = nil
		e.emit(Event{Kind: EventHold})
		if !e.spawnNext() {
			return
		}
	} else {
		incoming := e.held
		e.held = cur
		incoming.Reset()
		incoming.SetPosition(e.spawnAnchor)
		e.active = incoming
		e.emit(Event{Kind: EventHold})
		if !e.board.Fits(incoming.Cells()) {
			e.gameOver()
			return
		}
		e.refreshGhost()
	}
	e.canHold = false
}

// HardDrop moves the active piece onto its ghost and locks it at once.
func (e *Engine) HardDrop() {
	if e.state != StatePlaying || e.active == nil {
		return
	}
	d := DropDistance(e.active, e.board)
	e.active.SetPosition(e.active.Anchor().Down(d))
	e.active.Deactivate()
	e.emit(Event{Kind: EventHardDrop, Distance: d})
	e.lockActive()
}

// lockActive writes the active piece into the board, clears rows and
// spawns the next piece.
func (e *Engine) lockActive() {
	p := e.active
	if err := e.board.Lock(p.Cells(), p.Variant().Color()); err != nil {
		panic(fmt.Errorf("blocks: lock %s at %v: %w", p.Variant(), p.Anchor(), err))
	}
	p.Deactivate()
	e.emit(Event{Kind: EventLock})

	// a piece that never left the spawn point means the stack reached the top
	if p.Anchor() == e.spawnAnchor {
		e.gameOver()
		return
	}

	if n, rows := e.board.ClearFullRows(); n > 0 {
		res := e.progress.Apply(n)
		e.emit(Event{Kind: EventLineClear, Rows: rows, Count: n})
		for _, up := range res.LevelUps {
			e.emit(Event{Kind: EventLevelUp, Level: up.Level, Gravity: up.Gravity})
		}
	}

	e.spawnNext()
}

// spawnNext promotes the next piece to the spawn anchor and deals a new
// next piece. It reports false and ends the game if the spawn is blocked.
func (e *Engine) spawnNext() bool {
	p := e.next
	p.Reset()
	p.SetPosition(e.spawnAnchor)
	if !e.board.Fits(p.Cells()) {
		e.gameOver()
		return false
	}

	e.active = p
	e.next = NewPiece(e.bag.Draw())
	e.next.SetPosition(e.previewAnchor)
	e.canHold = true
	e.refreshGhost()
	return true
}

func (e *Engine) refreshGhost() {
	if e.active == nil {
		e.ghost = nil
		return
	}
	e.ghost = Ghost(e.active, e.board)
}

func (e *Engine) gameOver() {
	if e.active != nil {
		e.active.Deactivate()
	}
	e.ghost = nil
	e.setState(StateGameOver)
	e.emit(Event{Kind: EventGameOver})
}

func (e *Engine) setState(s State) {
	if s == e.state {
		return
	}
	from := e.state
	e.state = s
	e.emit(Event{Kind: EventStateChanged, From: from, To: s})
}

func (e *Engine) emit(ev Event) {
	ev.Score = e.progress.Score()
	e.events = append(e.events, ev)
}

// reset rebuilds the initial world without touching the state. It reports
// false if the first piece could not be placed, which ends the game.
func (e *Engine) reset() bool {
	e.board.Reset()
	e.bag.Reset()
	e.progress.Reset()
	e.active = nil
	e.held = nil
	e.ghost = nil
	e.tick = 0

	e.next = NewPiece(e.bag.Draw())
	return e.spawnNext()
}
