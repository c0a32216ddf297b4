package blocks

import "github.com/vovakirdan/tui-blocks/internal/core"

// PieceView is a read-only copy of a piece.
type PieceView struct {
	Variant Variant
	Anchor  core.Point
	Cells   [4]core.Point
	Active  bool
}

func viewOf(p *Piece) *PieceView {
	if p == nil {
		return nil
	}
	return &PieceView{
		Variant: p.Variant(),
		Anchor:  p.Anchor(),
		Cells:   p.Cells(),
		Active:  p.Active(),
	}
}

// Snapshot captures the complete engine state for rendering and
// determinism testing.
type Snapshot struct {
	Tick    uint64
	State   State
	Score   int
	Lines   int
	Level   int
	Gravity int

	Cols  int
	Rows  int
	Board []Cell

	Active  *PieceView
	Ghost   *PieceView
	Next    *PieceView
	Held    *PieceView
	CanHold bool
	BagLen  int
}

// Snapshot returns a copy of the engine state. Nothing in it aliases the engine.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:    e.tick,
		State:   e.state,
		Score:   e.progress.Score(),
		Lines:   e.progress.Lines(),
		Level:   e.progress.Level(),
		Gravity: e.progress.Gravity(),
		Cols:    e.rules.Cols,
		Rows:    e.rules.Rows,
		Board:   e.board.Cells(),
		Active:  viewOf(e.active),
		Ghost:   viewOf(e.ghost),
		Next:    viewOf(e.next),
		Held:    viewOf(e.held),
		CanHold: e.canHold,
		BagLen:  e.bag.Len(),
	}
}
