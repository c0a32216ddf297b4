package blocks

import "github.com/vovakirdan/tui-blocks/internal/core"

// Field is the read-only view of the playfield a piece moves through.
// *Board implements it.
type Field interface {
	InBounds(p core.Point) bool
	IsOccupied(p core.Point) bool
}

// Motion is the subset of player intent a piece consumes on its own tick.
// All flags are level-triggered.
type Motion struct {
	Left   bool
	Right  bool
	Down   bool
	Rotate bool
}

// Piece is a falling piece instance: a variant, its current orientation,
// and the anchor it is placed at.
type Piece struct {
	variant Variant
	offsets [4]core.Point
	anchor  core.Point
	active  bool

	dropCounter int // ticks since the last gravity step
	restCounter int // ticks spent resting on something
}

// NewPiece creates an active piece of the given variant at the origin.
func NewPiece(v Variant) *Piece {
	p := &Piece{variant: v}
	p.Reset()
	return p
}

// Variant returns the shape tag.
func (p *Piece) Variant() Variant {
	return p.variant
}

// Anchor returns the piece position.
func (p *Piece) Anchor() core.Point {
	return p.anchor
}

// Active reports whether the piece is still falling and controllable.
func (p *Piece) Active() bool {
	return p.active
}

// Cells returns the four absolute cell positions.
func (p *Piece) Cells() [4]core.Point {
	return p.cellsAt(0, 0)
}

func (p *Piece) cellsAt(dx, dy int) [4]core.Point {
	var out [4]core.Point
	base := core.Pt(p.anchor.X+dx, p.anchor.Y+dy)
	for i, off := range p.offsets {
		out[i] = base.Add(off)
	}
	return out
}

// Reset restores the canonical orientation, re-activates the piece and
// clears its timers. The anchor is left unchanged.
func (p *Piece) Reset() {
	p.offsets = p.variant.Offsets()
	p.active = true
	p.dropCounter = 0
	p.restCounter = 0
}

// SetPosition moves the piece so its anchor is at the given point.
func (p *Piece) SetPosition(anchor core.Point) {
	p.anchor = anchor
}

// Deactivate marks the piece as done falling. The engine locks inactive pieces.
func (p *Piece) Deactivate() {
	p.active = false
}

// Width returns the width of the current orientation's bounding box.
func (p *Piece) Width() int {
	minX, maxX := p.offsets[0].X, p.offsets[0].X
	for _, off := range p.offsets[1:] {
		minX = min(minX, off.X)
		maxX = max(maxX, off.X)
	}
	return maxX - minX + 1
}

// Height returns the height of the current orientation's bounding box.
func (p *Piece) Height() int {
	minY, maxY := p.offsets[0].Y, p.offsets[0].Y
	for _, off := range p.offsets[1:] {
		minY = min(minY, off.Y)
		maxY = max(maxY, off.Y)
	}
	return maxY - minY + 1
}

// Clone returns an independent copy.
func (p *Piece) Clone() *Piece {
	c := *p
	return &c
}

// Tick runs one frame of the piece's own behaviour: player shifts, rotation,
// gravity every `gravity` ticks, and deactivation after resting for
// `lockDelay` ticks.
func (p *Piece) Tick(f Field, m Motion, gravity, lockDelay int) {
	if !p.active {
		return
	}

	if m.Rotate {
		p.rotate(f)
	}
	if m.Left && !m.Right && p.fits(f, -1, 0) {
		p.anchor.X--
	}
	if m.Right && !m.Left && p.fits(f, 1, 0) {
		p.anchor.X++
	}
	if m.Down && p.fits(f, 0, 1) {
		p.anchor.Y++
		p.dropCounter = 0
	}

	if !p.fits(f, 0, 1) {
		p.restCounter++
		if p.restCounter >= lockDelay {
			p.active = false
		}
		return
	}
	p.restCounter = 0

	p.dropCounter++
	if p.dropCounter >= gravity {
		p.anchor.Y++
		p.dropCounter = 0
	}
}

// rotate turns the piece 90° clockwise about its pivot cell. A blocked
// rotation is retried one column to either side.
func (p *Piece) rotate(f Field) bool {
	pivotIdx := shapes[p.variant].pivot
	if pivotIdx < 0 {
		return false
	}

	pivot := p.offsets[pivotIdx]
	var turned [4]core.Point
	for i, off := range p.offsets {
		dx, dy := off.X-pivot.X, off.Y-pivot.Y
		turned[i] = core.Pt(pivot.X-dy, pivot.Y+dx)
	}

	prev := p.offsets
	p.offsets = turned
	for _, kick := range [...]int{0, -1, 1} {
		if p.fits(f, kick, 0) {
			p.anchor.X += kick
			return true
		}
	}
	p.offsets = prev
	return false
}

// fits reports whether the piece translated by (dx, dy) stays in bounds and
// clear of locked cells.
func (p *Piece) fits(f Field, dx, dy int) bool {
	return cellsFit(f, p.cellsAt(dx, dy))
}

func cellsFit(f Field, cells [4]core.Point) bool {
	for _, c := range cells {
		if !f.InBounds(c) || f.IsOccupied(c) {
			return false
		}
	}
	return true
}
