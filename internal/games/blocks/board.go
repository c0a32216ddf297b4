package blocks

import (
	"errors"
	"fmt"
	"sort"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

var (
	// ErrCellOccupied is returned by Board.Lock when a target cell is taken.
	ErrCellOccupied = errors.New("blocks: cell already occupied")
	// ErrOutOfBounds is returned by Board.Lock when a target cell is off the field.
	ErrOutOfBounds = errors.New("blocks: cell out of bounds")
)

// Cell is a locked cell on the board.
type Cell struct {
	Pos core.Point
	Tag core.Color
}

// Board is the store of locked cells. Cells are keyed by row*cols+col, so a
// position can hold at most one cell.
type Board struct {
	cols  int
	rows  int
	cells *intmap.Map[int, core.Color]
}

// NewBoard creates an empty board.
func NewBoard(cols, rows int) *Board {
	return &Board{
		cols:  cols,
		rows:  rows,
		cells: intmap.New[int, core.Color](cols * rows),
	}
}

// Cols returns the number of columns.
func (b *Board) Cols() int { return b.cols }

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Len returns the number of locked cells.
func (b *Board) Len() int { return b.cells.Len() }

func (b *Board) index(p core.Point) int {
	return p.Y*b.cols + p.X
}

func (b *Board) point(i int) core.Point {
	return core.Pt(i%b.cols, i/b.cols)
}

// InBounds reports whether p lies on the field.
func (b *Board) InBounds(p core.Point) bool {
	return p.X >= 0 && p.X < b.cols && p.Y >= 0 && p.Y < b.rows
}

// IsOccupied reports whether a locked cell exists at p.
func (b *Board) IsOccupied(p core.Point) bool {
	if !b.InBounds(p) {
		return false
	}
	_, ok := b.cells.Get(b.index(p))
	return ok
}

// TagAt returns the tag of the locked cell at p.
func (b *Board) TagAt(p core.Point) (core.Color, bool) {
	if !b.InBounds(p) {
		return core.ColorDefault, false
	}
	return b.cells.Get(b.index(p))
}

// Fits reports whether all cells are in bounds and unoccupied.
func (b *Board) Fits(cells [4]core.Point) bool {
	return cellsFit(b, cells)
}

// Lock writes four cells with the given tag. Nothing is written unless every
// target is in bounds, unoccupied and distinct.
func (b *Board) Lock(cells [4]core.Point, tag core.Color) error {
	for i, c := range cells {
		if !b.InBounds(c) {
			return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
		}
		if b.IsOccupied(c) {
			return fmt.Errorf("%w: %v", ErrCellOccupied, c)
		}
		for _, other := range cells[:i] {
			if other == c {
				return fmt.Errorf("%w: %v listed twice", ErrCellOccupied, c)
			}
		}
	}
	for _, c := range cells {
		b.cells.Put(b.index(c), tag)
	}
	return nil
}

// RowCount returns the number of locked cells in row y.
func (b *Board) RowCount(y int) int {
	n := 0
	for x := 0; x < b.cols; x++ {
		if _, ok := b.cells.Get(b.index(core.Pt(x, y))); ok {
			n++
		}
	}
	return n
}

// ClearFullRows removes every row whose cell count equals the column count
// and drops the cells above each removed row by one row per removed row
// beneath them. It returns the number of rows removed and their indices
// (top to bottom).
func (b *Board) ClearFullRows() (int, []int) {
	counts := make([]int, b.rows)
	b.cells.ForEach(func(i int, _ core.Color) bool {
		counts[i/b.cols]++
		return true
	})

	var cleared []int
	full := make([]bool, b.rows)
	for y, n := range counts {
		if n == b.cols {
			full[y] = true
			cleared = append(cleared, y)
		}
	}
	if len(cleared) == 0 {
		return 0, nil
	}

	// shift[y] = number of cleared rows strictly below row y
	shift := make([]int, b.rows)
	below := 0
	for y := b.rows - 1; y >= 0; y-- {
		shift[y] = below
		if full[y] {
			below++
		}
	}

	next := intmap.New[int, core.Color](b.cols * b.rows)
	b.cells.ForEach(func(i int, tag core.Color) bool {
		p := b.point(i)
		if !full[p.Y] {
			next.Put(b.index(p.Down(shift[p.Y])), tag)
		}
		return true
	})
	b.cells = next

	return len(cleared), cleared
}

// Cells returns a row-major sorted copy of every locked cell.
func (b *Board) Cells() []Cell {
	out := make([]Cell, 0, b.cells.Len())
	b.cells.ForEach(func(i int, tag core.Color) bool {
		out = append(out, Cell{Pos: b.point(i), Tag: tag})
		return true
	})
	sort.Slice(out, func(i, j int) bool {
		return b.index(out[i].Pos) < b.index(out[j].Pos)
	})
	return out
}

// Reset removes every locked cell.
func (b *Board) Reset() {
	b.cells.Clear()
}
