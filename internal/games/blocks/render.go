package blocks

import (
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

const (
	cellW      = 2 // screen columns per field cell
	panelW     = 14
	panelGap   = 2
	previewH   = 6
	statsH     = 7
	hudHeight  = 1
	blockGlyph = '█'
	ghostGlyph = '░'
	gridGlyph  = '·'
)

// layout holds screen positions computed from the destination size.
type layout struct {
	field core.Rect
	hold  core.Rect
	next  core.Rect
	stats core.Rect
}

func (g *Game) computeLayout(w, h int) (layout, bool) {
	r := g.engine.Rules()
	fieldW := r.Cols*cellW + 2
	fieldH := r.Rows + 2
	totalW := fieldW + panelGap + panelW
	totalH := hudHeight + fieldH
	if w < totalW || h < totalH {
		return layout{}, false
	}

	ox := (w - totalW) / 2
	oy := hudHeight + (h-totalH)/2
	px := ox + fieldW + panelGap
	return layout{
		field: core.NewRect(ox, oy, fieldW, fieldH),
		hold:  core.NewRect(px, oy, panelW, previewH),
		next:  core.NewRect(px, oy+previewH, panelW, previewH),
		stats: core.NewRect(px, oy+2*previewH, panelW, statsH),
	}, true
}

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}

	snap := g.engine.Snapshot()
	g.renderHUD(dst, snap)

	lay, ok := g.computeLayout(dst.Width(), dst.Height())
	g.tooSmall = !ok
	if !ok {
		g.renderOverlay(dst, core.NewRect(0, 0, dst.Width(), dst.Height()), "Window too small", "Resize to continue")
		return
	}

	g.renderField(dst, lay.field, snap)
	g.renderPreview(dst, lay.hold, "HOLD", snap.Held, !snap.CanHold)
	g.renderPreview(dst, lay.next, "NEXT", snap.Next, false)
	g.renderStats(dst, lay.stats, snap)

	switch snap.State {
	case StateMenu:
		g.renderOverlay(dst, lay.field, g.Title(), "Enter to start")
	case StatePaused:
		g.renderOverlay(dst, lay.field, "Paused", "P to continue")
	case StateGameOver:
		g.renderOverlay(dst, lay.field, "Game Over", "R to restart")
	default:
		if g.bannerTicks > 0 {
			text := fmt.Sprintf(" LEVEL %d ", g.bannerLevel)
			x := lay.field.X + (lay.field.W-len(text))/2
			dst.DrawTextColored(x, lay.field.Y+lay.field.H/3, text, core.ColorBrightYellow)
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" %s  Score: %d  Level: %d", g.Title(), snap.Score, snap.Level)
	dst.DrawText(0, 0, hud)
}

// fieldCell draws a two-column cell at field coordinates.
func fieldCell(dst *core.Screen, field core.Rect, p core.Point, r rune, c core.Color) {
	x := field.X + 1 + p.X*cellW
	y := field.Y + 1 + p.Y
	dst.SetColored(x, y, r, c)
	dst.SetColored(x+1, y, r, c)
}

func (g *Game) renderField(dst *core.Screen, field core.Rect, snap Snapshot) {
	dst.DrawBoxColored(field, core.ColorWhite)

	for y := 0; y < snap.Rows; y++ {
		for x := 0; x < snap.Cols; x++ {
			dst.SetColored(field.X+1+x*cellW, field.Y+1+y, gridGlyph, core.ColorDarkGray)
		}
	}

	for _, c := range snap.Board {
		fieldCell(dst, field, c.Pos, blockGlyph, c.Tag)
	}

	if snap.State == StatePlaying && snap.Ghost != nil {
		for _, p := range snap.Ghost.Cells {
			fieldCell(dst, field, p, ghostGlyph, core.ColorDarkGray)
		}
	}
	if snap.Active != nil && snap.Active.Active {
		color := snap.Active.Variant.Color()
		for _, p := range snap.Active.Cells {
			fieldCell(dst, field, p, blockGlyph, color)
		}
	}

	if g.flashTicks > 0 {
		for _, row := range g.flashRows {
			for x := 0; x < snap.Cols; x++ {
				fieldCell(dst, field, core.Pt(x, row), blockGlyph, core.ColorBrightWhite)
			}
		}
	}
}

func (g *Game) renderPreview(dst *core.Screen, box core.Rect, title string, view *PieceView, dimmed bool) {
	dst.DrawBoxColored(box, core.ColorGray)
	dst.DrawText(box.X+2, box.Y, " "+title+" ")
	if view == nil {
		return
	}

	color := view.Variant.Color()
	if dimmed {
		color = core.ColorDarkGray
	}
	// previews are laid out relative to their own anchor
	inner := core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2)
	for _, p := range view.Cells {
		rel := core.Pt(p.X-view.Anchor.X, p.Y-view.Anchor.Y)
		x := inner.X + 1 + rel.X*cellW
		y := inner.Y + rel.Y
		dst.SetColored(x, y, blockGlyph, color)
		dst.SetColored(x+1, y, blockGlyph, color)
	}
}

func (g *Game) renderStats(dst *core.Screen, box core.Rect, snap Snapshot) {
	dst.DrawBoxColored(box, core.ColorGray)
	dst.DrawText(box.X+2, box.Y, " STATS ")
	lines := []string{
		fmt.Sprintf("Score %6d", snap.Score),
		fmt.Sprintf("Lines %6d", snap.Lines),
		fmt.Sprintf("Level %6d", snap.Level),
		fmt.Sprintf("Speed %6d", snap.Gravity),
	}
	for i, l := range lines {
		dst.DrawText(box.X+1, box.Y+1+i, l)
	}
}

// renderOverlay draws a two-line message box centered in area.
func (g *Game) renderOverlay(dst *core.Screen, area core.Rect, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect(area.X+(area.W-boxW)/2, area.Y+(area.H-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+(boxW-len([]rune(line1)))/2, box.Y+1, line1)
	dst.DrawText(box.X+(boxW-len([]rune(line2)))/2, box.Y+3, line2)
}
