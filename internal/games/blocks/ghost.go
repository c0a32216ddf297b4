package blocks

// DropDistance returns how many rows p can fall before it would leave the
// field or overlap a locked cell.
func DropDistance(p *Piece, f Field) int {
	d := 0
	for p.fits(f, 0, d+1) {
		d++
	}
	return d
}

// Ghost returns an inactive copy of p moved to its landing position.
func Ghost(p *Piece, f Field) *Piece {
	g := p.Clone()
	g.SetPosition(p.Anchor().Down(DropDistance(p, f)))
	g.Deactivate()
	return g
}
