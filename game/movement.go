package game

// TryShift returns p moved dx columns and true, or p unchanged and false if
// any candidate cell is occupied or outside the side walls.
func TryShift(g *Grid, p Piece, dx int) (Piece, bool) {
	moved := p.Translate(dx, 0)
	if g.Collides(moved.Cells) {
		return p, false
	}
	return moved, true
}

// Fall returns p moved down one row and true, or p unchanged and false when
// the piece rests on the floor or on locked cells and must lock.
func Fall(g *Grid, p Piece) (Piece, bool) {
	moved := p.Translate(0, 1)
	if g.Collides(moved.Cells) {
		return p, false
	}
	return moved, true
}

// Drop returns p moved down until it rests, and the number of rows it fell.
func Drop(g *Grid, p Piece) (Piece, int) {
	rows := 0
	for {
		next, ok := Fall(g, p)
		if !ok {
			return p, rows
		}
		p = next
		rows++
	}
}
