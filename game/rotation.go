package game

// Rotate turns p a quarter turn about its pivot and resolves conflicts with
// the grid. It returns the rotated piece and true, or p unchanged and false
// when no placement is clear. The square is returned unchanged with true.
func Rotate(g *Grid, p Piece) (Piece, bool) {
	if !p.Rotatable() {
		return p, true
	}

	cand := p
	pivot := p.Pivot()
	for i, c := range p.Cells {
		cand.Cells[i] = Point{
			X: pivot.X - (c.Y - pivot.Y),
			Y: pivot.Y + (c.X - pivot.X),
		}
	}

	cand = clamp(cand)

	blocked := -1
	for i, c := range cand.Cells {
		if c.Y < 0 || !g.Occupied(c.X, c.Y) {
			continue
		}
		if blocked < 0 {
			blocked = i
			continue
		}
		b := cand.Cells[blocked]
		if c.X > b.X || (c.X == b.X && c.Y > b.Y) {
			blocked = i
		}
	}
	if blocked < 0 {
		return cand, true
	}

	cand = nudge(g, cand, blocked)
	if g.Collides(cand.Cells) {
		return p, false
	}
	return cand, true
}

// clamp pulls a candidate back inside the side walls and above the floor.
func clamp(p Piece) Piece {
	minX, _, maxX, maxY := p.Bounds()
	if minX < 0 {
		p = p.Translate(-minX, 0)
	} else if maxX > Cols-1 {
		p = p.Translate(Cols-1-maxX, 0)
	}
	if maxY > Rows-1 {
		p = p.Translate(0, Rows-1-maxY)
	}
	return p
}

// nudge applies one horizontal and one vertical correction away from the
// blocking cell at index i.
func nudge(g *Grid, p Piece, i int) Piece {
	minX, minY, maxX, maxY := p.Bounds()
	b := p.Cells[i]

	switch {
	case b.X > minX && !g.Occupied(b.X-1, b.Y):
		p = p.Translate(-(maxX - b.X + 1), 0)
	case b.X < maxX && !g.Occupied(b.X+1, b.Y):
		p = p.Translate(b.X-minX+1, 0)
	}

	b = p.Cells[i]
	switch {
	case b.Y > minY && !g.Occupied(b.X, b.Y-1):
		p = p.Translate(0, -(maxY - b.Y + 1))
	case b.Y < maxY && !g.Occupied(b.X, b.Y+1):
		p = p.Translate(0, b.Y-minY+1)
	}
	return p
}
