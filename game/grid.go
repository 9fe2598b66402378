package game

import (
	"errors"
	"fmt"
)

const (
	Rows = 20
	Cols = 10
)

// ErrCellOccupied is returned by Grid.Lock when a target cell already holds a
// value or lies outside the field. Correct sequencing never produces it.
var ErrCellOccupied = errors.New("game: cell occupied")

// Point is a cell coordinate. X grows to the right, Y grows downward; rows
// above the field have negative Y.
type Point struct {
	X, Y int
}

// Grid is the Rows x Cols matrix of locked cells.
type Grid struct {
	Cells [Rows][Cols]Color
}

// Occupied reports whether (x, y) blocks a piece: any cell outside the side or
// bottom walls, or a filled cell. Rows above the field never block.
func (g *Grid) Occupied(x, y int) bool {
	if x < 0 || x >= Cols || y >= Rows {
		return true
	}
	if y < 0 {
		return false
	}
	return !g.Cells[y][x].IsZero()
}

// Collides reports whether any of the cells is Occupied.
func (g *Grid) Collides(cells [4]Point) bool {
	for _, c := range cells {
		if g.Occupied(c.X, c.Y) {
			return true
		}
	}
	return false
}

// At returns the color at (x, y), or the zero Color outside the field.
func (g *Grid) At(x, y int) Color {
	if x < 0 || x >= Cols || y < 0 || y >= Rows {
		return Color{}
	}
	return g.Cells[y][x]
}

// Lock writes color into the cells. Cells above the field are dropped. Nothing
// is written if any in-field target is already filled.
func (g *Grid) Lock(cells [4]Point, color Color) error {
	for _, c := range cells {
		if c.Y >= 0 && g.Occupied(c.X, c.Y) {
			return fmt.Errorf("%w: (%d,%d)", ErrCellOccupied, c.X, c.Y)
		}
	}

	for _, c := range cells {
		if c.Y >= 0 {
			g.Cells[c.Y][c.X] = color
		}
	}
	return nil
}

// Full reports whether every column of row y is filled.
func (g *Grid) Full(y int) bool {
	for x := range Cols {
		if g.Cells[y][x].IsZero() {
			return false
		}
	}
	return true
}

// FillRow sets every cell of row y to color.
func (g *Grid) FillRow(y int, color Color) {
	for x := range Cols {
		g.Cells[y][x] = color
	}
}

// ClearRow empties row y.
func (g *Grid) ClearRow(y int) {
	g.Cells[y] = [Cols]Color{}
}

// Compact removes the rows marked in drop and shifts the rows above each
// removed row down, keeping their order. Unmarked rows are never removed, even
// when empty. It returns the number of rows removed.
func (g *Grid) Compact(drop [Rows]bool) int {
	write := Rows - 1
	for y := Rows - 1; y >= 0; y-- {
		if drop[y] {
			continue
		}
		g.Cells[write] = g.Cells[y]
		write--
	}

	removed := write + 1
	for ; write >= 0; write-- {
		g.ClearRow(write)
	}
	return removed
}

// Count returns the number of filled cells.
func (g *Grid) Count() int {
	n := 0
	for y := range Rows {
		for x := range Cols {
			if !g.Cells[y][x].IsZero() {
				n++
			}
		}
	}
	return n
}
