package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotateUnobstructed(t *testing.T) {
	var g Grid
	p := Spawn(ShapeI, red, DefaultConfig().SpawnAt)

	rotated, ok := Rotate(&g, p)

	assert.True(t, ok)
	assert.Equal(t, [4]Point{{4, 1}, {4, 0}, {4, 2}, {4, 3}}, rotated.Cells)
	assert.Equal(t, red, rotated.Color)
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	var g Grid
	for s := range shapeCount {
		p := Spawn(s, red, Point{4, 10})
		q := p
		for range 4 {
			var ok bool
			q, ok = Rotate(&g, q)
			assert.True(t, ok)
		}
		assert.Equal(t, p, q, "shape %s", s)
	}
}

func TestRotateSquareIsUnchanged(t *testing.T) {
	var g Grid
	p := Spawn(ShapeO, red, Point{4, 10})
	rotated, ok := Rotate(&g, p)
	assert.True(t, ok)
	assert.Equal(t, p, rotated)
}

func TestRotateClamps(t *testing.T) {
	var g Grid

	t.Run("left wall", func(t *testing.T) {
		p := Piece{Shape: ShapeI, Cells: [4]Point{{0, 1}, {0, 0}, {0, 2}, {0, 3}}}
		rotated, ok := Rotate(&g, p)
		assert.True(t, ok)
		assert.Equal(t, [4]Point{{2, 1}, {3, 1}, {1, 1}, {0, 1}}, rotated.Cells)
	})

	t.Run("floor", func(t *testing.T) {
		p := Piece{Shape: ShapeI, Cells: [4]Point{{4, 19}, {3, 19}, {5, 19}, {6, 19}}}
		rotated, ok := Rotate(&g, p)
		assert.True(t, ok)
		assert.Equal(t, [4]Point{{4, 17}, {4, 16}, {4, 18}, {4, 19}}, rotated.Cells)
	})
}

func TestRotateNudge(t *testing.T) {
	p := Spawn(ShapeT, red, Point{4, 10})

	t.Run("shifts away from the blocking cell", func(t *testing.T) {
		var g Grid
		g.Cells[10][5] = blue

		rotated, ok := Rotate(&g, p)

		assert.True(t, ok)
		assert.Equal(t, [4]Point{{3, 9}, {4, 9}, {2, 9}, {3, 8}}, rotated.Cells)
		assert.False(t, g.Collides(rotated.Cells))
	})

	t.Run("rejected when the nudged position is blocked", func(t *testing.T) {
		var g Grid
		g.FillRow(8, blue)
		for x := range Cols {
			if x != 4 {
				g.Cells[9][x] = blue
				g.Cells[11][x] = blue
			}
			if x != 3 && x != 4 {
				g.Cells[10][x] = blue
			}
		}
		assert.False(t, g.Collides(p.Cells))

		rotated, ok := Rotate(&g, p)

		assert.False(t, ok)
		assert.Equal(t, p, rotated)
	})
}

func TestRotateAllowsCellsAboveField(t *testing.T) {
	var g Grid
	p := Piece{Shape: ShapeI, Cells: [4]Point{{4, 0}, {3, 0}, {5, 0}, {6, 0}}}

	rotated, ok := Rotate(&g, p)

	assert.True(t, ok)
	assert.Equal(t, [4]Point{{4, 0}, {4, -1}, {4, 1}, {4, 2}}, rotated.Cells)
}

func BenchmarkRotate(b *testing.B) {
	var g Grid
	g.Cells[10][5] = blue
	p := Spawn(ShapeT, red, Point{4, 10})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Rotate(&g, p)
	}
}
