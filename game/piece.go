package game

import "math/rand/v2"

// Shape identifies one of the seven tetromino templates.
type Shape uint8

const (
	ShapeI Shape = iota
	ShapeO
	ShapeS
	ShapeZ
	ShapeL
	ShapeJ
	ShapeT
	shapeCount
)

var shapeNames = [...]string{"I", "O", "S", "Z", "L", "J", "T"}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "?"
}

// Template is a shape's four offsets relative to the pivot, which is offset 0.
type Template [4]Point

var templates = [shapeCount]Template{
	ShapeI: {{-1, 0}, {-2, 0}, {0, 0}, {1, 0}},
	ShapeO: {{0, -1}, {-1, -1}, {-1, 0}, {0, 0}},
	ShapeS: {{-1, 0}, {-1, 1}, {0, 0}, {0, -1}},
	ShapeZ: {{0, 0}, {-1, 0}, {0, 1}, {-1, -1}},
	ShapeL: {{0, 0}, {0, -1}, {0, 1}, {-1, -1}},
	ShapeJ: {{-1, 0}, {-1, -1}, {-1, 1}, {0, -1}},
	ShapeT: {{0, 0}, {0, -1}, {0, 1}, {-1, 0}},
}

// Piece is a tetromino in grid coordinates. Cells[0] is the rotation pivot.
type Piece struct {
	Shape Shape
	Cells [4]Point
	Color Color
}

// Spawn anchors the template of shape at the spawn point.
func Spawn(shape Shape, color Color, at Point) Piece {
	p := Piece{Shape: shape, Color: color}
	for i, off := range templates[shape] {
		p.Cells[i] = Point{X: at.X + off.X, Y: at.Y + off.Y}
	}
	return p
}

// Pivot returns the rotation pivot.
func (p Piece) Pivot() Point {
	return p.Cells[0]
}

// Translate returns p moved by (dx, dy).
func (p Piece) Translate(dx, dy int) Piece {
	for i := range p.Cells {
		p.Cells[i].X += dx
		p.Cells[i].Y += dy
	}
	return p
}

// Bounds returns the inclusive bounding box of the cells.
func (p Piece) Bounds() (minX, minY, maxX, maxY int) {
	return bounds(p.Cells)
}

// Rotatable reports whether rotating p changes its footprint. The square
// spans exactly one cell on each side of its pivot and never rotates.
func (p Piece) Rotatable() bool {
	minX, minY, maxX, maxY := p.Bounds()
	return maxX-minX != 1 || maxY-minY != 1
}

func bounds(cells [4]Point) (minX, minY, maxX, maxY int) {
	minX, minY = cells[0].X, cells[0].Y
	maxX, maxY = minX, minY
	for _, c := range cells[1:] {
		minX = min(minX, c.X)
		maxX = max(maxX, c.X)
		minY = min(minY, c.Y)
		maxY = max(maxY, c.Y)
	}
	return
}

// Dealer draws shapes and colors from a seedable random source.
type Dealer struct {
	rng     *rand.Rand
	spawnAt Point
}

// NewDealer returns a dealer that anchors pieces at spawnAt.
func NewDealer(rng *rand.Rand, spawnAt Point) *Dealer {
	return &Dealer{rng: rng, spawnAt: spawnAt}
}

// Deal returns a new piece with a uniformly chosen shape and a fresh color.
func (d *Dealer) Deal() Piece {
	shape := Shape(d.rng.IntN(int(shapeCount)))
	return Spawn(shape, randomColor(d.rng), d.spawnAt)
}
