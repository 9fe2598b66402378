package game

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSnapshot is returned by Restore for snapshots that do not
// describe a reachable game state.
var ErrInvalidSnapshot = errors.New("game: invalid snapshot")

// PieceSnapshot is a piece without its color.
type PieceSnapshot struct {
	Shape Shape   `msgpack:"shape"`
	Cells []Point `msgpack:"cells"`
}

// Snapshot is the persisted state of a session.
type Snapshot struct {
	Best         int           `msgpack:"best"`
	Score        int           `msgpack:"score"`
	Level        int           `msgpack:"level"`
	GameOver     bool          `msgpack:"game_over"`
	GravitySpeed float64       `msgpack:"gravity_speed"`
	SoundEnabled bool          `msgpack:"sound_enabled"`
	MusicEnabled bool          `msgpack:"music_enabled"`
	ActiveColor  Color         `msgpack:"active_color"`
	NextColor    Color         `msgpack:"next_color"`
	ActivePiece  PieceSnapshot `msgpack:"active_piece"`
	NextPiece    PieceSnapshot `msgpack:"next_piece"`
	Grid         [][]Color     `msgpack:"grid"`
}

func snapshotPiece(p Piece) PieceSnapshot {
	return PieceSnapshot{Shape: p.Shape, Cells: p.Cells[:]}
}

func (ps PieceSnapshot) piece(color Color) (Piece, error) {
	if ps.Shape >= shapeCount {
		return Piece{}, fmt.Errorf("%w: unknown shape %d", ErrInvalidSnapshot, ps.Shape)
	}
	if len(ps.Cells) != 4 {
		return Piece{}, fmt.Errorf("%w: piece has %d cells", ErrInvalidSnapshot, len(ps.Cells))
	}

	p := Piece{Shape: ps.Shape, Color: color}
	for i, c := range ps.Cells {
		if c.X < 0 || c.X >= Cols || c.Y >= Rows {
			return Piece{}, fmt.Errorf("%w: cell (%d,%d) out of bounds", ErrInvalidSnapshot, c.X, c.Y)
		}
		p.Cells[i] = c
	}
	if !matchesTemplate(p.Shape, p.Cells) {
		return Piece{}, fmt.Errorf("%w: cells %v do not form a %s piece", ErrInvalidSnapshot, p.Cells, p.Shape)
	}
	return p, nil
}

// matchesTemplate reports whether cells are the shape's template turned by a
// whole number of quarter turns, in template order, relative to cells[0].
func matchesTemplate(shape Shape, cells [4]Point) bool {
	offsets := templates[shape]
	for range 4 {
		base := offsets[0]
		match := true
		for i, off := range offsets {
			want := Point{X: cells[0].X + off.X - base.X, Y: cells[0].Y + off.Y - base.Y}
			if cells[i] != want {
				match = false
				break
			}
		}
		if match {
			return true
		}
		for i, off := range offsets {
			offsets[i] = Point{X: -off.Y, Y: off.X}
		}
	}
	return false
}

// Snapshot captures the persisted subset of the engine state. A clear
// animation in progress is captured with its rows still highlighted; they are
// detected again after Restore.
func (e *Engine) Snapshot() Snapshot {
	board := e.scoreboard.Get()
	settings := e.settings.Get()
	pieces := e.pieces.Get()
	grid := e.grid.Get()

	snap := Snapshot{
		Best:         board.Best,
		Score:        board.Score,
		Level:        board.Level,
		GameOver:     e.session.Get().GameOver(),
		GravitySpeed: board.GravitySpeed,
		SoundEnabled: settings.Sound,
		MusicEnabled: settings.Music,
		ActiveColor:  pieces.Active.Color,
		NextColor:    pieces.Next.Color,
		ActivePiece:  snapshotPiece(pieces.Active),
		NextPiece:    snapshotPiece(pieces.Next),
		Grid:         make([][]Color, Rows),
	}
	for y := range Rows {
		snap.Grid[y] = append([]Color(nil), grid.Cells[y][:]...)
	}
	return snap
}

// Restore replaces the game with snap. The restored session starts paused
// over the saved game. On error the engine is unchanged.
func (e *Engine) Restore(snap Snapshot) error {
	speed := snap.GravitySpeed
	if snap.Level < 1 || snap.Score < 0 || snap.Best < snap.Score ||
		math.IsNaN(speed) || math.IsInf(speed, 0) || speed <= 0 {
		return fmt.Errorf("%w: score %d best %d level %d speed %v",
			ErrInvalidSnapshot, snap.Score, snap.Best, snap.Level, snap.GravitySpeed)
	}
	if len(snap.Grid) != Rows {
		return fmt.Errorf("%w: grid has %d rows", ErrInvalidSnapshot, len(snap.Grid))
	}

	var grid Grid
	for y, row := range snap.Grid {
		if len(row) != Cols {
			return fmt.Errorf("%w: row %d has %d cells", ErrInvalidSnapshot, y, len(row))
		}
		copy(grid.Cells[y][:], row)
	}

	active, err := snap.ActivePiece.piece(snap.ActiveColor)
	if err != nil {
		return err
	}
	next, err := snap.NextPiece.piece(snap.NextColor)
	if err != nil {
		return err
	}
	if !snap.GameOver && grid.Collides(active.Cells) {
		return fmt.Errorf("%w: active piece overlaps the grid", ErrInvalidSnapshot)
	}

	resume := Playing
	if snap.GameOver {
		resume = GameOver
	}

	cfg := e.config.Get()
	e.storage.AddSingleton(grid)
	e.storage.AddSingleton(Pieces{Active: active, Next: next})
	e.storage.AddSingleton(Scoreboard{
		Score:        snap.Score,
		Best:         snap.Best,
		Level:        snap.Level,
		GravitySpeed: snap.GravitySpeed,
	})
	e.storage.AddSingleton(Settings{Sound: snap.SoundEnabled, Music: snap.MusicEnabled})
	e.storage.AddSingleton(Session{State: Paused, Resume: resume, Menu: MenuResume})
	e.storage.AddSingleton(Clear{})
	e.storage.AddSingleton(Gravity{Limit: cfg.GravityLimit})
	e.storage.AddSingleton(Controls{})
	return nil
}
