package level

import (
	"github.com/pkg/errors"
	"github.com/vinser/mazechase/internal/dweller"
)

// Cell represents a type of cell in the maze.
type Cell int

const (
	Wall Cell = iota
	Gate
	Dot
	PowerUp
	Teleport
	Empty
)

func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Gate:
		return "gate"
	case Dot:
		return "dot"
	case PowerUp:
		return "powerup"
	case Teleport:
		return "teleport"
	case Empty:
		return "empty"
	}
	return "unknown"
}

// Walkable reports whether a mobile may stand on the cell.
func (c Cell) Walkable() bool {
	return c != Wall && c != Gate
}

// ErrOutOfBounds is returned for positions outside the grid.
var ErrOutOfBounds = errors.New("out of bounds")

// Grid is the maze: rows of cells plus the width of a mobile's body.
type Grid struct {
	cells     [][]Cell
	footprint int
}

// NewGrid wraps rows as a grid. Short rows are padded with Empty so the grid is
// rectangular. A footprint below 1 is treated as 1.
func NewGrid(rows [][]Cell, footprint int) *Grid {
	if footprint < 1 {
		footprint = 1
	}
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	cells := make([][]Cell, len(rows))
	for y, row := range rows {
		cells[y] = make([]Cell, width)
		copy(cells[y], row)
		for x := len(row); x < width; x++ {
			cells[y][x] = Empty
		}
	}
	return &Grid{cells: cells, footprint: footprint}
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return len(g.cells)
}

// Width returns the length of the first row.
func (g *Grid) Width() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// Footprint returns how many columns a mobile's body covers.
func (g *Grid) Footprint() int {
	return g.footprint
}

func (g *Grid) inside(x, y int) bool {
	return y >= 0 && y < len(g.cells) && x >= 0 && x < len(g.cells[y])
}

// CellAt returns the cell at p.
func (g *Grid) CellAt(p dweller.Position) (Cell, error) {
	if !g.inside(p.X, p.Y) {
		return Empty, errors.Wrapf(ErrOutOfBounds, "cell x=%d y=%d", p.X, p.Y)
	}
	return g.cells[p.Y][p.X], nil
}

func (g *Grid) walkableAt(x, y int) bool {
	return g.inside(x, y) && g.cells[y][x].Walkable()
}

// IsWalkable reports whether a mobile at p may take one step in direction d.
// Horizontal moves check the single cell just past the body's leading edge;
// vertical moves check every column of the body on the next row.
// Anything outside the grid is a wall.
func (g *Grid) IsWalkable(p dweller.Position, d dweller.Direction) bool {
	switch d {
	case dweller.Left:
		return g.walkableAt(p.X-1, p.Y)
	case dweller.Right:
		return g.walkableAt(p.X+g.footprint, p.Y)
	case dweller.Up, dweller.Down:
		y := p.Y - 1
		if d == dweller.Down {
			y = p.Y + 1
		}
		for x := p.X; x < p.X+g.footprint; x++ {
			if !g.walkableAt(x, y) {
				return false
			}
		}
		return true
	}
	return false
}

// Clear empties the cell at p. Positions outside the grid are ignored.
func (g *Grid) Clear(p dweller.Position) {
	if g.inside(p.X, p.Y) {
		g.cells[p.Y][p.X] = Empty
	}
}

// Count returns the number of cells of kind c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, row := range g.cells {
		for _, cell := range row {
			if cell == c {
				n++
			}
		}
	}
	return n
}

// Cells returns a copy of the grid rows.
func (g *Grid) Cells() [][]Cell {
	rows := make([][]Cell, len(g.cells))
	for y, row := range g.cells {
		rows[y] = append([]Cell(nil), row...)
	}
	return rows
}
