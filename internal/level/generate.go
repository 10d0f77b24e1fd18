package level

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
	"github.com/vinser/mazechase/internal/dweller"
	"github.com/vinser/maze"
)

const (
	// Maze settings, in maze cells. Every maze cell is two grid columns wide.
	MazeWidth  = 21
	MazeHeight = 15
	// Ghosts' den size
	DenWidth  = 7
	DenHeight = 3
	// Maze generation Bias defines maze complexity
	Bias = 0.2
	// PowerUps is how many power-ups a generated level gets.
	PowerUps = 4
)

// Generate builds a level from a random maze. The same seed gives the same level.
func Generate(seed int64) (*Level, error) {
	m, err := maze.New(MazeWidth, MazeHeight, DenWidth, DenHeight)
	if err != nil {
		return nil, errors.Wrap(err, "new maze")
	}
	m.Generate(seed, nil, nil, nil, "top", Bias)

	cells := mazeCells(m)

	solution, ok := m.Solve()
	if !ok {
		return nil, errors.Errorf("no solution for width=%d, height=%d, denWidth=%d, denHeight=%d, seed=%d", MazeWidth, MazeHeight, DenWidth, DenHeight, seed)
	}
	placeDots(cells, m, solution)
	placePowerUps(cells, m, PowerUps)
	placeGate(cells, m)

	start := m.Start()
	player := dweller.Position{X: 2 * start.X, Y: start.Y}
	ghosts := denSlots(m.Width(), m.Height(), rand.New(rand.NewSource(seed)))

	return New(NewGrid(widen(cells), DefaultFootprint), player, ghosts), nil
}

// mazeCells converts maze cells to level cells, one per maze cell.
func mazeCells(m *maze.Maze) [][]Cell {
	cells := make([][]Cell, m.Height())
	for y := 0; y < m.Height(); y++ {
		cells[y] = make([]Cell, m.Width())
		for x := 0; x < m.Width(); x++ {
			cell, ok := m.Cell(x, y)
			if !ok {
				cells[y][x] = Wall
				continue
			}
			switch cell {
			case maze.Wall:
				cells[y][x] = Wall
			case maze.Path, maze.Start, maze.End:
				cells[y][x] = Empty
			default:
				cells[y][x] = Wall
			}
		}
	}
	return cells
}

// widen doubles every cell horizontally so that a two-column body fits a corridor.
// Pickups stay on the left column only so each is counted once.
func widen(cells [][]Cell) [][]Cell {
	rows := make([][]Cell, len(cells))
	for y, row := range cells {
		rows[y] = make([]Cell, 0, 2*len(row))
		for _, c := range row {
			switch c {
			case Wall, Gate:
				rows[y] = append(rows[y], c, c)
			default:
				rows[y] = append(rows[y], c, Empty)
			}
		}
	}
	return rows
}

// placeDots puts a dot on every solution cell outside the den.
func placeDots(cells [][]Cell, m *maze.Maze, solution []maze.Point) {
	for _, p := range solution {
		if cells[p.Y][p.X] == Empty && !m.IsInsideDen(p) {
			cells[p.Y][p.X] = Dot
		}
	}
	start := m.Start()
	cells[start.Y][start.X] = Empty
}

// placePowerUps places requested number of power-ups at maximum distance from
// the maze center and between them.
func placePowerUps(cells [][]Cell, m *maze.Maze, requested int) {
	var candidates []maze.Point
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			p := maze.Point{X: x, Y: y}
			if cells[y][x] == Empty && !m.IsInsideDen(p) && p != m.Start() {
				candidates = append(candidates, p)
			}
		}
	}
	if requested <= 0 || len(candidates) == 0 {
		return
	}
	if requested > len(candidates) {
		requested = len(candidates)
	}

	center := maze.Point{X: m.Width() / 2, Y: m.Height() / 2}
	var chosen []maze.Point

	// The first one goes farthest from the center.
	best, bestDist := -1, -1
	for i, p := range candidates {
		if d := manhattan(p, center); d > bestDist {
			best, bestDist = i, d
		}
	}
	chosen = append(chosen, candidates[best])
	candidates[best] = candidates[len(candidates)-1]
	candidates = candidates[:len(candidates)-1]

	// The rest greedily maximize the distance to those already placed.
	for len(chosen) < requested && len(candidates) > 0 {
		best, bestDist = -1, -1
		for i, cand := range candidates {
			nearest := math.MaxInt32
			for _, p := range chosen {
				if d := manhattan(cand, p); d < nearest {
					nearest = d
				}
			}
			if nearest > bestDist {
				best, bestDist = i, nearest
			}
		}
		chosen = append(chosen, candidates[best])
		candidates[best] = candidates[len(candidates)-1]
		candidates = candidates[:len(candidates)-1]
	}

	for _, p := range chosen {
		cells[p.Y][p.X] = PowerUp
	}
}

// placeGate closes the den exit in the middle of its top wall.
func placeGate(cells [][]Cell, m *maze.Maze) {
	x, y := m.Width()/2, (m.Height()-DenHeight)/2
	if cells[y][x] != Wall {
		cells[y][x] = Gate
	}
}

// denSlots spreads the four ghosts over the den interior, in grid coordinates.
func denSlots(mazeWidth, mazeHeight int, rng *rand.Rand) [dweller.GhostCount]*dweller.Position {
	startCol := (mazeWidth-DenWidth)/2 + 1
	startRow := (mazeHeight-DenHeight)/2 + 1
	inner := DenWidth - 2

	var slots [dweller.GhostCount]*dweller.Position
	cols := rng.Perm(inner)
	for i := range slots {
		p := dweller.Position{
			X: 2 * (startCol + cols[i%inner]),
			Y: startRow + (i/inner)%(DenHeight-2),
		}
		slots[i] = &p
	}
	return slots
}

func manhattan(a, b maze.Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
