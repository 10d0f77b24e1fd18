package dweller

// Position represents coordinates on the map.
// X is the column and Y is the row. Both are signed so that a step past the
// top or left edge is visible as a negative value.
type Position struct {
	X, Y int
}

// Step returns the neighbouring position in direction d.
func (p Position) Step(d Direction) Position {
	switch d {
	case Up:
		p.Y--
	case Down:
		p.Y++
	case Left:
		p.X--
	case Right:
		p.X++
	}
	return p
}

// Direction represents movement direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Vertical reports whether d moves along the row axis.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}
