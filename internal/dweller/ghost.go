package dweller

// GhostCount is the number of ghost slots every level has.
const GhostCount = 4

// Ghost represents a ghost entity.
type Ghost struct {
	Mobile
	index  int
	active bool
}

// NewGhost places ghost number index (1..4) at home.
func NewGhost(index int, home Position) Ghost {
	return Ghost{
		Mobile: NewMobile(home, Right),
		index:  index,
		active: true,
	}
}

// IdleGhost returns an inactive ghost for a slot the level does not fill.
func IdleGhost(index int) Ghost {
	return Ghost{
		Mobile: NewMobile(Position{}, Right),
		index:  index,
	}
}

// Index returns the ghost number, 1..4.
func (g Ghost) Index() int {
	return g.index
}

// Active reports whether the ghost is on the map.
func (g Ghost) Active() bool {
	return g.active
}

// Walker answers the only question a movement policy may ask the maze.
type Walker interface {
	IsWalkable(p Position, d Direction) bool
}

// Policy moves a ghost once per tick.
type Policy interface {
	Move(g *Ghost, w Walker)
}

// Idle keeps ghosts where the level put them.
type Idle struct{}

func (Idle) Move(*Ghost, Walker) {}

// MoveGhosts applies p to every active ghost.
func MoveGhosts(ghosts []Ghost, p Policy, w Walker) {
	for i := range ghosts {
		if ghosts[i].active {
			p.Move(&ghosts[i], w)
		}
	}
}

// Overlap reports whether two bodies of the given footprint width intersect.
func Overlap(a, b Position, footprint int) bool {
	if a.Y != b.Y {
		return false
	}
	return abs(a.X-b.X) < footprint
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
