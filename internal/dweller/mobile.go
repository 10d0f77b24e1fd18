package dweller

// Mobile is anything that walks the maze one cell per tick: the player or a ghost.
type Mobile struct {
	position  Position
	previous  Position
	direction Direction
	next      Direction
}

// NewMobile returns a Mobile standing at p and facing d, with d also queued as
// the next direction.
func NewMobile(p Position, d Direction) Mobile {
	return Mobile{
		position:  p,
		previous:  p,
		direction: d,
		next:      d,
	}
}

// Pos returns the current position.
func (m Mobile) Pos() Position {
	return m.position
}

// Prev returns the last cell occupied before the current one.
func (m Mobile) Prev() Position {
	return m.previous
}

// Dir returns the current direction.
func (m Mobile) Dir() Direction {
	return m.direction
}

// NextDir returns the queued direction.
func (m Mobile) NextDir() Direction {
	return m.next
}

// SetDirection sets the current direction. Walkability is the caller's concern.
func (m *Mobile) SetDirection(d Direction) {
	m.direction = d
}

// SetNextDirection queues d to be taken as soon as the way is clear.
func (m *Mobile) SetNextDirection(d Direction) {
	m.next = d
}

// Walk advances one cell along the current direction.
// The destination must already be known to be walkable.
func (m *Mobile) Walk() {
	m.previous = m.position
	m.position = m.position.Step(m.direction)
}

// Jump relocates the mobile to p, e.g. through a teleport.
func (m *Mobile) Jump(p Position) {
	m.previous = m.position
	m.position = p
}
