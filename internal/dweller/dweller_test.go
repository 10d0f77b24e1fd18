package dweller

import "testing"

func TestStep(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		want Position
	}{
		{name: "up", dir: Up, want: Position{X: 3, Y: 1}},
		{name: "down", dir: Down, want: Position{X: 3, Y: 3}},
		{name: "left", dir: Left, want: Position{X: 2, Y: 2}},
		{name: "right", dir: Right, want: Position{X: 4, Y: 2}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Position{X: 3, Y: 2}.Step(tc.dir)
			if got != tc.want {
				t.Fatalf("Step(%v) = %+v, want %+v", tc.dir, got, tc.want)
			}
		})
	}
}

func TestStepPastEdgeGoesNegative(t *testing.T) {
	if got := (Position{}).Step(Left); got.X != -1 {
		t.Fatalf("stepping left from column 0 gave X=%d, want -1", got.X)
	}
	if got := (Position{}).Step(Up); got.Y != -1 {
		t.Fatalf("stepping up from row 0 gave Y=%d, want -1", got.Y)
	}
}

func TestWalkMovesOneAxisByOne(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		t.Run(d.String(), func(t *testing.T) {
			start := Position{X: 5, Y: 5}
			m := NewMobile(start, d)
			m.Walk()
			got := m.Pos()
			dx, dy := abs(got.X-start.X), abs(got.Y-start.Y)
			if dx+dy != 1 {
				t.Fatalf("walk %v moved from %+v to %+v", d, start, got)
			}
			if d.Vertical() && dx != 0 || !d.Vertical() && dy != 0 {
				t.Fatalf("walk %v changed the wrong axis: %+v", d, got)
			}
			if m.Prev() != start {
				t.Fatalf("previous = %+v, want %+v", m.Prev(), start)
			}
		})
	}
}

func TestWalkTwiceKeepsOnlyLastPrevious(t *testing.T) {
	m := NewMobile(Position{X: 1, Y: 1}, Right)
	m.Walk()
	m.Walk()
	if m.Pos() != (Position{X: 3, Y: 1}) {
		t.Fatalf("position = %+v, want {3 1}", m.Pos())
	}
	if m.Prev() != (Position{X: 2, Y: 1}) {
		t.Fatalf("previous = %+v, want {2 1}", m.Prev())
	}
}

func TestSettersDoNotMove(t *testing.T) {
	m := NewMobile(Position{X: 1, Y: 1}, Left)
	m.SetNextDirection(Up)
	m.SetDirection(Down)
	if m.Dir() != Down || m.NextDir() != Up {
		t.Fatalf("dir=%v next=%v, want down/up", m.Dir(), m.NextDir())
	}
	if m.Pos() != m.Prev() {
		t.Fatalf("setters moved the mobile: %+v -> %+v", m.Prev(), m.Pos())
	}
}

func TestJump(t *testing.T) {
	m := NewMobile(Position{X: 0, Y: 4}, Left)
	m.Jump(Position{X: 20, Y: 4})
	if m.Pos() != (Position{X: 20, Y: 4}) || m.Prev() != (Position{X: 0, Y: 4}) {
		t.Fatalf("jump: pos=%+v prev=%+v", m.Pos(), m.Prev())
	}
}

type countingPolicy struct{ calls int }

func (c *countingPolicy) Move(*Ghost, Walker) { c.calls++ }

func TestMoveGhostsSkipsInactive(t *testing.T) {
	ghosts := []Ghost{
		NewGhost(1, Position{X: 1, Y: 1}),
		IdleGhost(2),
		NewGhost(3, Position{X: 5, Y: 1}),
		IdleGhost(4),
	}
	p := &countingPolicy{}
	MoveGhosts(ghosts, p, nil)
	if p.calls != 2 {
		t.Fatalf("policy called %d times, want 2", p.calls)
	}

	before := ghosts[0].Pos()
	MoveGhosts(ghosts, Idle{}, nil)
	if ghosts[0].Pos() != before {
		t.Fatalf("idle policy moved a ghost")
	}
}

func TestOverlap(t *testing.T) {
	tests := []struct {
		name      string
		a, b      Position
		footprint int
		want      bool
	}{
		{name: "same cell", a: Position{X: 2, Y: 2}, b: Position{X: 2, Y: 2}, footprint: 1, want: true},
		{name: "adjacent narrow", a: Position{X: 2, Y: 2}, b: Position{X: 3, Y: 2}, footprint: 1, want: false},
		{name: "adjacent wide", a: Position{X: 2, Y: 2}, b: Position{X: 3, Y: 2}, footprint: 2, want: true},
		{name: "touching wide", a: Position{X: 2, Y: 2}, b: Position{X: 4, Y: 2}, footprint: 2, want: false},
		{name: "other row", a: Position{X: 2, Y: 2}, b: Position{X: 2, Y: 3}, footprint: 2, want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Overlap(tc.a, tc.b, tc.footprint); got != tc.want {
				t.Fatalf("Overlap(%+v, %+v, %d) = %v, want %v", tc.a, tc.b, tc.footprint, got, tc.want)
			}
		})
	}
}
