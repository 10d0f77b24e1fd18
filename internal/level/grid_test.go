package level

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/vinser/mazechase/internal/dweller"
)

// wide is a maze for two-column bodies.
//
//	col: 0123456
//	0    WWWWWWW
//	1    WW  GWW
//	2    WP    W
//	3    W dW  W
//	4    WWWWWWW
const wide = "WWWWWWW\nWW  GWW\nWP    W\nW dW  W\nWWWWWWW\n"

func TestIsWalkableFootprint(t *testing.T) {
	tests := []struct {
		name string
		at   dweller.Position
		dir  dweller.Direction
		want bool
	}{
		{name: "right clears body", at: dweller.Position{X: 2, Y: 2}, dir: dweller.Right, want: true},
		{name: "right hits wall two ahead", at: dweller.Position{X: 4, Y: 2}, dir: dweller.Right, want: false},
		{name: "left one ahead", at: dweller.Position{X: 2, Y: 2}, dir: dweller.Left, want: true},
		{name: "left into border", at: dweller.Position{X: 1, Y: 2}, dir: dweller.Left, want: false},
		{name: "up both columns free", at: dweller.Position{X: 2, Y: 2}, dir: dweller.Up, want: true},
		{name: "up second column gate", at: dweller.Position{X: 3, Y: 2}, dir: dweller.Up, want: false},
		{name: "up first column wall", at: dweller.Position{X: 1, Y: 2}, dir: dweller.Up, want: false},
		{name: "down dot and wall", at: dweller.Position{X: 2, Y: 2}, dir: dweller.Down, want: false},
		{name: "down both empty", at: dweller.Position{X: 4, Y: 2}, dir: dweller.Down, want: true},
		{name: "down onto dot and empty", at: dweller.Position{X: 1, Y: 2}, dir: dweller.Down, want: true},
	}
	g := mustParse(t, wide, 2).Grid
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.IsWalkable(tc.at, tc.dir); got != tc.want {
				t.Fatalf("IsWalkable(%+v, %v) = %v, want %v", tc.at, tc.dir, got, tc.want)
			}
		})
	}
}

func TestIsWalkableNarrow(t *testing.T) {
	g := mustParse(t, "WWWWW\nWdXGW\nW PTW\nWWWWW\n", 1).Grid
	tests := []struct {
		at   dweller.Position
		dir  dweller.Direction
		want bool
	}{
		{at: dweller.Position{X: 2, Y: 2}, dir: dweller.Up, want: true},     // power-up
		{at: dweller.Position{X: 2, Y: 2}, dir: dweller.Right, want: true},  // teleport
		{at: dweller.Position{X: 2, Y: 2}, dir: dweller.Left, want: true},   // empty
		{at: dweller.Position{X: 2, Y: 2}, dir: dweller.Down, want: false},  // wall
		{at: dweller.Position{X: 3, Y: 2}, dir: dweller.Up, want: false},    // gate
		{at: dweller.Position{X: 1, Y: 2}, dir: dweller.Up, want: true},     // dot
		{at: dweller.Position{X: 3, Y: 2}, dir: dweller.Right, want: false}, // wall
	}
	for _, tc := range tests {
		if got := g.IsWalkable(tc.at, tc.dir); got != tc.want {
			t.Errorf("IsWalkable(%+v, %v) = %v, want %v", tc.at, tc.dir, got, tc.want)
		}
	}
}

// An open grid with no border: every edge move must be refused, not fault.
func TestIsWalkableOutsideGrid(t *testing.T) {
	g := NewGrid([][]Cell{
		{Empty, Empty, Empty},
		{Empty, Empty, Empty},
	}, 2)
	tests := []struct {
		at  dweller.Position
		dir dweller.Direction
	}{
		{at: dweller.Position{X: 0, Y: 0}, dir: dweller.Left},
		{at: dweller.Position{X: 0, Y: 0}, dir: dweller.Up},
		{at: dweller.Position{X: 1, Y: 1}, dir: dweller.Down},
		{at: dweller.Position{X: 1, Y: 0}, dir: dweller.Right},
		{at: dweller.Position{X: 2, Y: 0}, dir: dweller.Down},
		{at: dweller.Position{X: -3, Y: -3}, dir: dweller.Right},
	}
	for _, tc := range tests {
		if g.IsWalkable(tc.at, tc.dir) {
			t.Errorf("IsWalkable(%+v, %v) = true at the edge", tc.at, tc.dir)
		}
	}
	if !g.IsWalkable(dweller.Position{X: 0, Y: 0}, dweller.Right) {
		t.Error("IsWalkable({0 0}, right) = false inside the grid")
	}
}

func TestCellAtOutOfBounds(t *testing.T) {
	g := mustParse(t, wide, 2).Grid
	for _, p := range []dweller.Position{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: 7, Y: 0}, {X: 0, Y: 5}} {
		if _, err := g.CellAt(p); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("CellAt(%+v) error = %v, want ErrOutOfBounds", p, err)
		}
	}
}

func TestClear(t *testing.T) {
	g := mustParse(t, "WWWWW\nWPdXW\nWWWWW\n", 1).Grid
	dot := dweller.Position{X: 2, Y: 1}
	g.Clear(dot)
	g.Clear(dot)
	if c, _ := g.CellAt(dot); c != Empty {
		t.Fatalf("cleared cell = %v, want empty", c)
	}
	g.Clear(dweller.Position{X: 99, Y: 99})
	if g.Count(Dot) != 0 || g.Count(PowerUp) != 1 {
		t.Fatalf("dots=%d powerups=%d", g.Count(Dot), g.Count(PowerUp))
	}
}

func TestCellsIsACopy(t *testing.T) {
	g := mustParse(t, "WWW\nWPW\nWdW\nWWW\n", 1).Grid
	rows := g.Cells()
	rows[2][1] = Wall
	if c, _ := g.CellAt(dweller.Position{X: 1, Y: 2}); c != Dot {
		t.Fatalf("grid changed through Cells(): %v", c)
	}
}
