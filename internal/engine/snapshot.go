package engine

import (
	"github.com/vinser/mazechase/internal/dweller"
	"github.com/vinser/mazechase/internal/level"
)

// Snapshot is a copy of the game state that a renderer may keep.
// It shares no memory with the game.
type Snapshot struct {
	Tick      int
	Cells     [][]level.Cell
	Footprint int
	Player    dweller.Mobile
	Ghosts    [dweller.GhostCount]dweller.Ghost
	Score     int
	DotsLeft  int
	Outcome   Outcome
}

// Renderer draws snapshots. Render is called on the game loop goroutine and
// must not block for long.
type Renderer interface {
	Render(Snapshot)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Snapshot)

func (f RendererFunc) Render(s Snapshot) { f(s) }

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.ticks,
		Cells:     g.lv.Grid.Cells(),
		Footprint: g.lv.Grid.Footprint(),
		Player:    g.lv.Player,
		Ghosts:    g.lv.Ghosts,
		Score:     g.score.Get(),
		DotsLeft:  g.dotsLeft,
		Outcome:   g.outcome,
	}
}
