package engine

import (
	"context"
	"log"
	"time"

	"github.com/vinser/mazechase/internal/dweller"
	"github.com/vinser/mazechase/internal/level"
	"github.com/vinser/mazechase/internal/score"
)

type Config struct {
	Renderer Renderer                 // may be nil
	Input    <-chan dweller.Direction // may be nil
	Pace     Pace
	Listener Listener
	Policy   dweller.Policy // dweller.Idle when nil
}

// Result is how a game ended.
type Result struct {
	Outcome Outcome
	Score   int
	Ticks   int
}

// Game owns the level and everything that changes during play.
// All methods must be called from one goroutine.
type Game struct {
	lv       *level.Level
	score    *score.Score
	renderer Renderer
	input    <-chan dweller.Direction
	pace     Pace
	listener Listener
	policy   dweller.Policy

	ticks    int
	dotsLeft int
	blocked  bool
	outcome  Outcome
}

func New(lv *level.Level, cfg Config) *Game {
	g := &Game{
		lv:       lv,
		score:    score.NewScore(),
		renderer: cfg.Renderer,
		input:    cfg.Input,
		pace:     cfg.Pace,
		listener: cfg.Listener,
		policy:   cfg.Policy,
		dotsLeft: lv.Grid.Count(level.Dot),
	}
	if g.pace.Vertical <= 0 || g.pace.Horizontal <= 0 {
		g.pace = FixedPace(DefaultTick)
	}
	if g.policy == nil {
		g.policy = dweller.Idle{}
	}
	return g
}

func (g *Game) Score() int { return g.score.Get() }

func (g *Game) Outcome() Outcome { return g.outcome }

func (g *Game) Player() dweller.Mobile { return g.lv.Player }

func (g *Game) Ticks() int { return g.ticks }

// Tick renders the state left by the previous tick and then advances the game
// by one step. Once the game is over Tick only reports the outcome.
func (g *Game) Tick() Outcome {
	if g.outcome.Over() {
		return g.outcome
	}
	g.render()
	g.simulate()
	g.ticks++
	return g.outcome
}

func (g *Game) render() {
	if g.renderer != nil {
		g.renderer.Render(g.Snapshot())
	}
}

func (g *Game) emit(e Event) {
	if g.listener != nil {
		g.listener(e)
	}
}

func (g *Game) simulate() {
	grid := g.lv.Grid
	player := &g.lv.Player

	pos, dir, next := player.Pos(), player.Dir(), player.NextDir()
	walked := false
	switch {
	case next != dir && grid.IsWalkable(pos, next):
		player.SetDirection(next)
		player.Walk()
		walked = true
	case grid.IsWalkable(pos, dir):
		player.Walk()
		walked = true
	default:
		if !g.blocked {
			g.emit(EventBlocked)
		}
	}
	g.blocked = !walked

	ateDot := false
	if walked {
		ateDot = g.arrive(player)
	}

	dweller.MoveGhosts(g.lv.Ghosts[:], g.policy, grid)

	switch {
	case g.caught():
		g.outcome = Caught
		log.Printf("engine: caught at %+v after %d ticks", g.lv.Player.Pos(), g.ticks+1)
		g.emit(EventCaught)
	case ateDot && g.dotsLeft == 0:
		g.outcome = Cleared
		log.Printf("engine: cleared with score %d after %d ticks", g.score.Get(), g.ticks+1)
		g.emit(EventCleared)
	}

	g.poll()
}

// arrive handles the cell the player has just walked onto and reports
// whether it held a dot.
func (g *Game) arrive(player *dweller.Mobile) bool {
	grid := g.lv.Grid
	at := player.Pos()
	c, err := grid.CellAt(at)
	if err != nil {
		return false
	}
	switch c {
	case level.Dot:
		grid.Clear(at)
		g.score.EatDot()
		g.dotsLeft--
		g.emit(EventDot)
		return true
	case level.PowerUp:
		grid.Clear(at)
		g.emit(EventPowerUp)
	case level.Teleport:
		if to, ok := g.lv.Teleport(at); ok {
			player.Jump(to)
			g.emit(EventTeleport)
		}
	}
	return false
}

func (g *Game) caught() bool {
	at := g.lv.Player.Pos()
	w := g.lv.Grid.Footprint()
	for _, gh := range g.lv.Ghosts {
		if gh.Active() && dweller.Overlap(at, gh.Pos(), w) {
			return true
		}
	}
	return false
}

// poll takes a pending direction without waiting. A closed channel means no
// more input.
func (g *Game) poll() {
	if g.input == nil {
		return
	}
	select {
	case d, ok := <-g.input:
		if !ok {
			g.input = nil
			return
		}
		g.lv.Player.SetNextDirection(d)
	default:
	}
}

// Run ticks until the game is over or ctx is done. The final state is rendered
// once more so the renderer sees how the game ended.
func (g *Game) Run(ctx context.Context) (Result, error) {
	for !g.outcome.Over() {
		if ctx.Err() != nil {
			g.outcome = Quit
			break
		}
		if g.Tick().Over() {
			break
		}
		timer := time.NewTimer(g.pace.Interval(g.lv.Player.Dir()))
		select {
		case <-ctx.Done():
			timer.Stop()
			g.outcome = Quit
		case <-timer.C:
		}
	}
	g.render()
	log.Printf("engine: %v, score %d, %d ticks", g.outcome, g.score.Get(), g.ticks)
	return Result{Outcome: g.outcome, Score: g.score.Get(), Ticks: g.ticks}, nil
}
