package play

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/mazechase/internal/dweller"
	"github.com/vinser/mazechase/internal/engine"
	"github.com/vinser/mazechase/internal/level"
	"github.com/vinser/mazechase/internal/render"
	"github.com/vinser/mazechase/internal/style"
)

// FrameMsg carries a snapshot from the game loop.
type FrameMsg engine.Snapshot

// Sender is the part of tea.Program the frontend needs.
type Sender interface {
	Send(msg tea.Msg)
}

// Frontend hands game loop snapshots to a running bubbletea program.
type Frontend struct {
	s Sender
}

func NewFrontend(s Sender) Frontend {
	return Frontend{s: s}
}

// Render implements engine.Renderer.
func (f Frontend) Render(s engine.Snapshot) {
	f.s.Send(FrameMsg(s))
}

type keyMap struct {
	Move key.Binding
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Move: key.NewBinding(
		key.WithKeys("up", "down", "left", "right"),
		key.WithHelp("← ↑ ↓ →", "move"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q/esc", "quit"),
	),
}

var cellGlyphs = map[level.Cell]string{
	level.Wall:     "█",
	level.Gate:     "▔",
	level.Dot:      "·",
	level.PowerUp:  "●",
	level.Teleport: "◊",
	level.Empty:    " ",
}

// Actor glyphs by body width.
var (
	playerGlyphs = map[int]map[dweller.Direction]string{
		1: {dweller.Up: "v", dweller.Down: "^", dweller.Left: ">", dweller.Right: "<"},
		2: {dweller.Up: "\\/", dweller.Down: "/\\", dweller.Left: ">O", dweller.Right: "O<"},
	}
	ghostGlyphs = map[int]string{1: "M", 2: "OO"}
)

type Model struct {
	frame    engine.Snapshot
	hasFrame bool
	palette  style.Palette
	help     help.Model

	termWidth  int
	termHeight int

	sb *strings.Builder
}

// New returns a play model drawing with palette p.
func New(p style.Palette) Model {
	return Model{
		palette: p,
		help:    help.New(),
		sb:      &strings.Builder{},
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case FrameMsg:
		m.frame = engine.Snapshot(msg)
		m.hasFrame = true
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// Frame returns the last snapshot received.
func (m Model) Frame() engine.Snapshot {
	return m.frame
}

func (m Model) View() string {
	if !m.hasFrame {
		return "\n  Loading maze..."
	}
	m.sb.Reset()

	width := 0
	if len(m.frame.Cells) > 0 {
		width = len(m.frame.Cells[0])
	}

	m.sb.WriteString(render.Bar(width))
	m.sb.WriteString("\n")
	m.sb.WriteString(style.PlayHeader.Render(m.headerText()))
	m.sb.WriteString("\n")
	m.renderMaze()
	m.sb.WriteString(style.Footer.Render(m.help.View(keys)))

	view := m.sb.String()
	if m.termWidth > 0 && m.termHeight > 0 {
		return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

func (m Model) headerText() string {
	text := fmt.Sprintf("Score: %d  Dots left: %d", m.frame.Score, m.frame.DotsLeft)
	switch m.frame.Outcome {
	case engine.Cleared:
		text += "  " + style.Cleared.Render("CLEARED")
	case engine.Caught:
		text += "  " + style.Caught.Render("CAUGHT")
	}
	return text
}

// renderMaze draws the cells row by row with the actors on top.
func (m Model) renderMaze() {
	type sprite struct {
		glyph string
		style lipgloss.Style
	}
	w := m.frame.Footprint
	if w < 1 {
		w = 1
	}
	actors := make(map[dweller.Position]sprite)
	place := func(at dweller.Position, glyph string, st lipgloss.Style) {
		runes := []rune(glyph)
		for i := 0; i < w && i < len(runes); i++ {
			actors[dweller.Position{X: at.X + i, Y: at.Y}] = sprite{glyph: string(runes[i]), style: st}
		}
	}

	for i, g := range m.frame.Ghosts {
		if g.Active() {
			place(g.Pos(), glyphFor(ghostGlyphs, w), m.palette.Ghosts[i%len(m.palette.Ghosts)])
		}
	}
	pg := playerGlyphs[2]
	if w == 1 {
		pg = playerGlyphs[1]
	}
	place(m.frame.Player.Pos(), pg[m.frame.Player.Dir()], m.palette.Player)

	for y, row := range m.frame.Cells {
		for x, c := range row {
			if a, ok := actors[dweller.Position{X: x, Y: y}]; ok {
				m.sb.WriteString(a.style.Render(a.glyph))
				continue
			}
			m.sb.WriteString(m.cellStyle(c).Render(cellGlyphs[c]))
		}
		m.sb.WriteString("\n")
	}
}

func glyphFor(glyphs map[int]string, w int) string {
	if w == 1 {
		return glyphs[1]
	}
	return glyphs[2]
}

func (m Model) cellStyle(c level.Cell) lipgloss.Style {
	switch c {
	case level.Wall:
		return m.palette.Wall
	case level.Gate:
		return m.palette.Gate
	case level.Dot:
		return m.palette.Dot
	case level.PowerUp:
		return m.palette.PowerUp
	case level.Teleport:
		return m.palette.Teleport
	}
	return style.Content
}
