package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/mazechase/internal/engine"
	"github.com/vinser/mazechase/internal/model/over"
	"github.com/vinser/mazechase/internal/model/play"
	"github.com/vinser/mazechase/internal/style"
)

type status uint

const (
	statusGameplay status = iota
	statusGameOver
	statusQuitting
)

// Model is the root bubbletea model. It only draws: the game loop runs
// elsewhere and sends frames.
type Model struct {
	status status
	play   play.Model
	over   over.Model
	// terminal size cache
	termWidth  int
	termHeight int
}

func NewModel(p style.Palette) Model {
	return Model{
		status: statusGameplay,
		play:   play.New(p),
	}
}

func (m Model) Init() tea.Cmd {
	return m.play.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.play, _ = m.play.Update(msg)
		m.over.SetSize(msg.Width, msg.Height)
		return m, tea.ClearScreen
	}

	switch m.status {
	case statusGameplay:
		switch msg := msg.(type) {
		case play.FrameMsg:
			m.play, cmd = m.play.Update(msg)
			switch msg.Outcome {
			case engine.Cleared, engine.Caught:
				m.status = statusGameOver
				m.over = over.New(engine.Snapshot(msg), m.mazeWidth(), m.mazeHeight())
				m.over.SetSize(m.termWidth, m.termHeight)
				return m, m.over.Init()
			case engine.Quit:
				m.status = statusQuitting
				return m, tea.Quit
			}
		}
	case statusGameOver:
		switch msg := msg.(type) {
		case over.TimedoutMsg:
			m.status = statusQuitting
			return m, tea.Quit
		default:
			m.over, cmd = m.over.Update(msg)
		}
	}
	return m, cmd
}

func (m Model) mazeWidth() int {
	f := m.play.Frame()
	if len(f.Cells) == 0 {
		return 0
	}
	return len(f.Cells[0])
}

func (m Model) mazeHeight() int {
	return len(m.play.Frame().Cells)
}

func (m Model) View() string {
	switch m.status {
	case statusGameplay:
		return m.play.View()
	case statusGameOver:
		return m.over.View()
	}
	return ""
}
