package over

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/mazechase/internal/engine"
	"github.com/vinser/mazechase/internal/render"
	"github.com/vinser/mazechase/internal/style"
)

// Period is how long the screen stays up.
const Period = 4 * time.Second

type Model struct {
	width      int
	height     int
	termWidth  int
	termHeight int

	outcome  engine.Outcome
	score    int
	dotsLeft int
	ticks    int
	until    time.Time
}

// TickMsg is a tick message for periodic updates.
type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// TimedoutMsg signals that the screen has been shown long enough.
type TimedoutMsg struct{}

func timedoutCmd() tea.Cmd {
	return func() tea.Msg {
		return TimedoutMsg{}
	}
}

// New shows how the game in the final snapshot s ended.
func New(s engine.Snapshot, width, height int) Model {
	if width < lipgloss.Width(footer) {
		width = lipgloss.Width(footer)
	}
	return Model{
		width:    width,
		height:   height,
		outcome:  s.Outcome,
		score:    s.Score,
		dotsLeft: s.DotsLeft,
		ticks:    s.Tick,
		until:    time.Now().Add(Period),
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg.(type) {
	case TickMsg:
		if time.Now().After(m.until) {
			return m, timedoutCmd()
		}
		return m, tick()
	}
	return m, nil
}

const footer = "q — quit"

func (m Model) title() string {
	switch m.outcome {
	case engine.Cleared:
		return "Maze cleared!"
	case engine.Caught:
		return "Caught!"
	}
	return "Game over"
}

func (m Model) View() string {
	return render.Page(render.Frame{
		Title:      m.title(),
		Content:    m.renderContent(),
		Footer:     footer,
		Width:      m.width,
		Height:     m.height,
		TermWidth:  m.termWidth,
		TermHeight: m.termHeight,
	})
}

func (m Model) renderContent() string {
	lines := []string{
		"",
		fmt.Sprintf("Score: %d", m.score),
	}
	if m.outcome == engine.Caught {
		lines = append(lines, style.Caught.Render(fmt.Sprintf("%d dots left", m.dotsLeft)))
	} else {
		lines = append(lines, style.Cleared.Render("Every dot eaten"))
	}
	lines = append(lines, fmt.Sprintf("%d ticks", m.ticks), "")
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
