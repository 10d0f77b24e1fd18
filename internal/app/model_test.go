package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/mazechase/internal/engine"
	"github.com/vinser/mazechase/internal/level"
	"github.com/vinser/mazechase/internal/model/over"
	"github.com/vinser/mazechase/internal/model/play"
	"github.com/vinser/mazechase/internal/style"
)

func frame(outcome engine.Outcome) play.FrameMsg {
	return play.FrameMsg(engine.Snapshot{
		Cells:     [][]level.Cell{{level.Wall, level.Empty, level.Wall}},
		Footprint: 1,
		Outcome:   outcome,
	})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelFlow(t *testing.T) {
	m := NewModel(style.NewPalette(1))

	m, cmd := update(t, m, frame(engine.Running))
	if m.status != statusGameplay || cmd != nil {
		t.Fatalf("status %v after a running frame", m.status)
	}

	m, cmd = update(t, m, frame(engine.Cleared))
	if m.status != statusGameOver || cmd == nil {
		t.Fatalf("status %v after the last frame", m.status)
	}

	// Frames that arrive after the end are ignored.
	m, _ = update(t, m, frame(engine.Running))
	if m.status != statusGameOver {
		t.Fatalf("status %v after a late frame", m.status)
	}

	m, cmd = update(t, m, over.TimedoutMsg{})
	if m.status != statusQuitting || !isQuit(cmd) {
		t.Fatalf("status %v, quit=%v", m.status, isQuit(cmd))
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(style.NewPalette(1))
	m, cmd := update(t, m, frame(engine.Quit))
	if m.status != statusQuitting || !isQuit(cmd) {
		t.Fatalf("status %v, quit=%v", m.status, isQuit(cmd))
	}
	if m.View() != "" {
		t.Fatalf("quitting view = %q", m.View())
	}
}
