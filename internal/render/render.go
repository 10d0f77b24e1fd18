package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/mazechase/internal/style"
)

// Frame is a page: a title on top, a content block and a footer at the bottom.
type Frame struct {
	Title   string
	Content string // rendered already, kept as is
	Footer  string

	Width, Height         int // page size
	TermWidth, TermHeight int // zero leaves the page unplaced
}

// Bar returns the slash pattern that tops every page.
func Bar(width int) string {
	if width < 0 {
		width = 0
	}
	return style.TopPattern.Render(strings.Repeat("/", width))
}

// Page renders the frame and centers it in the terminal.
func Page(f Frame) string {
	top := Bar(f.Width)
	title := style.Title.Render(f.Title)
	footer := style.Footer.Render(f.Footer)

	// Content is centered vertically in what the other parts leave.
	avail := f.Height - lipgloss.Height(top) - lipgloss.Height(title) - lipgloss.Height(footer)
	content := lipgloss.PlaceVertical(avail, lipgloss.Center, f.Content)

	view := lipgloss.JoinVertical(lipgloss.Left, top, title, content, footer)
	if f.TermWidth > 0 && f.TermHeight > 0 {
		return lipgloss.Place(f.TermWidth, f.TermHeight, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}
