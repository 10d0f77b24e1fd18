package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Page styles
	TopPattern = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))            // Pinkish-reddish purple
	Title      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	Content    = lipgloss.NewStyle()
	Footer     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	PlayHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")) // Green
	Cleared    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")) // Bright green
	Caught     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))  // Bright red
)

type RGB struct {
	R int
	G int
	B int
}

var RGBColor = map[string]RGB{
	"black":   {0, 0, 0},
	"red":     {255, 0, 0},
	"green":   {0, 255, 0},
	"blue":    {33, 33, 255},
	"yellow":  {255, 255, 0},
	"magenta": {255, 0, 255},
	"cyan":    {0, 255, 255},
	"white":   {255, 255, 255},
	"grey":    {128, 128, 128},
	"pink":    {255, 184, 174},
	"orange":  {255, 184, 82},
}

// GenerateHexColor generates hexadcimal string for a given RGB values. r, g, b sould be in the range 0-255
// Format: #RRGGBB
func GenerateHexColor(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

// minBright is the share of a colour left in the darkest night.
const minBright = 0.35

// Shade scales c by brightness in [0, 1], never below minBright.
func Shade(c RGB, brightness float64) lipgloss.Color {
	if brightness < 0 {
		brightness = 0
	}
	if brightness > 1 {
		brightness = 1
	}
	k := minBright + (1-minBright)*brightness
	return lipgloss.Color(GenerateHexColor(int(float64(c.R)*k), int(float64(c.G)*k), int(float64(c.B)*k)))
}

// Palette holds the styles the maze is drawn with.
type Palette struct {
	Wall     lipgloss.Style
	Gate     lipgloss.Style
	Dot      lipgloss.Style
	PowerUp  lipgloss.Style
	Teleport lipgloss.Style
	Player   lipgloss.Style
	Ghosts   [4]lipgloss.Style
}

// NewPalette returns the maze palette for the given daylight brightness.
// Only the scenery darkens; actors stay fully lit.
func NewPalette(brightness float64) Palette {
	fg := func(name string) lipgloss.Style {
		c := RGBColor[name]
		return lipgloss.NewStyle().Foreground(lipgloss.Color(GenerateHexColor(c.R, c.G, c.B)))
	}
	return Palette{
		Wall:     lipgloss.NewStyle().Foreground(Shade(RGBColor["blue"], brightness)),
		Gate:     lipgloss.NewStyle().Foreground(Shade(RGBColor["pink"], brightness)),
		Dot:      lipgloss.NewStyle().Foreground(Shade(RGBColor["white"], brightness)),
		PowerUp:  fg("orange").Bold(true),
		Teleport: fg("green"),
		Player:   fg("yellow").Bold(true),
		Ghosts: [4]lipgloss.Style{
			fg("cyan"),
			fg("blue"),
			fg("red"),
			fg("magenta"),
		},
	}
}
