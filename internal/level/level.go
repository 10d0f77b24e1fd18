package level

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/vinser/mazechase/internal/dweller"
	"github.com/vinser/mazechase/internal/embeddata"
)

// DefaultFootprint is the body width used by the terminal renderer.
const DefaultFootprint = 2

var (
	// ErrEmpty is returned for a level file with no rows.
	ErrEmpty = errors.New("level has no rows")
	// ErrNoPlayer is returned when the level has no player start.
	ErrNoPlayer = errors.New("level has no player start")
	// ErrTwoPlayers is returned when the level has more than one player start.
	ErrTwoPlayers = errors.New("level has more than one player start")
)

// Level is a loaded maze with its actors at their start positions.
type Level struct {
	Grid   *Grid
	Player dweller.Mobile
	Ghosts [dweller.GhostCount]dweller.Ghost

	teleports []dweller.Position
}

// New assembles a level from a grid and start positions.
// A nil entry in ghosts leaves that slot idle.
func New(g *Grid, player dweller.Position, ghosts [dweller.GhostCount]*dweller.Position) *Level {
	lv := &Level{
		Grid:   g,
		Player: dweller.NewMobile(player, dweller.Left),
	}
	for i, home := range ghosts {
		if home == nil {
			lv.Ghosts[i] = dweller.IdleGhost(i + 1)
			continue
		}
		lv.Ghosts[i] = dweller.NewGhost(i+1, *home)
	}
	lv.indexTeleports()
	return lv
}

func (lv *Level) indexTeleports() {
	lv.teleports = lv.teleports[:0]
	for y := 0; y < lv.Grid.Height(); y++ {
		for x := 0; x < lv.Grid.Width(); x++ {
			if lv.Grid.cells[y][x] == Teleport {
				lv.teleports = append(lv.teleports, dweller.Position{X: x, Y: y})
			}
		}
	}
	sort.Slice(lv.teleports, func(i, j int) bool {
		a, b := lv.teleports[i], lv.teleports[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
}

// Teleports returns the teleport cells in row-major order.
func (lv *Level) Teleports() []dweller.Position {
	return append([]dweller.Position(nil), lv.teleports...)
}

// Teleport returns the partner of the teleport at from.
// Teleports pair up in row-major order: first with second, third with fourth.
// An odd one out has no partner.
func (lv *Level) Teleport(from dweller.Position) (dweller.Position, bool) {
	for i, p := range lv.teleports {
		if p != from {
			continue
		}
		partner := i + 1
		if i%2 == 1 {
			partner = i - 1
		}
		if partner >= len(lv.teleports) {
			return dweller.Position{}, false
		}
		return lv.teleports[partner], true
	}
	return dweller.Position{}, false
}

// Parse reads a level in text form, one row per line:
//
//	W wall, G gate, T teleport, d dot, X power-up,
//	P player start, 1..4 ghost start, anything else empty.
func Parse(r io.Reader, footprint int) (*Level, error) {
	var (
		rows   [][]Cell
		player *dweller.Position
		ghosts [dweller.GhostCount]*dweller.Position
	)
	scanner := bufio.NewScanner(r)
	for y := 0; scanner.Scan(); y++ {
		line := bytes.TrimSuffix(scanner.Bytes(), []byte{'\r'})
		row := make([]Cell, 0, len(line))
		for _, c := range string(line) {
			pos := dweller.Position{X: len(row), Y: y}
			cell := Empty
			switch c {
			case 'W':
				cell = Wall
			case 'G':
				cell = Gate
			case 'T':
				cell = Teleport
			case 'd':
				cell = Dot
			case 'X':
				cell = PowerUp
			case 'P':
				if player != nil {
					return nil, errors.Wrapf(ErrTwoPlayers, "row %d", y+1)
				}
				player = &pos
			case '1', '2', '3', '4':
				ghosts[c-'1'] = &pos
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read level")
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	if player == nil {
		return nil, ErrNoPlayer
	}
	return New(NewGrid(rows, footprint), *player, ghosts), nil
}

// Load reads the level file at path.
func Load(path string, footprint int) (*Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open level")
	}
	defer f.Close()

	lv, err := Parse(f, footprint)
	if err != nil {
		return nil, errors.Wrapf(err, "level %s", path)
	}
	return lv, nil
}

// Default returns the level shipped inside the binary.
func Default() (*Level, error) {
	data, err := embeddata.ReadLevel()
	if err != nil {
		return nil, errors.Wrap(err, "read embedded level")
	}
	return Parse(bytes.NewReader(data), DefaultFootprint)
}
