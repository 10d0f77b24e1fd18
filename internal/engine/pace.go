package engine

import (
	"time"

	"github.com/vinser/mazechase/internal/dweller"
)

// DefaultTick is the fixed tick interval.
const DefaultTick = 100 * time.Millisecond

// Pace is the delay between ticks. Rows are taller than columns are wide in a
// terminal, so horizontal moves may be paced faster.
type Pace struct {
	Vertical   time.Duration
	Horizontal time.Duration
}

func FixedPace(d time.Duration) Pace {
	if d <= 0 {
		d = DefaultTick
	}
	return Pace{Vertical: d, Horizontal: d}
}

// AxisPace moves twice as fast along rows as along columns.
func AxisPace() Pace {
	return Pace{Vertical: DefaultTick, Horizontal: DefaultTick / 2}
}

// Interval returns the pause after a tick in which the player faces d.
func (p Pace) Interval(d dweller.Direction) time.Duration {
	if d.Vertical() {
		return p.Vertical
	}
	return p.Horizontal
}
