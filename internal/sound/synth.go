package sound

import (
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/pkg/errors"
)

// note is a tone of freq Hz lasting d. A zero freq is a rest.
type note struct {
	freq float64
	d    time.Duration
}

// tunes lists every effect as a sequence of notes.
var tunes = map[string][]note{
	CHOMP:    {{freq: 660, d: 30 * time.Millisecond}, {freq: 440, d: 30 * time.Millisecond}},
	POWERUP:  {{freq: 523, d: 60 * time.Millisecond}, {freq: 659, d: 60 * time.Millisecond}, {freq: 784, d: 90 * time.Millisecond}},
	TELEPORT: {{freq: 1200, d: 40 * time.Millisecond}, {freq: 900, d: 40 * time.Millisecond}, {freq: 600, d: 40 * time.Millisecond}, {freq: 300, d: 40 * time.Millisecond}},
	BUMP:     {{freq: 110, d: 40 * time.Millisecond}},
	CLEARED: {
		{freq: 523, d: 120 * time.Millisecond}, {freq: 659, d: 120 * time.Millisecond},
		{freq: 784, d: 120 * time.Millisecond}, {d: 60 * time.Millisecond},
		{freq: 1047, d: 300 * time.Millisecond},
	},
	CAUGHT: {
		{freq: 494, d: 150 * time.Millisecond}, {freq: 466, d: 150 * time.Millisecond},
		{freq: 440, d: 150 * time.Millisecond}, {freq: 415, d: 400 * time.Millisecond},
	},
	QUIT: {{freq: 392, d: 80 * time.Millisecond}, {freq: 262, d: 160 * time.Millisecond}},
}

// default per-sample volumes in dB
var tuneVols = map[string]float64{
	CHOMP: -2,
	BUMP:  -3,
}

// synthesize renders every tune into a buffer.
func (mgr *Manager) synthesize() error {
	for name, notes := range tunes {
		s, err := mgr.sequence(notes)
		if err != nil {
			return errors.Wrapf(err, "tune %s", name)
		}
		buf := beep.NewBuffer(mgr.format)
		buf.Append(s)
		mgr.samples[name] = buf
		if db, ok := tuneVols[name]; ok {
			mgr.sampleVols[name] = db
		}
	}
	return nil
}

func (mgr *Manager) sequence(notes []note) (beep.Streamer, error) {
	sr := mgr.format.SampleRate
	var parts []beep.Streamer
	for _, n := range notes {
		length := sr.N(n.d)
		if n.freq == 0 {
			parts = append(parts, beep.Silence(length))
			continue
		}
		tone, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, err
		}
		// -2 dB leaves headroom in the mixer.
		parts = append(parts, &effects.Volume{
			Streamer: beep.Take(length, tone),
			Base:     2,
			Volume:   -2,
		})
	}
	return beep.Seq(parts...), nil
}
