package flags

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/vinser/mazechase/internal/ambilite"
)

// Environment variables that supply defaults for the matching flags.
const (
	EnvLevel = "MAZECHASE_LEVEL"
	EnvTick  = "MAZECHASE_TICK"
	EnvLog   = "MAZECHASE_LOG"
	EnvMute  = "MAZECHASE_MUTE"
)

// Flags stores the parsed command-line options
type Flags struct {
	Level     string
	Generate  bool
	Seed      int64
	Tick      time.Duration
	AxisPace  bool
	Footprint int
	Mute      bool
	Night     string
	Lat       float64
	Lon       float64
	Timezone  string
	Log       string
	About     bool
	Reset     bool

	fsv *FlagSetWithVisit
}

// LoadDotEnv adds the variables from an env file to the process environment.
// Variables already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return errors.Wrapf(godotenv.Load(path), "load %s", path)
}

// Parse parses command-line flags on top of environment defaults.
// Usage and errors are written to out. Asking for help returns flag.ErrHelp.
func Parse(name string, args []string, out io.Writer) (*Flags, error) {
	env, err := envDefaults()
	if err != nil {
		return nil, err
	}

	f := &Flags{}
	fsv := NewFlagSetWithVisit(name, out)
	fsv.StringVar(&f.Level, "level", "l", env.Level, "Level file to play (env "+EnvLevel+")")
	fsv.BoolVar(&f.Generate, "generate", "g", false, "Play a generated maze instead of a level file")
	fsv.Int64Var(&f.Seed, "seed", "", 0, "Seed for -generate, 0 picks one")
	fsv.DurationVar(&f.Tick, "tick", "t", env.Tick, "Game tick interval (env "+EnvTick+")")
	fsv.BoolVar(&f.AxisPace, "axis-pace", "a", false, "Move along rows twice as fast as along columns")
	fsv.IntVar(&f.Footprint, "footprint", "", 0, "Body width in cells for level files, 0 for the default")
	fsv.BoolVar(&f.Mute, "mute", "m", env.Mute, "Mute all sounds (env "+EnvMute+")")
	fsv.StringVar(&f.Night, "night", "n", "", "Night palette: never, always or real")
	fsv.Float64Var(&f.Lat, "lat", "", 0, "Latitude for the real night palette")
	fsv.Float64Var(&f.Lon, "lon", "", 0, "Longitude for the real night palette")
	fsv.StringVar(&f.Timezone, "tz", "", "", "Time zone for the real night palette, e.g. Europe/Amsterdam")
	fsv.StringVar(&f.Log, "log", "", env.Log, "Write a debug log to this file (env "+EnvLog+")")
	fsv.BoolVar(&f.About, "about", "", false, "Show how to play and exit")
	fsv.BoolVar(&f.Reset, "reset", "r", false, "Reset saved settings")

	if err := fsv.Parse(args); err != nil {
		return nil, err
	}
	if len(fsv.Args()) > 0 {
		fsv.Usage()
		return nil, errors.Errorf("unexpected arguments: %s", strings.Join(fsv.Args(), " "))
	}
	f.fsv = fsv

	if err := f.validate(); err != nil {
		fsv.Usage()
		return nil, err
	}
	return f, nil
}

func (f *Flags) validate() error {
	f.Night = strings.ToLower(f.Night)
	switch f.Night {
	case "", ambilite.Never, ambilite.Always, ambilite.Real:
	default:
		return errors.Errorf("invalid night option: %s. Use 'never', 'always', or 'real'", f.Night)
	}
	if f.Tick <= 0 {
		return errors.Errorf("invalid tick: %v", f.Tick)
	}
	if f.Footprint < 0 {
		return errors.Errorf("invalid footprint: %d", f.Footprint)
	}
	if f.Generate && f.IsSet("level") {
		return errors.New("-level and -generate are mutually exclusive")
	}
	if f.Lat < -90 || f.Lat > 90 || f.Lon < -180 || f.Lon > 180 {
		return errors.Errorf("invalid coordinates: %v, %v", f.Lat, f.Lon)
	}
	if f.Timezone != "" {
		if _, err := time.LoadLocation(f.Timezone); err != nil {
			return errors.Wrap(err, "invalid time zone")
		}
	}
	return nil
}

// IsSet reports whether the named flag was given on the command line.
func (f *Flags) IsSet(name string) bool {
	return f.fsv != nil && f.fsv.IsCustom(name)
}

type envValues struct {
	Level string
	Tick  time.Duration
	Log   string
	Mute  bool
}

func envDefaults() (envValues, error) {
	v := envValues{
		Level: os.Getenv(EnvLevel),
		Log:   os.Getenv(EnvLog),
		Tick:  100 * time.Millisecond,
	}
	if s := os.Getenv(EnvTick); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return v, errors.Wrapf(err, "%s", EnvTick)
		}
		v.Tick = d
	}
	if s := os.Getenv(EnvMute); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return v, errors.Wrapf(err, "%s", EnvMute)
		}
		v.Mute = b
	}
	return v, nil
}
