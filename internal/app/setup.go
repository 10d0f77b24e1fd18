package app

import (
	"context"
	"log"
	"time"

	"github.com/vinser/mazechase/internal/ambilite"
	"github.com/vinser/mazechase/internal/engine"
	"github.com/vinser/mazechase/internal/flags"
	"github.com/vinser/mazechase/internal/geoip"
	"github.com/vinser/mazechase/internal/level"
	"github.com/vinser/mazechase/internal/sound"
	"github.com/vinser/mazechase/internal/state"
)

// applyFlags copies preferences given on the command line into st and reports
// whether st changed.
func applyFlags(st *state.State, fl *flags.Flags) bool {
	changed := false
	if fl.Reset {
		*st = *state.New()
		changed = true
	}
	if fl.IsSet("mute") || fl.Mute {
		changed = changed || st.Mute != fl.Mute
		st.Mute = fl.Mute
	}
	if fl.IsSet("axis-pace") {
		changed = changed || st.AxisPace != fl.AxisPace
		st.AxisPace = fl.AxisPace
	}
	if fl.Night != "" {
		changed = changed || st.NightOption != fl.Night
		st.NightOption = fl.Night
	}
	if fl.IsSet("lat") || fl.IsSet("lon") || fl.Timezone != "" {
		changed = changed || !st.Located
		st.Located = true
	}
	if fl.IsSet("lat") {
		changed = changed || st.Lat != fl.Lat
		st.Lat = fl.Lat
	}
	if fl.IsSet("lon") {
		changed = changed || st.Lon != fl.Lon
		st.Lon = fl.Lon
	}
	if fl.Timezone != "" {
		changed = changed || st.Timezone != fl.Timezone
		st.Timezone = fl.Timezone
	}
	return changed
}

// locate fills in the location for the real night palette from the player's
// IP address unless it is already known. It reports whether st changed.
func locate(ctx context.Context, st *state.State, lookup func(context.Context) (geoip.Location, error)) bool {
	if st.NightOption != ambilite.Real || st.Located {
		return false
	}
	loc, err := lookup(ctx)
	if err != nil {
		log.Printf("app: location lookup failed, using %s: %v", st.Timezone, err)
		return false
	}
	log.Printf("app: located in %s, %s", loc.City, loc.Country)
	st.Lat, st.Lon, st.Timezone = loc.Lat, loc.Lon, loc.Timezone
	st.Located = true
	return true
}

// loadLevel picks the level to play: a file, a generated maze or the built-in one.
func loadLevel(fl *flags.Flags) (*level.Level, error) {
	switch {
	case fl.Generate:
		seed := fl.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		log.Printf("app: generating level, seed %d", seed)
		return level.Generate(seed)
	case fl.Level != "":
		footprint := fl.Footprint
		if footprint == 0 {
			footprint = level.DefaultFootprint
		}
		log.Printf("app: loading level %s", fl.Level)
		return level.Load(fl.Level, footprint)
	}
	return level.Default()
}

// paceFor returns the tick pace. With axis pace rows take half the tick.
func paceFor(tick time.Duration, axis bool) engine.Pace {
	if !axis {
		return engine.FixedPace(tick)
	}
	if tick == engine.DefaultTick {
		return engine.AxisPace()
	}
	return engine.Pace{Vertical: tick, Horizontal: tick / 2}
}

var eventSounds = map[engine.Event]string{
	engine.EventDot:      sound.CHOMP,
	engine.EventPowerUp:  sound.POWERUP,
	engine.EventTeleport: sound.TELEPORT,
	engine.EventBlocked:  sound.BUMP,
	engine.EventCleared:  sound.CLEARED,
	engine.EventCaught:   sound.CAUGHT,
}

// soundListener plays the effect for each game event. A nil manager is silent.
func soundListener(mgr *sound.Manager) engine.Listener {
	return func(e engine.Event) {
		name, ok := eventSounds[e]
		if !ok {
			return
		}
		if err := mgr.Play(name); err != nil {
			log.Printf("sound: %v", err)
		}
	}
}
