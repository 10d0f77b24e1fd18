// Package ambilite tells how light it is outside, so the maze can be drawn
// darker at night.
package ambilite

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
)

// Solar altitudes in degrees.
const (
	horizon       = 0.0
	civilTwilight = -6.0
)

// Night options
const (
	Never  = "never"
	Always = "always"
	Real   = "real"
)

// Brightness returns the palette brightness in [0.0, 1.0] for a night option.
// Never is always full daylight, Always is always night and Real follows the
// sun at the given place.
func Brightness(option string, now time.Time, lat, lon float64, tz string) float64 {
	switch option {
	case Always:
		return 0.0
	case Real:
		return Intensity(now, lat, lon, tz)
	}
	return 1.0
}

// Intensity returns ambient light intensity [0.0, 1.0] for given local time, lat/lon, and timezone.
// Polar day and night are decided by civil twilight (-6°).
func Intensity(now time.Time, lat, lon float64, tz string) float64 {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return 0.0
	}
	local := now.In(loc)
	day := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)

	dawn, hasDawn := crossing(day, lat, lon, civilTwilight, false)
	sunrise, _ := crossing(day, lat, lon, horizon, false)
	sunset, _ := crossing(day, lat, lon, horizon, true)
	dusk, hasDusk := crossing(day, lat, lon, civilTwilight, true)

	if !hasDawn || !hasDusk || dawn.After(dusk) {
		// No regular twilight today: the noon sun decides.
		noon := day.Add(12 * time.Hour)
		if solarAltitude(noon.UTC(), lat, lon) > civilTwilight {
			return 1.0
		}
		return 0.0
	}

	switch {
	case local.Before(dawn):
		return 0.0
	case local.Before(sunrise):
		return interpolate(dawn, sunrise, local)
	case local.Before(sunset):
		return 1.0
	case local.Before(dusk):
		return 1.0 - interpolate(sunset, dusk, local)
	}
	return 0.0
}

// crossing finds when the sun passes alt on the given day, rising in the
// morning or setting in the evening. It reports false when the sun does not
// pass alt that day.
func crossing(day time.Time, lat, lon, alt float64, evening bool) (time.Time, bool) {
	loc := day.Location()
	lo := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
	hi := lo.Add(24 * time.Hour)
	noon := time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, loc)

	atMidnight := solarAltitude(lo.UTC(), lat, lon)
	atNoon := solarAltitude(noon.UTC(), lat, lon)
	if (atMidnight-alt)*(atNoon-alt) > 0 {
		return time.Time{}, false
	}

	// bisect to a minute
	for hi.Sub(lo) > time.Minute {
		mid := lo.Add(hi.Sub(lo) / 2)
		if (solarAltitude(mid.UTC(), lat, lon) > alt) == evening {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo.Round(time.Minute), true
}

// solarAltitude returns solar altitude in degrees for UTC time t, lat and lon.
func solarAltitude(t time.Time, lat, lon float64) float64 {
	jd := julian.TimeToJD(t)
	θ := sidereal.Apparent(jd).Rad() + lon*math.Pi/180
	ra, dec := solar.ApparentEquatorial(jd)
	H := math.Mod(θ-ra.Rad()+2*math.Pi, 2*math.Pi)
	φ := lat * math.Pi / 180
	δ := dec.Rad()
	sinAlt := math.Sin(φ)*math.Sin(δ) + math.Cos(φ)*math.Cos(δ)*math.Cos(H)
	return math.Asin(sinAlt) * 180 / math.Pi
}

// interpolate is 0 at start and 1 at end, clamped.
func interpolate(start, end, current time.Time) float64 {
	if !end.After(start) {
		return 1.0
	}
	f := current.Sub(start).Seconds() / end.Sub(start).Seconds()
	return max(0.0, min(1.0, f))
}
