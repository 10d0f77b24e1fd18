package ambilite

import (
	"math"
	"testing"
	"time"
)

// Los Angeles on New Year's day 2022: civil dawn about 06:31, sunrise 06:58,
// sunset 16:54, civil dusk 17:22.
const (
	laLat = 34.03
	laLon = -118.15
	laTZ  = "America/Los_Angeles"
)

func la(hour, min int) time.Time {
	return time.Date(2022, 1, 1, hour, min, 0, 0, mustTZ(laTZ))
}

func TestIntensity(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		lat, lon float64
		tz       string
		lo, hi   float64
	}{
		{"midnight", la(0, 0), laLat, laLon, laTZ, 0, 0},
		{"civil dawn", la(6, 41), laLat, laLon, laTZ, 0.2, 0.5},
		{"noon", la(12, 0), laLat, laLon, laTZ, 1, 1},
		{"end of dusk", la(17, 21), laLat, laLon, laTZ, 0, 0.1},
		{"evening", la(19, 0), laLat, laLon, laTZ, 0, 0},
		{"polar day", time.Date(2022, 6, 21, 12, 0, 0, 0, time.UTC), 90, 0, "UTC", 1, 1},
		{"polar night", time.Date(2022, 12, 21, 12, 0, 0, 0, time.UTC), 90, 0, "UTC", 0, 0},
		{"unknown zone", la(12, 0), laLat, laLon, "Nowhere/Land", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Intensity(tt.now, tt.lat, tt.lon, tt.tz)
			if got < tt.lo || got > tt.hi {
				t.Errorf("Intensity() = %.3f, want [%.2f, %.2f]", got, tt.lo, tt.hi)
			}
		})
	}
}

func TestIntensityRisesThroughDawn(t *testing.T) {
	prev := -1.0
	for now := la(6, 25); now.Before(la(7, 10)); now = now.Add(5 * time.Minute) {
		got := Intensity(now, laLat, laLon, laTZ)
		if got < prev {
			t.Fatalf("intensity fell at %s: %.3f < %.3f", now.Format("15:04"), got, prev)
		}
		prev = got
	}
	if prev != 1 {
		t.Fatalf("intensity after sunrise = %.3f", prev)
	}
}

func TestSolarAltitude(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		lat, lon float64
		want     float64
		delta    float64
	}{
		{"LA midnight", la(0, 0), laLat, laLon, -79, 0.1},
		{"LA noon", la(12, 0), laLat, laLon, 33, 0.1},
		{"LA civil dusk", la(17, 22), laLat, laLon, -6, 0.1},
		{"pole in June", time.Date(2022, 6, 21, 12, 0, 0, 0, time.UTC), 90, 0, 23, 0.5},
		{"pole in December", time.Date(2022, 12, 21, 12, 0, 0, 0, time.UTC), 90, 0, -23, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := solarAltitude(tt.now.UTC(), tt.lat, tt.lon)
			if math.Abs(got-tt.want) > tt.delta {
				t.Errorf("solarAltitude() = %.2f, want %.1f±%.1f", got, tt.want, tt.delta)
			}
		})
	}
}

func TestBrightness(t *testing.T) {
	tests := []struct {
		option string
		now    time.Time
		want   float64
	}{
		{option: Never, now: la(0, 0), want: 1.0},
		{option: "", now: la(0, 0), want: 1.0},
		{option: Always, now: la(12, 0), want: 0.0},
		{option: Real, now: la(12, 0), want: 1.0},
		{option: Real, now: la(0, 0), want: 0.0},
	}
	for _, tt := range tests {
		got := Brightness(tt.option, tt.now, laLat, laLon, laTZ)
		if got != tt.want {
			t.Errorf("Brightness(%q, %v) = %v, want %v", tt.option, tt.now, got, tt.want)
		}
	}
}

func TestInterpolate(t *testing.T) {
	start := time.Date(2022, 1, 1, 6, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	tests := []struct {
		name       string
		start, end time.Time
		now        time.Time
		want       float64
	}{
		{"empty window", end, start, start, 1},
		{"before", start, end, start.Add(-time.Minute), 0},
		{"at start", start, end, start, 0},
		{"halfway", start, end, start.Add(30 * time.Minute), 0.5},
		{"at end", start, end, end, 1},
		{"after", start, end, end.Add(time.Minute), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := interpolate(tt.start, tt.end, tt.now); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("interpolate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func mustTZ(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}
