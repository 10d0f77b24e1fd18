// Package geoip finds the player's location from their public IP address.
// The real night palette uses it when no coordinates were given.
package geoip

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const DefaultURL = "http://ip-api.com/json/"

// Location is where the player's IP address resolves to.
type Location struct {
	City     string  `json:"city"`
	Country  string  `json:"country"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
	Timezone string  `json:"timezone"`
}

type Client struct {
	URL     string
	Timeout time.Duration
}

// Default client with default settings.
var Default = &Client{
	URL:     DefaultURL,
	Timeout: 3 * time.Second,
}

// Locate asks the lookup service where we are.
func Locate(ctx context.Context) (Location, error) {
	return Default.Locate(ctx)
}

func (c *Client) Locate(ctx context.Context) (Location, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return Location{}, errors.Wrap(err, "geoip request")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return Location{}, errors.Wrap(err, "geoip lookup")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Location{}, errors.Errorf("geoip: %s", resp.Status)
	}

	var loc Location
	if err := json.NewDecoder(resp.Body).Decode(&loc); err != nil {
		return Location{}, errors.Wrap(err, "geoip decode")
	}
	if loc.Timezone == "" {
		return Location{}, errors.New("geoip: timezone not provided")
	}
	if _, err := time.LoadLocation(loc.Timezone); err != nil {
		return Location{}, errors.Wrap(err, "geoip timezone")
	}
	return loc, nil
}
