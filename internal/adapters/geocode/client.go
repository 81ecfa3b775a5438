// internal/adapters/geocode/client.go
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"travelbuddy/internal/adapters/observability"
	"travelbuddy/internal/domain"
)

// Client is a forward geocoder backed by the OSM Nominatim search endpoint.
// Calls are rate limited client-side; Nominatim expects at most one request
// per second from anonymous consumers.
type Client struct {
	base string
	hc   *http.Client
	rl   *rate.Limiter
}

func New(base string, rps int) *Client {
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		base: base,
		hc:   &http.Client{Timeout: 10 * time.Second},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

// Search resolves a free-text query. A successful lookup with no matches
// returns an empty slice and a nil error. Candidates whose coordinates do not
// parse are skipped.
func (c *Client) Search(ctx context.Context, query string) ([]domain.GeoCandidate, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "travelbuddy/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("nominatim", "search", 0, time.Since(start))
		return nil, err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("nominatim", "search", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode: bad status %d", resp.StatusCode)
	}

	// Nominatim delivers lat/lon as numeric strings.
	var raw []struct {
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}

	out := make([]domain.GeoCandidate, 0, len(raw))
	for _, r := range raw {
		lat, latErr := strconv.ParseFloat(r.Lat, 64)
		lon, lonErr := strconv.ParseFloat(r.Lon, 64)
		if latErr != nil || lonErr != nil {
			continue
		}
		out = append(out, domain.GeoCandidate{Lat: lat, Lon: lon, DisplayName: r.DisplayName})
	}
	return out, nil
}
