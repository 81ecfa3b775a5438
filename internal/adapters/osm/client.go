// internal/adapters/osm/client.go
package osm

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

// Client talks to the two OpenStreetMap services the aggregator relies on:
// Nominatim for reverse geocoding and Overpass for nearby POIs. One shared
// limiter keeps the combined request rate inside the OSM usage policies.
type Client struct {
	nominatimBase string
	overpassBase  string
	hc            *http.Client
	rl            *rate.Limiter
}

func New(nominatimBase, overpassBase string, rps int) *Client {
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		nominatimBase: nominatimBase,
		overpassBase:  overpassBase,
		hc:            &http.Client{Timeout: 10 * time.Second},
		rl:            rate.NewLimiter(rate.Limit(rps), rps),
	}
}

type nominatimAddress struct {
	City        string `json:"city"`
	Town        string `json:"town"`
	Village     string `json:"village"`
	CountryCode string `json:"country_code"`
}

// Reverse names the place at the given coordinates. City resolution prefers
// city, then town, then village, mirroring the address levels Nominatim emits
// for smaller places.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (domain.ReversePlace, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("format", "json")

	var out struct {
		Address nominatimAddress `json:"address"`
	}
	if err := c.getJSON(ctx, "nominatim", "reverse", c.nominatimBase+"/reverse?"+params.Encode(), &out); err != nil {
		return domain.ReversePlace{}, err
	}

	city := out.Address.City
	if city == "" {
		city = out.Address.Town
	}
	if city == "" {
		city = out.Address.Village
	}
	return domain.ReversePlace{City: city, CountryCode: out.Address.CountryCode}, nil
}

// Nearby runs an Overpass query for named nodes with the given tag around the
// coordinates (3 km radius, `limit` results). Unnamed nodes never make it
// into the result.
func (c *Client) Nearby(ctx context.Context, lat, lon float64, tagKey, tagValue string, limit int) ([]domain.Poi, error) {
	q := fmt.Sprintf(`[out:json];node[%q=%q](around:3000,%f,%f);out %d;`, tagKey, tagValue, lat, lon, limit)
	params := url.Values{}
	params.Set("data", q)

	var out struct {
		Elements []struct {
			Lat  float64           `json:"lat"`
			Lon  float64           `json:"lon"`
			Tags map[string]string `json:"tags"`
		} `json:"elements"`
	}
	if err := c.getJSON(ctx, "overpass", "interpreter", c.overpassBase+"?"+params.Encode(), &out); err != nil {
		return nil, err
	}

	pois := make([]domain.Poi, 0, len(out.Elements))
	for _, el := range out.Elements {
		name := el.Tags["name"]
		if name == "" {
			continue
		}
		desc := titleCase(el.Tags["amenity"])
		if desc == "" {
			desc = "Local Place"
		}
		lat, lon := el.Lat, el.Lon
		pois = append(pois, domain.Poi{
			Name:        name,
			Description: desc,
			Price:       "View Details",
			Latitude:    &lat,
			Longitude:   &lon,
		})
	}
	return pois, nil
}

func (c *Client) getJSON(ctx context.Context, service, endpoint, u string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "travelbuddy/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal(service, endpoint, 0, time.Since(start))
		return err
	}
	defer resp.Body.Close()
	observability.ObserveExternal(service, endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: bad status %d", service, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// titleCase uppercases the first letter and swaps underscores for spaces, so
// OSM tag values like "bus_station" read as "Bus station".
func titleCase(s string) string {
	if s == "" {
		return ""
	}
	b := []byte(s)
	for i := range b {
		if b[i] == '_' {
			b[i] = ' '
		}
	}
	if b[0] >= 'a' && b[0] <= 'z' {
		b[0] -= 'a' - 'A'
	}
	return string(b)
}
