// internal/adapters/meteo/client.go
package meteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"travelbuddy/internal/adapters/observability"
	"travelbuddy/internal/domain"
)

// Client reads current conditions from the Open-Meteo forecast API.
type Client struct {
	base string
	hc   *http.Client
}

func New(base string) *Client {
	return &Client{base: base, hc: &http.Client{Timeout: 10 * time.Second}}
}

func (c *Client) Current(ctx context.Context, lat, lon float64) (domain.CurrentWeather, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("current_weather", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/v1/forecast?"+params.Encode(), nil)
	if err != nil {
		return domain.CurrentWeather{}, err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("open-meteo", "forecast", 0, time.Since(start))
		return domain.CurrentWeather{}, err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("open-meteo", "forecast", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return domain.CurrentWeather{}, fmt.Errorf("open-meteo: bad status %d", resp.StatusCode)
	}

	var out struct {
		CurrentWeather *struct {
			Temperature float64 `json:"temperature"`
			WeatherCode int     `json:"weathercode"`
		} `json:"current_weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return domain.CurrentWeather{}, err
	}
	if out.CurrentWeather == nil {
		return domain.CurrentWeather{}, nil
	}
	return domain.CurrentWeather{
		Temp:  out.CurrentWeather.Temperature,
		Code:  out.CurrentWeather.WeatherCode,
		Known: true,
	}, nil
}
