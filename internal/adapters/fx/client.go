// internal/adapters/fx/client.go
package fx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"travelbuddy/internal/adapters/observability"
)

// Client quotes USD exchange rates from exchangerate-api.
type Client struct {
	base string
	hc   *http.Client
}

func New(base string) *Client {
	return &Client{base: base, hc: &http.Client{Timeout: 10 * time.Second}}
}

// Rate returns how many units of the given currency one USD buys.
func (c *Client) Rate(ctx context.Context, currency string) (float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/v4/latest/USD", nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("exchangerate", "latest", 0, time.Since(start))
		return 0, err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("exchangerate", "latest", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("fx: bad status %d", resp.StatusCode)
	}

	var out struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, err
	}
	r, ok := out.Rates[currency]
	if !ok {
		return 0, fmt.Errorf("fx: no rate for %s", currency)
	}
	return r, nil
}
