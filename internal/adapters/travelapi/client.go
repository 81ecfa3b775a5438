// internal/adapters/travelapi/client.go
package travelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"travelbuddy/internal/adapters/observability"
	"travelbuddy/internal/domain"
)

// ErrBadStatus marks a non-2xx answer from the recommendation service. The
// fetch chain treats it exactly like a transport failure; there is no
// status-code-specific handling and no retry.
var ErrBadStatus = errors.New("travelapi: bad status")

type Client struct {
	endpoint string
	hc       *http.Client
}

func New(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		hc:       &http.Client{Timeout: 60 * time.Second},
	}
}

func (c *Client) Recommendations(ctx context.Context, lat, lon float64) (*domain.Bundle, error) {
	body, err := json.Marshal(map[string]float64{"latitude": lat, "longitude": lon})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("travelapi", "recommendations", 0, time.Since(start))
		return nil, err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("travelapi", "recommendations", resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	var b domain.Bundle
	if err := json.NewDecoder(resp.Body).Decode(&b); err != nil {
		return nil, err
	}
	return &b, nil
}
