// internal/adapters/wiki/client.go
package wiki

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"travelbuddy/internal/adapters/observability"
	"travelbuddy/internal/domain"
)

// ErrNoArticle means the opensearch step found nothing for the city name.
var ErrNoArticle = errors.New("wiki: no matching article")

// Client fetches a short city blurb and lead image from Wikipedia: an
// opensearch lookup to settle the article title, then the REST summary.
type Client struct {
	base string
	hc   *http.Client
}

func New(base string) *Client {
	return &Client{base: base, hc: &http.Client{Timeout: 10 * time.Second}}
}

func (c *Client) Summarize(ctx context.Context, city string) (domain.CitySummary, error) {
	title, err := c.topTitle(ctx, city)
	if err != nil {
		return domain.CitySummary{}, err
	}
	return c.summary(ctx, title)
}

func (c *Client) topTitle(ctx context.Context, search string) (string, error) {
	params := url.Values{}
	params.Set("action", "opensearch")
	params.Set("search", search)
	params.Set("limit", "1")
	params.Set("namespace", "0")
	params.Set("format", "json")

	// opensearch answers a positional array: [query, [titles], [descs], [urls]]
	var raw []json.RawMessage
	if err := c.getJSON(ctx, "opensearch", c.base+"/w/api.php?"+params.Encode(), &raw); err != nil {
		return "", err
	}
	if len(raw) < 2 {
		return "", ErrNoArticle
	}
	var titles []string
	if err := json.Unmarshal(raw[1], &titles); err != nil {
		return "", err
	}
	if len(titles) == 0 {
		return "", ErrNoArticle
	}
	return titles[0], nil
}

func (c *Client) summary(ctx context.Context, title string) (domain.CitySummary, error) {
	var out struct {
		Extract       string `json:"extract"`
		OriginalImage struct {
			Source string `json:"source"`
		} `json:"originalimage"`
		Thumbnail struct {
			Source string `json:"source"`
		} `json:"thumbnail"`
	}
	u := c.base + "/api/rest_v1/page/summary/" + url.PathEscape(title)
	if err := c.getJSON(ctx, "summary", u, &out); err != nil {
		return domain.CitySummary{}, err
	}

	img := out.OriginalImage.Source
	if img == "" {
		img = out.Thumbnail.Source
	}
	return domain.CitySummary{Extract: out.Extract, Image: img}, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint, u string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "travelbuddy/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("wikipedia", endpoint, 0, time.Since(start))
		return err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("wikipedia", endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("wiki: bad status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
