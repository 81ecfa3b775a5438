package domain

import (
	"context"
	"time"
)

// GeoCandidate is one forward-geocoding match. Only the first candidate of a
// search is ever used by the fetch chain.
type GeoCandidate struct {
	Lat, Lon    float64
	DisplayName string
}

// Geocoder resolves a free-text city query into candidate coordinates.
// Zero candidates with a nil error means the lookup worked but nothing
// matched; an error means the lookup itself failed.
type Geocoder interface {
	Search(ctx context.Context, query string) ([]GeoCandidate, error)
}

// RecommendationClient talks to the recommendation service. Any non-2xx
// response or transport failure surfaces as a single generic error.
type RecommendationClient interface {
	Recommendations(ctx context.Context, lat, lon float64) (*Bundle, error)
}

// Cache is a read-through cache of JSON-marshalled values.
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// ---- Aggregation ports (recommendation service side) ----

// ReversePlace names the place a coordinate pair falls in.
type ReversePlace struct {
	City        string
	CountryCode string // ISO 3166-1 alpha-2, lower case as delivered by OSM
}

// CitySummary is an encyclopedia blurb about a city.
type CitySummary struct {
	Extract string
	Image   string
}

// CurrentWeather is a raw current-conditions reading. Known is false when the
// provider returned no usable temperature.
type CurrentWeather struct {
	Temp  float64
	Code  int
	Known bool
}

type ReverseGeocoder interface {
	Reverse(ctx context.Context, lat, lon float64) (ReversePlace, error)
}

type CitySummarizer interface {
	Summarize(ctx context.Context, city string) (CitySummary, error)
}

type WeatherSource interface {
	Current(ctx context.Context, lat, lon float64) (CurrentWeather, error)
}

// RateSource quotes how many units of the given currency one USD buys.
type RateSource interface {
	Rate(ctx context.Context, currency string) (float64, error)
}

// PlaceSource finds named points of interest around a coordinate, filtered by
// an OSM tag key/value pair.
type PlaceSource interface {
	Nearby(ctx context.Context, lat, lon float64, tagKey, tagValue string, limit int) ([]Poi, error)
}
