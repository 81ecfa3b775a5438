// internal/reco/service.go
package reco

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	redisad "travelbuddy/internal/adapters/redis"
	"travelbuddy/internal/domain"
)

const (
	defaultHistory = "Explore the local culture and hidden gems."
	defaultImage   = "https://images.unsplash.com/photo-1476514525535-07fb3b4ae5f1"
	poiLimit       = 5
)

// currencyByCountry maps the reverse-geocoded country code onto a quote
// currency; anything unmapped falls back to USD.
var currencyByCountry = map[string]string{
	"US": "USD", "PK": "PKR", "IN": "INR", "GB": "GBP",
	"AE": "AED", "JP": "JPY", "EU": "EUR",
}

// Service assembles a travel-data bundle for one coordinate pair. Every
// upstream is best-effort: a failing collaborator degrades its own section to
// a fallback value and never fails the whole bundle.
type Service struct {
	geo      domain.ReverseGeocoder
	wiki     domain.CitySummarizer
	weather  domain.WeatherSource
	rates    domain.RateSource
	places   domain.PlaceSource
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewService(geo domain.ReverseGeocoder, wiki domain.CitySummarizer, weather domain.WeatherSource,
	rates domain.RateSource, places domain.PlaceSource, cache domain.Cache, ttl time.Duration) *Service {
	return &Service{geo: geo, wiki: wiki, weather: weather, rates: rates, places: places, cache: cache, cacheTTL: ttl}
}

// Build returns the bundle for the coordinates, read-through cached by
// rounded coordinate key.
func (s *Service) Build(ctx context.Context, lat, lon float64) (*domain.Bundle, error) {
	key := redisad.BundleKey(lat, lon)
	if s.cache != nil {
		var cached domain.Bundle
		if ok, _ := s.cache.Get(ctx, key, &cached); ok {
			return &cached, nil
		}
	}

	// Reverse geocode first; both the city blurb and the currency section
	// hang off its result.
	place, err := s.geo.Reverse(ctx, lat, lon)
	if err != nil {
		log.Warn().Err(err).Msg("reverse geocode failed, using fallbacks")
		place = domain.ReversePlace{}
	}

	b := &domain.Bundle{
		LocationInfo: domain.LocationInfo{
			City:    place.City,
			History: defaultHistory,
			Image:   defaultImage,
		},
		Weather:  domain.Weather{Condition: "Unknown", Packing: []string{"Essentials"}},
		Currency: domain.Currency{Currency: "USD", Message: "Unavailable"},
		Rentacar: []domain.Poi{
			{Name: "City Rentals", Description: "Compact cars downtown", Price: "$40/day"},
			{Name: "Luxury Wheels", Description: "Premium fleet", Price: "$120/day"},
		},
		Safety: []domain.Poi{
			{Name: "Emergency", Description: "Dial 112", Price: "Free"},
		},
	}
	if b.LocationInfo.City == "" {
		b.LocationInfo.City = domain.UnknownCity
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if place.City == "" {
			return nil
		}
		sum, err := s.wiki.Summarize(gctx, place.City)
		if err != nil {
			log.Debug().Err(err).Str("city", place.City).Msg("city summary unavailable")
			return nil
		}
		if sum.Extract != "" {
			b.LocationInfo.History = sum.Extract
		}
		if sum.Image != "" {
			b.LocationInfo.Image = sum.Image
		}
		return nil
	})

	g.Go(func() error {
		cw, err := s.weather.Current(gctx, lat, lon)
		if err != nil {
			log.Debug().Err(err).Msg("weather unavailable")
			return nil
		}
		b.Weather = weatherFrom(cw)
		return nil
	})

	g.Go(func() error {
		code := currencyByCountry[strings.ToUpper(place.CountryCode)]
		if code == "" {
			code = "USD"
		}
		rate, err := s.rates.Rate(gctx, code)
		if err != nil {
			log.Debug().Err(err).Str("currency", code).Msg("exchange rate unavailable")
			b.Currency = domain.Currency{Currency: code, Message: "Unavailable"}
			return nil
		}
		b.Currency = domain.Currency{
			Currency: code,
			Message:  fmt.Sprintf("1 USD ≈ %s %s", strconv.FormatFloat(rate, 'f', -1, 64), code),
		}
		return nil
	})

	fill := func(dst *[]domain.Poi, tagKey, tagValue string) func() error {
		return func() error {
			pois, err := s.places.Nearby(gctx, lat, lon, tagKey, tagValue, poiLimit)
			if err != nil {
				log.Debug().Err(err).Str("tag", tagKey+"="+tagValue).Msg("poi lookup unavailable")
				*dst = []domain.Poi{}
				return nil
			}
			if pois == nil {
				// a nil list means "not fetched" to the client; always emit one
				pois = []domain.Poi{}
			}
			*dst = pois
			return nil
		}
	}
	g.Go(fill(&b.Food, "amenity", "restaurant"))
	g.Go(fill(&b.Hotels, "tourism", "hotel"))
	g.Go(fill(&b.Transport, "amenity", "bus_station"))

	// all section builders swallow their errors
	_ = g.Wait()

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, b, s.cacheTTL); err != nil {
			log.Debug().Err(err).Msg("bundle cache set failed")
		}
	}
	return b, nil
}

// weatherFrom derives a display condition and packing hints from a raw
// reading: below 15°C is Cold, above 25°C is Hot, and WMO codes from 50 up
// (drizzle and worse) force Rainy.
func weatherFrom(cw domain.CurrentWeather) domain.Weather {
	if !cw.Known {
		return domain.Weather{Condition: "Unknown", Packing: []string{"Essentials"}}
	}
	w := domain.Weather{
		Condition: "Pleasant",
		Temp:      cw.Temp,
		Packing:   []string{"Water Bottle", "Power Bank"},
	}
	switch {
	case cw.Temp < 15:
		w.Condition = "Cold"
		w.Packing = append(w.Packing, "Warm Jacket")
	case cw.Temp > 25:
		w.Condition = "Hot"
		w.Packing = append(w.Packing, "Sunscreen")
	}
	if cw.Code >= 50 {
		w.Condition = "Rainy"
		w.Packing = append(w.Packing, "Umbrella")
	}
	return w
}
