package domain

import (
	"fmt"
	"net/url"
	"strconv"
)

// UnknownCity is the sentinel city name the aggregator emits when reverse
// geocoding cannot resolve a proper place name. The home panel renders a
// "Detected Location" label instead of "Destination" when it sees it.
const UnknownCity = "Unknown Location"

type LocationInfo struct {
	City    string `json:"city"`
	History string `json:"history"`
	Image   string `json:"image,omitempty"`
}

type Weather struct {
	Condition string   `json:"condition"`
	Temp      float64  `json:"temp"`
	Packing   []string `json:"packing,omitempty"`
}

type Currency struct {
	Currency string `json:"currency"`
	Message  string `json:"message"`
}

// Poi is a single point-of-interest record. Price is pre-formatted display
// text, not a numeric value. Coordinates are optional; when both are present
// they drive the map link, otherwise the name does.
type Poi struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// MapURL builds the Google Maps navigation link for the record: a coordinate
// query when both coordinates are present, a name query otherwise.
func (p Poi) MapURL() string {
	if p.Latitude != nil && p.Longitude != nil {
		return fmt.Sprintf("https://www.google.com/maps?q=%s,%s",
			strconv.FormatFloat(*p.Latitude, 'f', -1, 64),
			strconv.FormatFloat(*p.Longitude, 'f', -1, 64))
	}
	return "https://www.google.com/maps?q=" + url.QueryEscape(p.Name)
}

// Bundle is the full travel-data set returned for one resolved coordinate
// pair. It is replaced as a whole on each successful fetch and never mutated
// afterwards. JSON field names follow the recommendation service wire format.
type Bundle struct {
	LocationInfo LocationInfo `json:"location_info"`
	Weather      Weather      `json:"weather"`
	Currency     Currency     `json:"currency"`
	Hotels       []Poi        `json:"hotels"`
	Food         []Poi        `json:"food"`
	Transport    []Poi        `json:"transport"`
	Safety       []Poi        `json:"safety"`
	Rentacar     []Poi        `json:"rentacar"`
}

// Category returns the POI list backing a category page, or nil for
// non-category pages.
func (b *Bundle) Category(p Page) []Poi {
	if b == nil {
		return nil
	}
	switch p {
	case PageHotels:
		return b.Hotels
	case PageFood:
		return b.Food
	case PageTransport:
		return b.Transport
	case PageSafety:
		return b.Safety
	case PageRentacar:
		return b.Rentacar
	}
	return nil
}
