// internal/view/panels.go
package view

import (
	"fmt"

	"travelbuddy/internal/domain"
)

const fallbackImage = "https://images.unsplash.com/photo-1476514525535-07fb3b4ae5f1?auto=format&fit=crop&w=1350&q=80"

// Summary is one category teaser on the dashboard.
type Summary struct {
	Page   domain.Page
	Icon   string
	Title  string
	Detail string
}

// HomeModel is the home panel view model. HasData false renders the neutral
// call-to-action; true renders the city dashboard.
type HomeModel struct {
	HasData bool

	LocationLabel    string // "Detected Location" for the sentinel city, else "Destination"
	City             string
	History          string
	Image            string
	WeatherCondition string
	WeatherTemp      float64
	CurrencyCode     string
	CurrencyMessage  string
	Packing          []string
	Summaries        []Summary
}

// BuildHome derives the home panel model from the session bundle, or the
// call-to-action model when none exists yet. Pure; never touches the bundle.
func BuildHome(b *domain.Bundle) HomeModel {
	if b == nil {
		return HomeModel{}
	}

	label := "Destination"
	if b.LocationInfo.City == domain.UnknownCity {
		label = "Detected Location"
	}
	img := b.LocationInfo.Image
	if img == "" {
		img = fallbackImage
	}

	return HomeModel{
		HasData:          true,
		LocationLabel:    label,
		City:             b.LocationInfo.City,
		History:          b.LocationInfo.History,
		Image:            img,
		WeatherCondition: b.Weather.Condition,
		WeatherTemp:      b.Weather.Temp,
		CurrencyCode:     b.Currency.Currency,
		CurrencyMessage:  b.Currency.Message,
		Packing:          b.Weather.Packing,
		Summaries: []Summary{
			{Page: domain.PageHotels, Icon: "fa-hotel", Title: "Hotels", Detail: fmt.Sprintf("%d Options available", len(b.Hotels))},
			{Page: domain.PageFood, Icon: "fa-utensils", Title: "Food", Detail: fmt.Sprintf("%d Top spots", len(b.Food))},
			{Page: domain.PageTransport, Icon: "fa-train", Title: "Transport", Detail: "Public transit info"},
		},
	}
}

// Card is one point-of-interest card.
type Card struct {
	Name        string
	Description string
	Price       string
	Icon        string
	MapURL      string
}

// CategoryModel is a category panel view model. Empty means the list was
// fetched and holds no items; the template shows a single placeholder card.
type CategoryModel struct {
	Title string
	Cards []Card
	Empty bool
}

// categoryTitles are the fixed panel headings.
var categoryTitles = map[domain.Page]string{
	domain.PageHotels:    "Nearby Hotels",
	domain.PageFood:      "Famous Food",
	domain.PageTransport: "Public Transport",
	domain.PageSafety:    "Emergency & Health",
	domain.PageRentacar:  "Rent a Car",
}

// BuildCategory turns a fetched POI list into cards. Callers must not pass a
// nil list; bundle presence is checked first (a nil bundle renders the bare
// panel heading instead, see the router).
func BuildCategory(page domain.Page, items []domain.Poi, icon string) CategoryModel {
	m := CategoryModel{Title: categoryTitles[page]}
	if len(items) == 0 {
		m.Empty = true
		return m
	}
	m.Cards = make([]Card, 0, len(items))
	for _, it := range items {
		m.Cards = append(m.Cards, Card{
			Name:        it.Name,
			Description: it.Description,
			Price:       it.Price,
			Icon:        icon,
			MapURL:      it.MapURL(),
		})
	}
	return m
}
