package view_test

import (
	"strings"
	"testing"

	"travelbuddy/internal/domain"
	"travelbuddy/internal/view"
)

func ptr(f float64) *float64 { return &f }

func sampleBundle() *domain.Bundle {
	return &domain.Bundle{
		LocationInfo: domain.LocationInfo{City: "Paris", History: "Capital of France."},
		Weather:      domain.Weather{Condition: "Pleasant", Temp: 18, Packing: []string{"Water Bottle"}},
		Currency:     domain.Currency{Currency: "EUR", Message: "1 USD ≈ 0.9 EUR"},
		Hotels:       []domain.Poi{{Name: "A"}, {Name: "B"}, {Name: "C"}},
		Food:         []domain.Poi{{Name: "Cafe"}},
		Transport:    []domain.Poi{},
	}
}

func TestBuildHome_NoBundle(t *testing.T) {
	m := view.BuildHome(nil)
	if m.HasData {
		t.Fatalf("expected call-to-action model")
	}
	out := string(view.RenderHome(nil))
	if !strings.Contains(out, "Where to next?") {
		t.Fatalf("expected call-to-action fragment, got: %s", out)
	}
	if strings.Contains(out, "Options available") {
		t.Fatalf("call-to-action must not reference bundle fields")
	}
}

func TestBuildHome_Dashboard(t *testing.T) {
	m := view.BuildHome(sampleBundle())
	if !m.HasData || m.City != "Paris" || m.LocationLabel != "Destination" {
		t.Fatalf("unexpected model: %+v", m)
	}
	if m.Summaries[0].Detail != "3 Options available" {
		t.Fatalf("hotel summary = %q", m.Summaries[0].Detail)
	}
	if m.Summaries[1].Detail != "1 Top spots" {
		t.Fatalf("food summary = %q", m.Summaries[1].Detail)
	}
	if m.Summaries[2].Detail != "Public transit info" {
		t.Fatalf("transport summary = %q", m.Summaries[2].Detail)
	}

	out := string(view.RenderHome(sampleBundle()))
	for _, want := range []string{"Paris", "3 Options available", "Pleasant", "EUR"} {
		if !strings.Contains(out, want) {
			t.Fatalf("dashboard missing %q:\n%s", want, out)
		}
	}
}

func TestBuildHome_SentinelCityLabel(t *testing.T) {
	b := sampleBundle()
	b.LocationInfo.City = domain.UnknownCity
	m := view.BuildHome(b)
	if m.LocationLabel != "Detected Location" {
		t.Fatalf("label = %q, want Detected Location", m.LocationLabel)
	}
}

func TestBuildHome_FallbackImage(t *testing.T) {
	b := sampleBundle()
	b.LocationInfo.Image = ""
	if m := view.BuildHome(b); m.Image == "" {
		t.Fatalf("expected a fallback hero image")
	}
	b.LocationInfo.Image = "https://img/custom.jpg"
	if m := view.BuildHome(b); m.Image != "https://img/custom.jpg" {
		t.Fatalf("expected bundle image to win")
	}
}

func TestRenderCategory_EmptyList(t *testing.T) {
	out := string(view.RenderCategory(domain.PageHotels, []domain.Poi{}))
	if got := strings.Count(out, `<div class="card"`); got != 1 {
		t.Fatalf("expected exactly one placeholder card, got %d:\n%s", got, out)
	}
	if !strings.Contains(out, "No data found.") {
		t.Fatalf("missing placeholder text:\n%s", out)
	}
	if strings.Contains(out, "google.com/maps") {
		t.Fatalf("placeholder card must not link to a map")
	}
}

func TestRenderCategory_CoordinateLink(t *testing.T) {
	items := []domain.Poi{{Name: "Cafe X", Description: "d", Price: "$$", Latitude: ptr(48.8), Longitude: ptr(2.3)}}
	out := string(view.RenderCategory(domain.PageFood, items))
	if !strings.Contains(out, "https://www.google.com/maps?q=48.8,2.3") {
		t.Fatalf("expected coordinate map link:\n%s", out)
	}
	for _, want := range []string{"Cafe X", "$$", "fa-burger"} {
		if !strings.Contains(out, want) {
			t.Fatalf("card missing %q:\n%s", want, out)
		}
	}
}

func TestRenderCategory_NameLink(t *testing.T) {
	items := []domain.Poi{{Name: "Cafe Y", Description: "d", Price: "$"}}
	out := string(view.RenderCategory(domain.PageFood, items))
	if !strings.Contains(out, "https://www.google.com/maps?q=Cafe+Y") {
		t.Fatalf("expected name-based map link:\n%s", out)
	}
}

func TestBuildCategory_DoesNotMutate(t *testing.T) {
	items := []domain.Poi{{Name: "Cafe", Price: "$"}}
	_ = view.BuildCategory(domain.PageFood, items, "fa-burger")
	if items[0].Name != "Cafe" || items[0].Price != "$" {
		t.Fatalf("builder mutated its input: %+v", items[0])
	}
}

func TestMapURL(t *testing.T) {
	withCoords := domain.Poi{Name: "X", Latitude: ptr(41.0082), Longitude: ptr(28.9784)}
	if got := withCoords.MapURL(); got != "https://www.google.com/maps?q=41.0082,28.9784" {
		t.Fatalf("coordinate URL = %q", got)
	}
	// one coordinate alone is not enough
	half := domain.Poi{Name: "Half", Latitude: ptr(1)}
	if got := half.MapURL(); got != "https://www.google.com/maps?q=Half" {
		t.Fatalf("half-coordinate URL = %q", got)
	}
}
