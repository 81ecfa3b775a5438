package app

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"travelbuddy/internal/adapters/observability"
	"travelbuddy/internal/domain"
)

// Messages surfaced on the status line. The text is part of the UI contract.
const (
	msgEmptyQuery     = "Please enter a city name."
	msgSearching      = "Searching for city..."
	msgCityNotFound   = "City not found. Try again."
	msgGeocodeFailed  = "Error finding city. Check internet."
	msgFetchFailed    = "Error: Is the backend server running?"
	msgLocationDenied = "Permission denied or location unavailable."
)

// PageRouter is the slice of the view router the orchestrator drives.
type PageRouter interface {
	NavigateTo(p domain.Page)
	ShowLoading()
}

// StatusReporter is the slice of the status line the orchestrator drives.
type StatusReporter interface {
	Set(msg string, isError bool)
}

// Orchestrator runs one fetch chain at a time from user input (typed city or
// shared coordinates) through geocoding and the recommendation lookup to a
// routed result. Chains end in Succeeded or Failed; there is no retry and no
// cancellation of in-flight work. A rapid second search races the first and
// the last chain to resolve wins the bundle and the view.
type Orchestrator struct {
	geo     domain.Geocoder
	reco    domain.RecommendationClient
	session *Session
	router  PageRouter
	status  StatusReporter

	mu    sync.Mutex
	state domain.ChainState
}

func NewOrchestrator(geo domain.Geocoder, reco domain.RecommendationClient, session *Session,
	router PageRouter, status StatusReporter) *Orchestrator {
	return &Orchestrator{geo: geo, reco: reco, session: session, router: router, status: status}
}

// State reports the most recent chain's lifecycle state.
func (o *Orchestrator) State() domain.ChainState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) setState(s domain.ChainState) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}

// SearchCity starts a chain from a typed city name. An input that is empty
// after trimming is rejected on the status line without leaving Idle.
func (o *Orchestrator) SearchCity(ctx context.Context, query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		o.status.Set(msgEmptyQuery, true)
		return
	}

	o.setState(domain.ChainAwaitingGeocode)
	o.status.Set(msgSearching, false)

	cands, err := o.geo.Search(ctx, query)
	if err != nil {
		log.Warn().Err(err).Str("query", query).Msg("geocode lookup failed")
		o.status.Set(msgGeocodeFailed, true)
		o.setState(domain.ChainFailed)
		observability.ObserveChain("search", "failed")
		return
	}
	if len(cands) == 0 {
		o.status.Set(msgCityNotFound, true)
		o.setState(domain.ChainFailed)
		observability.ObserveChain("search", "failed")
		return
	}

	o.fetch(ctx, "search", cands[0].Lat, cands[0].Lon)
}

// UseLocation starts a chain from device coordinates the platform already
// resolved.
func (o *Orchestrator) UseLocation(ctx context.Context, lat, lon float64) {
	o.fetch(ctx, "locate", lat, lon)
}

// LocationDenied ends a GPS-triggered chain that never got coordinates. The
// trigger control is re-enabled by the panel re-render that follows.
func (o *Orchestrator) LocationDenied() {
	o.status.Set(msgLocationDenied, true)
	o.setState(domain.ChainFailed)
	observability.ObserveChain("locate", "failed")
}

func (o *Orchestrator) fetch(ctx context.Context, trigger string, lat, lon float64) {
	o.setState(domain.ChainAwaitingRecommendations)
	o.router.ShowLoading()

	b, err := o.reco.Recommendations(ctx, lat, lon)
	if err != nil {
		// diagnostic sink; the user only sees the generic message
		log.Error().Err(err).
			Float64("lat", lat).Float64("lon", lon).
			Msg("recommendation fetch failed")
		o.router.NavigateTo(domain.PageGuide)
		o.status.Set(msgFetchFailed, true)
		o.setState(domain.ChainFailed)
		observability.ObserveChain(trigger, "failed")
		return
	}

	o.session.replaceBundle(b)
	o.router.NavigateTo(domain.PageHome)
	o.setState(domain.ChainSucceeded)
	observability.ObserveChain(trigger, "succeeded")
}
