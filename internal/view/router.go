// internal/view/router.go
package view

import (
	"html/template"
	"sync"

	"travelbuddy/internal/domain"
)

// BundleSource is the read-only view of the session the router consumes.
type BundleSource interface {
	Bundle() *domain.Bundle
}

// NavLink is one entry of the fixed navigation surface. Category pages sit
// inside the Explore dropdown group.
type NavLink struct {
	Page      domain.Page
	Label     string
	InExplore bool
	Active    bool
}

var navItems = []NavLink{
	{Page: domain.PageHome, Label: "Home"},
	{Page: domain.PageGuide, Label: "AI Guide"},
	{Page: domain.PageHotels, Label: "Hotels", InExplore: true},
	{Page: domain.PageFood, Label: "Food", InExplore: true},
	{Page: domain.PageTransport, Label: "Transport", InExplore: true},
	{Page: domain.PageSafety, Label: "Safety", InExplore: true},
	{Page: domain.PageRentacar, Label: "Rent a Car", InExplore: true},
}

// Router owns the current-page state and the root content region. Navigation
// replaces the region with the panel renderer's output for the target page;
// unknown identifiers are silently ignored. Navigating to the already-active
// page re-renders without error.
type Router struct {
	bundles BundleSource

	mu      sync.RWMutex
	page    domain.Page
	content template.HTML
}

func NewRouter(b BundleSource) *Router {
	r := &Router{bundles: b}
	r.NavigateTo(domain.PageHome)
	return r
}

func (r *Router) NavigateTo(p domain.Page) {
	if !p.Valid() {
		return
	}

	var frag template.HTML
	switch {
	case p == domain.PageHome:
		frag = RenderHome(r.bundles.Bundle())
	case p == domain.PageGuide:
		frag = RenderGuide()
	default:
		// category page: populate from the bundle when one exists
		if b := r.bundles.Bundle(); b != nil {
			frag = RenderCategory(p, b.Category(p))
		} else {
			frag = RenderCategoryBare(p)
		}
	}

	r.mu.Lock()
	r.page, r.content = p, frag
	r.mu.Unlock()
}

// ShowLoading swaps in the transient loading panel. The active page is left
// untouched; the loading view is never recorded as a page.
func (r *Router) ShowLoading() {
	frag := RenderLoading()
	r.mu.Lock()
	r.content = frag
	r.mu.Unlock()
}

func (r *Router) CurrentPage() domain.Page {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.page
}

func (r *Router) Content() template.HTML {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.content
}

// Nav returns the navigation links with active flags for the current page,
// plus whether the Explore group header is highlighted.
func (r *Router) Nav() ([]NavLink, bool) {
	cur := r.CurrentPage()
	links := make([]NavLink, len(navItems))
	exploreActive := false
	for i, it := range navItems {
		it.Active = it.Page == cur
		if it.Active && it.InExplore {
			exploreActive = true
		}
		links[i] = it
	}
	return links, exploreActive
}
