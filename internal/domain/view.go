package domain

// Page identifies one of the fixed content panels. Exactly one page is active
// at a time; the view router owns the current value.
type Page string

const (
	PageHome      Page = "home"
	PageHotels    Page = "hotels"
	PageFood      Page = "food"
	PageTransport Page = "transport"
	PageSafety    Page = "safety"
	PageRentacar  Page = "rentacar"
	PageGuide     Page = "ai-guide"
)

// Pages lists the closed page set in navigation order.
var Pages = []Page{PageHome, PageHotels, PageFood, PageTransport, PageSafety, PageRentacar, PageGuide}

// ParsePage maps a raw identifier onto the fixed page set.
func ParsePage(s string) (Page, bool) {
	p := Page(s)
	return p, p.Valid()
}

func (p Page) Valid() bool {
	switch p {
	case PageHome, PageHotels, PageFood, PageTransport, PageSafety, PageRentacar, PageGuide:
		return true
	}
	return false
}

// IsCategory reports whether the page is backed by one of the bundle's
// point-of-interest lists.
func (p Page) IsCategory() bool {
	switch p {
	case PageHotels, PageFood, PageTransport, PageSafety, PageRentacar:
		return true
	}
	return false
}

// Icon returns the icon hint for a category page's cards.
func (p Page) Icon() string {
	switch p {
	case PageHotels:
		return "fa-bed"
	case PageFood:
		return "fa-burger"
	case PageTransport:
		return "fa-train"
	case PageSafety:
		return "fa-hospital"
	case PageRentacar:
		return "fa-car"
	}
	return ""
}

// ChainState tracks one user-initiated fetch chain from trigger to terminal
// outcome. Succeeded and Failed are terminal; a new user action starts a
// fresh chain.
type ChainState int

const (
	ChainIdle ChainState = iota
	ChainAwaitingGeocode
	ChainAwaitingRecommendations
	ChainSucceeded
	ChainFailed
)

func (s ChainState) String() string {
	switch s {
	case ChainIdle:
		return "idle"
	case ChainAwaitingGeocode:
		return "awaiting_geocode"
	case ChainAwaitingRecommendations:
		return "awaiting_recommendations"
	case ChainSucceeded:
		return "succeeded"
	case ChainFailed:
		return "failed"
	}
	return "unknown"
}
