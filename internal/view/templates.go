// internal/view/templates.go
package view

import (
	"bytes"
	"embed"
	"html/template"

	"github.com/rs/zerolog/log"

	"travelbuddy/internal/domain"
)

//go:embed templates/*.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "templates/*.tmpl"))

func render(name string, data any) template.HTML {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		log.Error().Err(err).Str("template", name).Msg("panel render failed")
		return ""
	}
	return template.HTML(buf.String())
}

// RenderHome renders the home panel: call-to-action without a bundle, city
// dashboard with one.
func RenderHome(b *domain.Bundle) template.HTML {
	return render("home.tmpl", BuildHome(b))
}

// RenderCategory renders one card per POI, or the placeholder card for an
// empty list.
func RenderCategory(page domain.Page, items []domain.Poi) template.HTML {
	return render("category.tmpl", BuildCategory(page, items, page.Icon()))
}

// RenderCategoryBare renders a category panel heading with no list, used
// before any bundle has been fetched.
func RenderCategoryBare(page domain.Page) template.HTML {
	return render("category_bare.tmpl", categoryTitles[page])
}

// RenderGuide renders the trip-planning input panel. The fetch controls are
// part of the fragment, so every render re-issues them.
func RenderGuide() template.HTML {
	return render("guide.tmpl", nil)
}

// RenderLoading renders the transient skeleton panel shown while a fetch
// chain is in flight.
func RenderLoading() template.HTML {
	return render("loading.tmpl", nil)
}

// Shell is the full-page view model: navigation, the active content region,
// and the status line.
type Shell struct {
	Nav           []NavLink
	ExploreActive bool
	Content       template.HTML
	StatusMessage string
	StatusIsError bool
}

func RenderShell(s Shell) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.tmpl", s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
