// internal/adapters/http_server/handlers.go
package httpserver

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"travelbuddy/internal/app"
	"travelbuddy/internal/domain"
	"travelbuddy/internal/view"
)

// WebHandlers serves the single-page travel guide: navigation, the search
// and locate triggers, and the rendered shell.
type WebHandlers struct {
	Router *view.Router
	Orch   *app.Orchestrator
	Status *app.StatusLine
}

func (s *Server) MountWeb(h *WebHandlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/", h.page)
	s.mux.Get("/pages/{page}", h.page)
	s.mux.Post("/guide/search", h.search)
	s.mux.Post("/guide/locate", h.locate)
}

func (h *WebHandlers) page(w http.ResponseWriter, r *http.Request) {
	if name := chi.URLParam(r, "page"); name != "" {
		if p, ok := domain.ParsePage(name); ok {
			h.Router.NavigateTo(p)
		}
		// unknown identifiers fall through: the current view stays up
	}
	h.renderShell(w)
}

func (h *WebHandlers) search(w http.ResponseWriter, r *http.Request) {
	h.Orch.SearchCity(r.Context(), r.FormValue("city"))
	h.renderShell(w)
}

func (h *WebHandlers) locate(w http.ResponseWriter, r *http.Request) {
	lat, latErr := strconv.ParseFloat(r.FormValue("lat"), 64)
	lon, lonErr := strconv.ParseFloat(r.FormValue("lon"), 64)
	// the shell posts denied=1 when the platform refuses; unparseable
	// coordinates get the same treatment
	if r.FormValue("denied") != "" || latErr != nil || lonErr != nil {
		h.Orch.LocationDenied()
	} else {
		h.Orch.UseLocation(r.Context(), lat, lon)
	}
	h.renderShell(w)
}

func (h *WebHandlers) renderShell(w http.ResponseWriter) {
	nav, exploreActive := h.Router.Nav()
	msg, isErr := h.Status.Current()
	body, err := view.RenderShell(view.Shell{
		Nav:           nav,
		ExploreActive: exploreActive,
		Content:       h.Router.Content(),
		StatusMessage: msg,
		StatusIsError: isErr,
	})
	if err != nil {
		log.Error().Err(err).Msg("shell render failed")
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write shell body")
	}
}
