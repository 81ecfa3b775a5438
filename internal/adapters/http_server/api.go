// internal/adapters/http_server/api.go
package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"travelbuddy/internal/reco"
)

// APIHandlers serves the recommendation service surface.
type APIHandlers struct {
	Reco *reco.Service
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func (s *Server) MountAPI(h *APIHandlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/api/recommendations", h.recommendations)
}

func (h *APIHandlers) recommendations(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "body must be JSON with latitude and longitude")
		return
	}
	if req.Latitude == nil || req.Longitude == nil {
		writeProblem(w, http.StatusBadRequest, "Missing Coordinates", "latitude and longitude are required")
		return
	}

	b, err := h.Reco.Build(r.Context(), *req.Latitude, *req.Longitude)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Aggregation Failed", "could not assemble recommendations")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(b); err != nil {
		log.Error().Err(err).Msg("failed to write recommendations body")
	}
}
