package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"travelbuddy/internal/adapters/geocode"
	server "travelbuddy/internal/adapters/http_server"
	"travelbuddy/internal/adapters/observability"
	"travelbuddy/internal/adapters/travelapi"
	"travelbuddy/internal/app"
	"travelbuddy/internal/shared"
	"travelbuddy/internal/view"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// deps
	geo := geocode.New(cfg.NominatimBase, cfg.GeocodeRPS)
	recoClient := travelapi.New(cfg.RecoURL)
	session := app.NewSession()
	router := view.NewRouter(session)
	status := &app.StatusLine{}
	orch := app.NewOrchestrator(geo, recoClient, session, router, status)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountWeb(&server.WebHandlers{Router: router, Orch: orch, Status: status})

	log.Info().Str("addr", cfg.WebAddr).Msg("web listening")
	httpSrv := &http.Server{Addr: cfg.WebAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
