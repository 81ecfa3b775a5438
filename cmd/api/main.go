package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"travelbuddy/internal/adapters/fx"
	server "travelbuddy/internal/adapters/http_server"
	"travelbuddy/internal/adapters/meteo"
	"travelbuddy/internal/adapters/observability"
	"travelbuddy/internal/adapters/osm"
	redisad "travelbuddy/internal/adapters/redis"
	"travelbuddy/internal/adapters/wiki"
	"travelbuddy/internal/reco"
	"travelbuddy/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// deps
	places := osm.New(cfg.NominatimBase, cfg.OverpassBase, cfg.GeocodeRPS)
	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	svc := reco.NewService(
		places,
		wiki.New(cfg.WikiBase),
		meteo.New(cfg.MeteoBase),
		fx.New(cfg.FXBase),
		places,
		cache,
		cfg.CacheTTL,
	)

	// http; the web shell may be served from another origin in dev
	srv := server.New(server.CORS)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountAPI(&server.APIHandlers{Reco: svc})

	log.Info().Str("addr", cfg.APIAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.APIAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
