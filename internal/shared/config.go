package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv      string
	WebAddr     string
	APIAddr     string
	MetricsAddr string

	// Recommendation service endpoint the web client posts coordinates to.
	RecoURL string

	// Upstream bases used by the recommendation service.
	NominatimBase string
	OverpassBase  string
	MeteoBase     string
	WikiBase      string
	FXBase        string

	RedisAddr string
	RedisDB   int
	RedisPass string
	CacheTTL  time.Duration

	// Outbound requests per second against the OSM services. Nominatim's
	// usage policy caps anonymous clients at one request per second.
	GeocodeRPS int
}

func Load() Config {
	// Best effort; real env vars win over .env entries.
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	return Config{
		AppEnv:        env("APP_ENV", "prod"),
		WebAddr:       env("WEB_ADDR", ":8081"),
		APIAddr:       env("API_ADDR", ":8000"),
		MetricsAddr:   os.Getenv("METRICS_ADDR"),
		RecoURL:       env("RECO_URL", "http://127.0.0.1:8000/api/recommendations"),
		NominatimBase: env("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
		OverpassBase:  env("OVERPASS_BASE_URL", "http://overpass-api.de/api/interpreter"),
		MeteoBase:     env("METEO_BASE_URL", "https://api.open-meteo.com"),
		WikiBase:      env("WIKI_BASE_URL", "https://en.wikipedia.org"),
		FXBase:        env("FX_BASE_URL", "https://api.exchangerate-api.com"),
		RedisAddr:     env("REDIS_ADDR", "localhost:6379"),
		RedisDB:       atoi("REDIS_DB", 0),
		RedisPass:     env("REDIS_PASSWORD", ""),
		CacheTTL:      time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		GeocodeRPS:    atoi("GEOCODE_RPS", 1),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
