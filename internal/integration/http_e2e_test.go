//go:build integration || !unit

package integration

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"travelbuddy/internal/adapters/fx"
	"travelbuddy/internal/adapters/geocode"
	httpserver "travelbuddy/internal/adapters/http_server"
	"travelbuddy/internal/adapters/meteo"
	"travelbuddy/internal/adapters/osm"
	redisad "travelbuddy/internal/adapters/redis"
	"travelbuddy/internal/adapters/travelapi"
	"travelbuddy/internal/adapters/wiki"
	"travelbuddy/internal/app"
	"travelbuddy/internal/reco"
	"travelbuddy/internal/view"
)

// fakeUpstreams serves every third-party API the stack talks to from one
// test server, keyed by path.
func fakeUpstreams(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	// Nominatim forward search for the typed city.
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"lat":"19.076","lon":"72.8777","display_name":"Mumbai, India"}]`)
	})
	// Nominatim reverse lookup for the resolved coordinates.
	mux.HandleFunc("/reverse", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"address":{"city":"Mumbai","country_code":"in"}}`)
	})
	// Overpass answers the same POI set for every category query.
	mux.HandleFunc("/api/interpreter", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"elements":[
			{"lat":19.07,"lon":72.88,"tags":{"name":"Harbour View","amenity":"restaurant"}},
			{"lat":19.08,"lon":72.87,"tags":{"amenity":"restaurant"}}
		]}`)
	})
	mux.HandleFunc("/v1/forecast", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"current_weather":{"temperature":30.5,"weathercode":1}}`)
	})
	mux.HandleFunc("/w/api.php", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `["Mumbai",["Mumbai"],[""],["https://en.wikipedia.org/wiki/Mumbai"]]`)
	})
	mux.HandleFunc("/api/rest_v1/page/summary/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"extract":"Mumbai is the capital of Maharashtra.","thumbnail":{"source":"https://img.example/mumbai.jpg"}}`)
	})
	mux.HandleFunc("/v4/latest/USD", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"rates":{"INR":83.2,"EUR":0.92}}`)
	})

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

// startStack wires the full pipeline against fake upstreams: recommendation
// API on one test server, the web shell on another posting to it.
func startStack(t *testing.T) (web *httptest.Server, orch *app.Orchestrator) {
	t.Helper()
	up := fakeUpstreams(t)

	mr := miniredis.RunT(t)
	cache := redisad.NewFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	places := osm.New(up.URL, up.URL+"/api/interpreter", 100)
	svc := reco.NewService(places, wiki.New(up.URL), meteo.New(up.URL), fx.New(up.URL),
		places, cache, time.Minute)

	apiSrv := httpserver.New(httpserver.CORS)
	apiSrv.MountAPI(&httpserver.APIHandlers{Reco: svc})
	api := httptest.NewServer(apiSrv.Mux())
	t.Cleanup(api.Close)

	session := app.NewSession()
	router := view.NewRouter(session)
	status := &app.StatusLine{}
	orch = app.NewOrchestrator(
		geocode.New(up.URL, 100),
		travelapi.New(api.URL+"/api/recommendations"),
		session, router, status,
	)

	webSrv := httpserver.New()
	webSrv.MountWeb(&httpserver.WebHandlers{Router: router, Orch: orch, Status: status})
	web = httptest.NewServer(webSrv.Mux())
	t.Cleanup(web.Close)
	return web, orch
}

func TestSearchToDashboard(t *testing.T) {
	web, _ := startStack(t)

	resp, err := http.PostForm(web.URL+"/guide/search", url.Values{"city": {"Mumbai"}})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	body := string(b)

	for _, want := range []string{
		"Mumbai",
		"Mumbai is the capital of Maharashtra.",
		"Hot",
		"INR",
		"1 Options available", // the unnamed Overpass node is dropped
	} {
		if !strings.Contains(body, want) {
			t.Errorf("dashboard missing %q:\n%s", want, body)
		}
	}
}

func TestSearchThenBrowseCategories(t *testing.T) {
	web, _ := startStack(t)

	if _, err := http.PostForm(web.URL+"/guide/search", url.Values{"city": {"Mumbai"}}); err != nil {
		t.Fatalf("search: %v", err)
	}

	resp, err := http.Get(web.URL + "/pages/food")
	if err != nil {
		t.Fatalf("food page: %v", err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	body := string(b)

	if !strings.Contains(body, "Famous Food") {
		t.Fatalf("missing category heading:\n%s", body)
	}
	if !strings.Contains(body, "Harbour View") {
		t.Fatalf("missing POI card:\n%s", body)
	}
	if !strings.Contains(body, "https://www.google.com/maps?q=19.07,72.88") {
		t.Fatalf("missing coordinate map link:\n%s", body)
	}
}

func TestLocateToDashboard(t *testing.T) {
	web, _ := startStack(t)

	resp, err := http.PostForm(web.URL+"/guide/locate",
		url.Values{"lat": {"19.076"}, "lon": {"72.8777"}})
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)

	if !strings.Contains(string(b), "Mumbai") {
		t.Fatalf("expected dashboard from shared coordinates:\n%s", b)
	}
}
