package wiki_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"travelbuddy/internal/adapters/wiki"
)

func newWikiServer(t *testing.T, opensearch, summary string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/w/api.php", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("action") != "opensearch" {
			t.Errorf("action = %s", r.URL.Query().Get("action"))
		}
		fmt.Fprint(w, opensearch)
	})
	mux.HandleFunc("/api/rest_v1/page/summary/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, summary)
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts
}

func TestSummarize(t *testing.T) {
	ts := newWikiServer(t,
		`["Paris",["Paris"],[""],["https://en.wikipedia.org/wiki/Paris"]]`,
		`{"extract":"Paris is the capital of France.","originalimage":{"source":"https://img/full.jpg"},"thumbnail":{"source":"https://img/thumb.jpg"}}`)

	sum, err := wiki.New(ts.URL).Summarize(context.Background(), "Paris")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if sum.Extract != "Paris is the capital of France." {
		t.Errorf("Extract = %q", sum.Extract)
	}
	if sum.Image != "https://img/full.jpg" {
		t.Errorf("Image = %q, want the original image over the thumbnail", sum.Image)
	}
}

func TestSummarize_ThumbnailFallback(t *testing.T) {
	ts := newWikiServer(t,
		`["X",["X"],[""],["u"]]`,
		`{"extract":"e","thumbnail":{"source":"https://img/thumb.jpg"}}`)

	sum, err := wiki.New(ts.URL).Summarize(context.Background(), "X")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if sum.Image != "https://img/thumb.jpg" {
		t.Errorf("Image = %q", sum.Image)
	}
}

func TestSummarize_NoArticle(t *testing.T) {
	ts := newWikiServer(t, `["zzqq",[],[],[]]`, `{}`)

	_, err := wiki.New(ts.URL).Summarize(context.Background(), "zzqq")
	if !errors.Is(err, wiki.ErrNoArticle) {
		t.Fatalf("err = %v, want ErrNoArticle", err)
	}
}
