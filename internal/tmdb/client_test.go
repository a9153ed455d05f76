package tmdb_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"reelmatch/internal/tmdb"
)

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := tmdb.New("", "https://example.com", "en-US"); err == nil {
		t.Fatal("expected error when api key missing")
	}
	if _, err := tmdb.New("key", " ", "en-US"); err == nil {
		t.Fatal("expected error when base url missing")
	}
}

func TestSearchMultiSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/multi" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("api_key") != "key" || q.Get("query") != "Stranger Things" || q.Get("language") != "en-US" {
			t.Errorf("unexpected query parameters %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"page":1,"results":[{"id":66732,"name":"Stranger Things","media_type":"tv","poster_path":"/x.jpg"}]}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL+"/", "en-US")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	resp, err := client.SearchMulti(context.Background(), "  Stranger Things ")
	if err != nil {
		t.Fatalf("SearchMulti returned error: %v", err)
	}
	if len(resp.Results) != 1 {
		t.Fatalf("unexpected response: %#v", resp)
	}
	got := resp.Results[0]
	if got.DisplayTitle() != "Stranger Things" || got.PosterPath != "/x.jpg" || got.MediaType != "tv" {
		t.Fatalf("unexpected result: %#v", got)
	}
}

func TestSearchMultiHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status_code":7}`))
	}))
	t.Cleanup(server.Close)

	client, err := tmdb.New("key", server.URL, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.SearchMulti(context.Background(), "fail"); err == nil {
		t.Fatal("expected error when TMDB returns non-200")
	}
}

func TestSearchMultiMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[`))
	}))
	t.Cleanup(server.Close)

	client, _ := tmdb.New("key", server.URL, "")
	if _, err := client.SearchMulti(context.Background(), "broken"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestSearchMultiEmptyQuery(t *testing.T) {
	client, err := tmdb.New("key", "https://example.com", "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if _, err := client.SearchMulti(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestSearchMultiHonorsTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	t.Cleanup(server.Close)

	client, _ := tmdb.New("key", server.URL, "", tmdb.WithHTTPClient(&http.Client{Timeout: 20 * time.Millisecond}))
	if _, err := client.SearchMulti(context.Background(), "slow"); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestSearchMultiRateLimitRespectsContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	t.Cleanup(server.Close)

	client, _ := tmdb.New("key", server.URL, "", tmdb.WithRateLimit(0.01))
	if _, err := client.SearchMulti(context.Background(), "first"); err != nil {
		t.Fatalf("first call should consume the burst: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if _, err := client.SearchMulti(ctx, "second"); err == nil {
		t.Fatal("expected rate limiter to give up when context deadline is too short")
	}
}

func TestImageURL(t *testing.T) {
	client, _ := tmdb.New("key", "https://example.com", "")
	cases := map[string]string{
		"":                       "",
		"/abc.jpg":               tmdb.DefaultImageBaseURL + "/abc.jpg",
		"abc.jpg":                tmdb.DefaultImageBaseURL + "/abc.jpg",
		"https://cdn/poster.png": "https://cdn/poster.png",
	}
	for in, want := range cases {
		if got := client.ImageURL(in); got != want {
			t.Errorf("ImageURL(%q) = %q, want %q", in, got, want)
		}
	}

	custom, _ := tmdb.New("key", "https://example.com", "", tmdb.WithImageBaseURL("http://img/w185/"))
	if got := custom.ImageURL("/p.jpg"); got != "http://img/w185/p.jpg" {
		t.Fatalf("custom ImageURL = %q", got)
	}
}
