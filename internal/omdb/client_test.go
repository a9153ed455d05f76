package omdb_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"reelmatch/internal/omdb"
)

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := omdb.New("", ""); err == nil {
		t.Fatal("expected error when api key missing")
	}
}

func TestGetByTitleSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("apikey") != "key" || q.Get("t") != "Ozark" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`{"Title":"Ozark","Type":"series","Poster":"https://m.media-amazon.com/ozark.jpg","Response":"True"}`))
	}))
	t.Cleanup(server.Close)

	client, err := omdb.New("key", server.URL)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	media, err := client.GetByTitle(context.Background(), "Ozark")
	if err != nil {
		t.Fatalf("GetByTitle returned error: %v", err)
	}
	if media.PosterURL() != "https://m.media-amazon.com/ozark.jpg" {
		t.Fatalf("unexpected poster %q", media.PosterURL())
	}
}

func TestGetByTitleNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
	}))
	t.Cleanup(server.Close)

	client, _ := omdb.New("key", server.URL)
	_, err := client.GetByTitle(context.Background(), "Zzzz")
	if !errors.Is(err, omdb.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetByTitleAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Response":"False","Error":"Invalid API key!"}`))
	}))
	t.Cleanup(server.Close)

	client, _ := omdb.New("bad", server.URL)
	_, err := client.GetByTitle(context.Background(), "Ozark")
	if err == nil || errors.Is(err, omdb.ErrNotFound) {
		t.Fatalf("expected non-notfound error, got %v", err)
	}
}

func TestGetByTitleHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(server.Close)

	client, _ := omdb.New("key", server.URL)
	if _, err := client.GetByTitle(context.Background(), "Ozark"); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestPosterURLTreatsNAAsMissing(t *testing.T) {
	for _, p := range []string{"", "N/A", " n/a "} {
		if got := (omdb.Media{Poster: p}).PosterURL(); got != "" {
			t.Errorf("PosterURL(%q) = %q, want empty", p, got)
		}
	}
}
