package poster_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"reelmatch/internal/omdb"
	"reelmatch/internal/poster"
	"reelmatch/internal/tmdb"
)

type stubProvider struct {
	calls atomic.Int32
	fn    func(title string) (string, error)
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) PosterURL(_ context.Context, title string) (string, error) {
	s.calls.Add(1)
	return s.fn(title)
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 6))
	img.Set(1, 1, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func imageServer(t *testing.T) *httptest.Server {
	t.Helper()
	body := pngBytes(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.png":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write(body)
		case "/garbage.png":
			_, _ = w.Write([]byte("not an image"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestResolveSuccess(t *testing.T) {
	server := imageServer(t)
	provider := &stubProvider{fn: func(string) (string, error) { return server.URL + "/ok.png", nil }}
	res := poster.NewResolver(provider).Resolve(context.Background(), "Dark")
	if !res.Ok() {
		t.Fatalf("expected fetched poster, got reason %q (%v)", res.Reason, res.Err)
	}
	if res.Image.Bounds().Dx() != 4 || res.URL != server.URL+"/ok.png" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Status() != "ok" {
		t.Fatalf("unexpected status %q", res.Status())
	}
}

func TestResolveFallbackReasons(t *testing.T) {
	server := imageServer(t)
	cases := []struct {
		name string
		fn   func(string) (string, error)
		want poster.Reason
	}{
		{"search failed", func(string) (string, error) { return "", errors.New("connection refused") }, poster.ReasonSearchFailed},
		{"no results", func(string) (string, error) { return "", poster.ErrNoResults }, poster.ReasonNoResults},
		{"no image", func(string) (string, error) { return "", poster.ErrNoImage }, poster.ReasonNoImage},
		{"download 404", func(string) (string, error) { return server.URL + "/missing.png", nil }, poster.ReasonDownloadFailed},
		{"undecodable", func(string) (string, error) { return server.URL + "/garbage.png", nil }, poster.ReasonDecodeFailed},
		{"bad url", func(string) (string, error) { return "http://127.0.0.1:1/x.png", nil }, poster.ReasonDownloadFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := poster.NewResolver(&stubProvider{fn: tc.fn}).Resolve(context.Background(), "Title")
			if res.Reason != tc.want {
				t.Fatalf("reason = %q, want %q (err=%v)", res.Reason, tc.want, res.Err)
			}
			if res.Image == nil {
				t.Fatal("fallback must carry a placeholder image")
			}
			if !strings.Contains(res.Status(), string(tc.want)) {
				t.Fatalf("status %q should mention reason", res.Status())
			}
		})
	}
}

func TestResolveDisabledProvider(t *testing.T) {
	res := poster.NewResolver(nil).Resolve(context.Background(), "Dark")
	if res.Reason != poster.ReasonProviderDisabled || res.Image == nil {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestResolveCircuitOpensAfterFailures(t *testing.T) {
	provider := &stubProvider{fn: func(string) (string, error) { return "", errors.New("boom") }}
	resolver := poster.NewResolver(provider, poster.WithBreaker(poster.BreakerSettings{Failures: 2, Cooldown: time.Hour}))

	for i := 0; i < 2; i++ {
		if res := resolver.Resolve(context.Background(), "x"); res.Reason != poster.ReasonSearchFailed {
			t.Fatalf("call %d: reason = %q", i, res.Reason)
		}
	}
	res := resolver.Resolve(context.Background(), "x")
	if res.Reason != poster.ReasonCircuitOpen {
		t.Fatalf("expected circuit_open, got %q", res.Reason)
	}
	if provider.calls.Load() != 2 {
		t.Fatalf("provider should not be called while open, got %d calls", provider.calls.Load())
	}
}

func TestResolveNotFoundDoesNotTripBreaker(t *testing.T) {
	provider := &stubProvider{fn: func(string) (string, error) { return "", poster.ErrNoResults }}
	resolver := poster.NewResolver(provider, poster.WithBreaker(poster.BreakerSettings{Failures: 1, Cooldown: time.Hour}))
	for i := 0; i < 3; i++ {
		if res := resolver.Resolve(context.Background(), "x"); res.Reason != poster.ReasonNoResults {
			t.Fatalf("call %d: reason = %q", i, res.Reason)
		}
	}
}

func TestTMDBProviderEndToEnd(t *testing.T) {
	images := imageServer(t)
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("query") {
		case "Dark":
			_, _ = w.Write([]byte(`{"results":[{"name":"Dark","poster_path":"/ok.png"}]}`))
		case "Nothing":
			_, _ = w.Write([]byte(`{"results":[]}`))
		case "Pathless":
			_, _ = w.Write([]byte(`{"results":[{"name":"Pathless","poster_path":null}]}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	t.Cleanup(api.Close)

	client, err := tmdb.New("key", api.URL, "en-US", tmdb.WithImageBaseURL(images.URL))
	if err != nil {
		t.Fatalf("tmdb.New: %v", err)
	}
	resolver := poster.NewResolver(poster.NewTMDBProvider(client))

	cases := map[string]poster.Reason{
		"Dark":     poster.ReasonNone,
		"Nothing":  poster.ReasonNoResults,
		"Pathless": poster.ReasonNoImage,
		"Broken":   poster.ReasonSearchFailed,
	}
	for title, want := range cases {
		if got := resolver.Resolve(context.Background(), title).Reason; got != want {
			t.Errorf("%s: reason = %q, want %q", title, got, want)
		}
	}
}

func TestOMDbProviderEndToEnd(t *testing.T) {
	images := imageServer(t)
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("t") {
		case "Dark":
			_, _ = w.Write([]byte(`{"Title":"Dark","Poster":"` + images.URL + `/ok.png","Response":"True"}`))
		case "Nothing":
			_, _ = w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
		case "Pathless":
			_, _ = w.Write([]byte(`{"Title":"Pathless","Poster":"N/A","Response":"True"}`))
		case "Garbled":
			_, _ = w.Write([]byte(`{"Title":"Garbled","Poster":"` + images.URL + `/garbage.png","Response":"True"}`))
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	t.Cleanup(api.Close)

	client, err := omdb.New("key", api.URL)
	if err != nil {
		t.Fatalf("omdb.New: %v", err)
	}
	resolver := poster.NewResolver(poster.NewOMDbProvider(client))

	cases := map[string]poster.Reason{
		"Dark":     poster.ReasonNone,
		"Nothing":  poster.ReasonNoResults,
		"Pathless": poster.ReasonNoImage,
		"Garbled":  poster.ReasonDecodeFailed,
		"Broken":   poster.ReasonSearchFailed,
	}
	for title, want := range cases {
		if got := resolver.Resolve(context.Background(), title).Reason; got != want {
			t.Errorf("%s: reason = %q, want %q", title, got, want)
		}
	}
}

func TestPlaceholderIsDeterministic(t *testing.T) {
	a := poster.Placeholder("Dark")
	b := poster.Placeholder("Dark")
	c := poster.Placeholder("Ozark")
	if a.Bounds().Dx() != poster.PlaceholderWidth || a.Bounds().Dy() != poster.PlaceholderHeight {
		t.Fatalf("unexpected bounds %v", a.Bounds())
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatal("same title should render identical placeholders")
	}
	if bytes.Equal(a.Pix, c.Pix) {
		t.Fatal("different titles should differ in accent color")
	}
}
