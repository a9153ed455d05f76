package poster

import (
	"context"
	"errors"

	"reelmatch/internal/omdb"
	"reelmatch/internal/tmdb"
)

var (
	// ErrNoResults means the provider found nothing for the title.
	ErrNoResults = errors.New("poster: no search results")
	// ErrNoImage means a match exists but carries no poster reference.
	ErrNoImage = errors.New("poster: no image reference")
)

// Provider maps a title to a downloadable poster URL. Implementations return
// ErrNoResults or ErrNoImage for lookups that succeeded without a poster.
type Provider interface {
	Name() string
	PosterURL(ctx context.Context, title string) (string, error)
}

// TMDBProvider uses the first multi search hit.
type TMDBProvider struct {
	client tmdb.Searcher
}

// NewTMDBProvider wraps a TMDB searcher.
func NewTMDBProvider(client tmdb.Searcher) *TMDBProvider {
	return &TMDBProvider{client: client}
}

func (p *TMDBProvider) Name() string { return "tmdb" }

func (p *TMDBProvider) PosterURL(ctx context.Context, title string) (string, error) {
	resp, err := p.client.SearchMulti(ctx, title)
	if err != nil {
		return "", err
	}
	if resp == nil || len(resp.Results) == 0 {
		return "", ErrNoResults
	}
	url := p.client.ImageURL(resp.Results[0].PosterPath)
	if url == "" {
		return "", ErrNoImage
	}
	return url, nil
}

// TitleLookup is the OMDb operation used for posters.
type TitleLookup interface {
	GetByTitle(ctx context.Context, title string) (*omdb.Media, error)
}

// OMDbProvider reads the Poster field of an exact-title lookup.
type OMDbProvider struct {
	client TitleLookup
}

// NewOMDbProvider wraps an OMDb client.
func NewOMDbProvider(client TitleLookup) *OMDbProvider {
	return &OMDbProvider{client: client}
}

func (p *OMDbProvider) Name() string { return "omdb" }

func (p *OMDbProvider) PosterURL(ctx context.Context, title string) (string, error) {
	media, err := p.client.GetByTitle(ctx, title)
	if errors.Is(err, omdb.ErrNotFound) {
		return "", ErrNoResults
	}
	if err != nil {
		return "", err
	}
	url := media.PosterURL()
	if url == "" {
		return "", ErrNoImage
	}
	return url, nil
}
