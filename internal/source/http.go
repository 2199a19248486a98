package source

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultUserAgent = "cardbinder-worker/1.0"
	DefaultAccept    = "application/json;q=0.9,*/*;q=0.8"
)

// HTTPSource fetches the index document and card chunks over HTTP,
// grounded in the teacher's internal/client request plumbing (custom
// User-Agent/Accept headers, a configurable base http.Client).
type HTTPSource struct {
	IndexURL  string
	ChunkURLs []string
	UserAgent string
	Accept    string
	Client    *http.Client
	// MaxConcurrentFetches bounds how many chunk requests run at once.
	// 0 means errgroup.SetLimit is not applied (unbounded).
	MaxConcurrentFetches int
}

// NewHTTPSource builds an HTTPSource with the teacher's default headers.
func NewHTTPSource(indexURL string, chunkURLs []string) *HTTPSource {
	return &HTTPSource{
		IndexURL:  indexURL,
		ChunkURLs: chunkURLs,
		UserAgent: DefaultUserAgent,
		Accept:    DefaultAccept,
		Client:    &http.Client{},
	}
}

func (s *HTTPSource) httpClient() *http.Client {
	if s.Client != nil {
		return s.Client
	}
	return http.DefaultClient
}

func (s *HTTPSource) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", s.UserAgent)
	req.Header.Set("Accept", s.Accept)

	resp, err := s.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body of %s: %w", url, err)
	}
	return body, nil
}

// FetchIndex retrieves the corpus index document.
func (s *HTTPSource) FetchIndex(ctx context.Context) ([]byte, error) {
	return s.fetch(ctx, s.IndexURL)
}

// FetchChunks retrieves every configured chunk URL concurrently, matching
// spec.md §5's "parallel fetch of card chunks" suspension point. Results
// preserve the order of ChunkURLs regardless of completion order.
func (s *HTTPSource) FetchChunks(ctx context.Context) ([][]byte, error) {
	chunks := make([][]byte, len(s.ChunkURLs))

	g, gctx := errgroup.WithContext(ctx)
	if s.MaxConcurrentFetches > 0 {
		g.SetLimit(s.MaxConcurrentFetches)
	}

	for i, url := range s.ChunkURLs {
		i, url := i, url
		g.Go(func() error {
			body, err := s.fetch(gctx, url)
			if err != nil {
				return err
			}
			chunks[i] = body
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetching corpus chunks: %w", err)
	}
	return chunks, nil
}
