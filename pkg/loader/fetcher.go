package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"strings"
)

// Fetcher retrieves the raw lines of one word-list file. Implementations
// report absence as ErrSourceAbsent so the loader can tell ignorable
// gaps apart from real failures.
type Fetcher interface {
	Fetch(ctx context.Context, path string) ([]string, error)
}

// FSFetcher reads word-list files from any fs.FS (a directory via
// os.DirFS, an embedded filesystem, a fstest.MapFS in tests).
type FSFetcher struct {
	fsys fs.FS
}

// NewFSFetcher returns a Fetcher over the given filesystem.
func NewFSFetcher(fsys fs.FS) *FSFetcher {
	return &FSFetcher{fsys: fsys}
}

// Fetch reads the file at path and returns its raw lines.
func (f *FSFetcher) Fetch(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(f.fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceAbsent, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrFetchFailed, path, err)
	}
	return splitLines(string(data)), nil
}

// HTTPFetcher retrieves word-list files from plain HTTP file hosting
// under a base URL.
type HTTPFetcher struct {
	baseURL string
	client  *http.Client
}

// HTTPOption configures an HTTPFetcher.
type HTTPOption func(*HTTPFetcher)

// WithHTTPClient sets the client used for fetches. Nil clients are
// ignored; the default is http.DefaultClient.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(f *HTTPFetcher) {
		if c != nil {
			f.client = c
		}
	}
}

// NewHTTPFetcher returns a Fetcher resolving paths against baseURL.
func NewHTTPFetcher(baseURL string, opts ...HTTPOption) *HTTPFetcher {
	f := &HTTPFetcher{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch performs a GET for the file at path. A 404 response maps to
// ErrSourceAbsent; any other non-200 status or transport failure maps to
// ErrFetchFailed.
func (f *HTTPFetcher) Fetch(ctx context.Context, path string) ([]string, error) {
	u := f.baseURL + "/" + strings.TrimPrefix(path, "/")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetchFailed, path, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetchFailed, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrSourceAbsent, path)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: %s: unexpected status %d", ErrFetchFailed, path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetchFailed, path, err)
	}
	return splitLines(string(body)), nil
}

// splitLines breaks file content into raw lines, tolerating CRLF endings.
// Content cleaning (blank and comment removal) belongs to namegen
// ingestion, not here.
func splitLines(content string) []string {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
