package loader_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namekit/pkg/loader"
)

func TestFSFetcher(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"data/base/dunmer_male_first.txt": &fstest.MapFile{
			Data: []byte("Aryon\nDilborn\n"),
		},
		"crlf.txt": &fstest.MapFile{
			Data: []byte("Aryon\r\nDilborn\r\n"),
		},
		"noeol.txt": &fstest.MapFile{
			Data: []byte("Aryon\nDilborn"),
		},
	}
	f := loader.NewFSFetcher(fsys)

	t.Run("reads lines", func(t *testing.T) {
		t.Parallel()

		lines, err := f.Fetch(context.Background(), "data/base/dunmer_male_first.txt")
		require.NoError(t, err)
		assert.Equal(t, []string{"Aryon", "Dilborn"}, lines)
	})

	t.Run("tolerates crlf", func(t *testing.T) {
		t.Parallel()

		lines, err := f.Fetch(context.Background(), "crlf.txt")
		require.NoError(t, err)
		assert.Equal(t, []string{"Aryon", "Dilborn"}, lines)
	})

	t.Run("no trailing newline", func(t *testing.T) {
		t.Parallel()

		lines, err := f.Fetch(context.Background(), "noeol.txt")
		require.NoError(t, err)
		assert.Equal(t, []string{"Aryon", "Dilborn"}, lines)
	})

	t.Run("absent file", func(t *testing.T) {
		t.Parallel()

		_, err := f.Fetch(context.Background(), "data/base/argonian_male_first.txt")
		require.ErrorIs(t, err, loader.ErrSourceAbsent)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := f.Fetch(ctx, "crlf.txt")
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestHTTPFetcher(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/data/base/dunmer_male_first.txt":
			_, _ = w.Write([]byte("Aryon\nDilborn\n"))
		case "/broken.txt":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)

	f := loader.NewHTTPFetcher(srv.URL+"/", loader.WithHTTPClient(&http.Client{Timeout: 5 * time.Second}))

	t.Run("reads lines", func(t *testing.T) {
		t.Parallel()

		lines, err := f.Fetch(context.Background(), "data/base/dunmer_male_first.txt")
		require.NoError(t, err)
		assert.Equal(t, []string{"Aryon", "Dilborn"}, lines)
	})

	t.Run("404 is absent", func(t *testing.T) {
		t.Parallel()

		_, err := f.Fetch(context.Background(), "data/base/argonian_male_first.txt")
		require.ErrorIs(t, err, loader.ErrSourceAbsent)
	})

	t.Run("server error is a fetch failure", func(t *testing.T) {
		t.Parallel()

		_, err := f.Fetch(context.Background(), "broken.txt")
		require.ErrorIs(t, err, loader.ErrFetchFailed)
		assert.NotErrorIs(t, err, loader.ErrSourceAbsent)
	})

	t.Run("unreachable host is a fetch failure", func(t *testing.T) {
		t.Parallel()

		down := loader.NewHTTPFetcher("http://127.0.0.1:0")
		_, err := down.Fetch(context.Background(), "anything.txt")
		require.ErrorIs(t, err, loader.ErrFetchFailed)
	})
}
