package httpapi_test

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namekit/pkg/httpapi"
	"github.com/dmitrymomot/namekit/pkg/namegen"
)

func loadedSession(t *testing.T) *namegen.Session {
	t.Helper()

	s := namegen.NewSession(namegen.WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, s.Load(namegen.Input{
		BaseTag: "base",
		Firstnames: []namegen.Record{
			{Text: "Aryon", Provenance: "base"},
			{Text: "Dilborn", Provenance: "base"},
			{Text: "Fedris", Provenance: "tribunal"},
		},
		Lastnames: []namegen.Record{
			{Text: "Savel", Provenance: "base"},
			{Text: "Hler", Provenance: "base"},
		},
		FullNames: []string{"Aryon Savel"},
	}))
	return s
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	rec := get(t, httpapi.New(loadedSession(t)), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestNames(t *testing.T) {
	t.Parallel()

	t.Run("returns novel pairs", func(t *testing.T) {
		t.Parallel()

		s := loadedSession(t)
		rec := get(t, httpapi.New(s), "/api/names?count=4&filter=all")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

		var resp struct {
			DatasetID string         `json:"dataset_id"`
			Names     []namegen.Pair `json:"names"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		assert.Equal(t, s.ID().String(), resp.DatasetID)
		require.NotEmpty(t, resp.Names)
		for _, p := range resp.Names {
			assert.NotEqual(t, namegen.Pair{Firstname: "Aryon", Lastname: "Savel"}, p)
		}
	})

	t.Run("count defaults and caps", func(t *testing.T) {
		t.Parallel()

		// With a cap of 2, asking for 50 yields at most 2 names.
		rec := get(t, httpapi.New(loadedSession(t), httpapi.WithMaxCount(2)), "/api/names?count=50")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Names []namegen.Pair `json:"names"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.LessOrEqual(t, len(resp.Names), 2)
	})

	t.Run("zero count is empty not error", func(t *testing.T) {
		t.Parallel()

		rec := get(t, httpapi.New(loadedSession(t)), "/api/names?count=0")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Names []namegen.Pair `json:"names"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Empty(t, resp.Names)
	})

	tests := []struct {
		name   string
		target string
		status int
	}{
		{
			name:   "malformed count",
			target: "/api/names?count=ten",
			status: http.StatusBadRequest,
		},
		{
			name:   "negative count",
			target: "/api/names?count=-1",
			status: http.StatusBadRequest,
		},
		{
			name:   "unknown filter",
			target: "/api/names?filter=vvardenfell",
			status: http.StatusBadRequest,
		},
		{
			name:   "filter empties a pool",
			target: "/api/names?filter=expanded", // no expansion lastnames loaded
			status: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := get(t, httpapi.New(loadedSession(t)), tt.target)
			assert.Equal(t, tt.status, rec.Code)

			var resp struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}

	t.Run("not loaded", func(t *testing.T) {
		t.Parallel()

		rec := get(t, httpapi.New(namegen.NewSession()), "/api/names")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestStats(t *testing.T) {
	t.Parallel()

	t.Run("snapshot", func(t *testing.T) {
		t.Parallel()

		s := loadedSession(t)
		rec := get(t, httpapi.New(s), "/api/stats?filter=base")
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			DatasetID        string `json:"dataset_id"`
			UniqueFirstnames int    `json:"unique_firstnames"`
			UniqueLastnames  int    `json:"unique_lastnames"`
			ExistingCount    int    `json:"existing_count"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		assert.Equal(t, s.ID().String(), resp.DatasetID)
		assert.Equal(t, 2, resp.UniqueFirstnames)
		assert.Equal(t, 2, resp.UniqueLastnames)
		assert.Equal(t, 1, resp.ExistingCount)
	})

	t.Run("unknown filter", func(t *testing.T) {
		t.Parallel()

		rec := get(t, httpapi.New(loadedSession(t)), "/api/stats?filter=nope")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not loaded", func(t *testing.T) {
		t.Parallel()

		rec := get(t, httpapi.New(namegen.NewSession()), "/api/stats")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
