package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/namekit/pkg/namegen"
)

const (
	defaultCount    = 10
	defaultMaxCount = 100
)

// API serves one namegen session over HTTP.
type API struct {
	session  *namegen.Session
	log      *slog.Logger
	maxCount int
}

// Option configures the API handler.
type Option func(*API)

// WithLogger sets the logger for request failures. Nil loggers are
// ignored; the default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(a *API) {
		if log != nil {
			a.log = log
		}
	}
}

// WithMaxCount caps the per-request name count. Values below 1 are
// ignored. Default is 100.
func WithMaxCount(n int) Option {
	return func(a *API) {
		if n >= 1 {
			a.maxCount = n
		}
	}
}

// New returns the JSON handler for the given session.
func New(session *namegen.Session, opts ...Option) http.Handler {
	a := &API{
		session:  session,
		log:      slog.New(slog.DiscardHandler),
		maxCount: defaultMaxCount,
	}
	for _, opt := range opts {
		opt(a)
	}

	r := chi.NewRouter()
	r.Get("/healthz", a.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Get("/names", a.handleNames)
		r.Get("/stats", a.handleStats)
	})
	return r
}

type namesResponse struct {
	DatasetID string         `json:"dataset_id"`
	Names     []namegen.Pair `json:"names"`
}

type statsResponse struct {
	DatasetID string `json:"dataset_id"`
	namegen.Stats
}

type errorResponse struct {
	Error string `json:"error"`
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (a *API) handleNames(w http.ResponseWriter, r *http.Request) {
	count := defaultCount
	if raw := r.URL.Query().Get("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			a.writeError(w, r, http.StatusBadRequest, errors.New("count must be a non-negative integer"))
			return
		}
		count = n
	}
	if count > a.maxCount {
		count = a.maxCount
	}

	names, err := a.session.Generate(count, filterParam(r))
	if err != nil {
		a.writeSessionError(w, r, err)
		return
	}

	a.writeJSON(w, r, http.StatusOK, namesResponse{
		DatasetID: a.session.ID().String(),
		Names:     names,
	})
}

func (a *API) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := a.session.Stats(filterParam(r))
	if err != nil {
		a.writeSessionError(w, r, err)
		return
	}

	a.writeJSON(w, r, http.StatusOK, statsResponse{
		DatasetID: a.session.ID().String(),
		Stats:     stats,
	})
}

func filterParam(r *http.Request) namegen.SourceFilter {
	if raw := r.URL.Query().Get("filter"); raw != "" {
		return namegen.SourceFilter(raw)
	}
	return namegen.FilterAll
}

func (a *API) writeSessionError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, namegen.ErrInvalidFilter):
		a.writeError(w, r, http.StatusBadRequest, err)
	case errors.Is(err, namegen.ErrNotLoaded):
		a.writeError(w, r, http.StatusConflict, err)
	case errors.Is(err, namegen.ErrEmptyPool):
		a.writeError(w, r, http.StatusUnprocessableEntity, err)
	default:
		a.writeError(w, r, http.StatusInternalServerError, err)
	}
}

func (a *API) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	a.log.ErrorContext(r.Context(), "request failed",
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.Any("error", err),
	)
	a.writeJSON(w, r, status, errorResponse{Error: err.Error()})
}

func (a *API) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.log.ErrorContext(r.Context(), "failed to encode response", slog.Any("error", err))
	}
}
