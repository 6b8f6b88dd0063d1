package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/dmitrymomot/namekit/pkg/namegen"
)

// Selection identifies which race/sex word lists to load.
type Selection struct {
	Race string
	Sex  string
}

func (sel Selection) validate() error {
	if strings.TrimSpace(sel.Race) == "" {
		return fmt.Errorf("%w: race is empty", ErrInvalidSelection)
	}
	if strings.TrimSpace(sel.Sex) == "" {
		return fmt.Errorf("%w: sex is empty", ErrInvalidSelection)
	}
	return nil
}

// Loader fetches every file a manifest describes and assembles the
// namegen input for one selection.
type Loader struct {
	manifest *Manifest
	fetcher  Fetcher
	log      *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger used for skipped-file reporting. Nil
// loggers are ignored; the default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// New returns a Loader over the given manifest and fetcher.
func New(m *Manifest, f Fetcher, opts ...Option) *Loader {
	l := &Loader{
		manifest: m,
		fetcher:  f,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load assembles the input for one race/sex selection. Absent optional
// files are skipped with a debug log; any other fetch failure aborts the
// load. The returned input may still be incomplete — namegen.Session.Load
// decides whether it amounts to a usable dataset.
func (l *Loader) Load(ctx context.Context, sel Selection) (namegen.Input, error) {
	if err := sel.validate(); err != nil {
		return namegen.Input{}, err
	}

	in := namegen.Input{BaseTag: l.manifest.Base}

	for _, src := range l.manifest.Sources {
		firstnames, err := l.fetchOptional(ctx, listPath(src.Dir, sel, "first"))
		if err != nil {
			return namegen.Input{}, err
		}
		in.Firstnames = append(in.Firstnames, tagged(firstnames, src.Tag)...)

		lastnames, err := l.fetchOptional(ctx, listPath(src.Dir, sel, "last"))
		if err != nil {
			return namegen.Input{}, err
		}
		in.Lastnames = append(in.Lastnames, tagged(lastnames, src.Tag)...)
	}

	var err error
	if in.BlacklistFirstnames, err = l.fetchOptionalFile(ctx, l.manifest.Blacklists.Firstnames); err != nil {
		return namegen.Input{}, err
	}
	if in.BlacklistLastnames, err = l.fetchOptionalFile(ctx, l.manifest.Blacklists.Lastnames); err != nil {
		return namegen.Input{}, err
	}
	if in.FullNames, err = l.fetchOptionalFile(ctx, l.manifest.FullNames); err != nil {
		return namegen.Input{}, err
	}

	return in, nil
}

// fetchOptional fetches one file, treating absence as an empty result.
func (l *Loader) fetchOptional(ctx context.Context, p string) ([]string, error) {
	lines, err := l.fetcher.Fetch(ctx, p)
	if err != nil {
		if errors.Is(err, ErrSourceAbsent) {
			l.log.DebugContext(ctx, "skipping absent source file", slog.String("path", p))
			return nil, nil
		}
		return nil, err
	}
	return lines, nil
}

// fetchOptionalFile additionally treats an empty manifest path as "file
// not configured".
func (l *Loader) fetchOptionalFile(ctx context.Context, p string) ([]string, error) {
	if p == "" {
		return nil, nil
	}
	return l.fetchOptional(ctx, p)
}

// listPath builds the per-selection word-list location inside a source
// directory, e.g. data/base/dunmer_male_first.txt.
func listPath(dir string, sel Selection, role string) string {
	race := strings.ToLower(strings.TrimSpace(sel.Race))
	sex := strings.ToLower(strings.TrimSpace(sel.Sex))
	return path.Join(dir, fmt.Sprintf("%s_%s_%s.txt", race, sex, role))
}

func tagged(lines []string, tag string) []namegen.Record {
	out := make([]namegen.Record, 0, len(lines))
	for _, line := range lines {
		out = append(out, namegen.Record{Text: line, Provenance: tag})
	}
	return out
}
