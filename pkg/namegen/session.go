package namegen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/namekit/pkg/levenshtein"
)

// maxAttemptsPerName bounds the rejection-sampling budget: Generate makes
// at most count×maxAttemptsPerName draws before returning whatever it has
// accumulated. 200 balances success probability in dense pools against
// worst-case latency in nearly saturated ones.
const maxAttemptsPerName = 200

// Session owns one loaded dataset and generates novel name pairs from it.
// Construct with NewSession, then Load a dataset before generating.
// Sessions are independent of each other; a Session is not safe for
// concurrent use.
type Session struct {
	rnd       *rand.Rand
	threshold int

	id uuid.UUID
	ds *dataset
}

// NewSession returns an empty session. Generation and inspection fail
// with ErrNotLoaded until the first successful Load.
func NewSession(opts ...Option) *Session {
	s := &Session{
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
		threshold: levenshtein.DefaultThreshold,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the identity of the currently loaded dataset, for log and
// API correlation. It is the zero UUID before the first successful Load
// and changes on every reload.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Load replaces the session's dataset wholesale with one built from in.
// Cleaning, deduplication, blacklisting, and full-name parsing happen
// here; missing optional inputs (empty blacklists, no full names) are
// fine. Load fails with ErrDataMissing when either candidate pool is
// empty after filtering, and leaves any previously loaded dataset
// untouched in that case.
func (s *Session) Load(in Input) error {
	ds := buildDataset(in)

	if len(ds.firstnames.entries) == 0 {
		return fmt.Errorf("%w: no %s entries after filtering", ErrDataMissing, RoleFirstname)
	}
	if len(ds.lastnames.entries) == 0 {
		return fmt.Errorf("%w: no %s entries after filtering", ErrDataMissing, RoleLastname)
	}

	s.ds = ds
	s.id = uuid.New()
	return nil
}

// Firstnames returns the unique, non-blacklisted firstname candidates
// selected by the filter, in insertion order of first occurrence.
func (s *Session) Firstnames(filter SourceFilter) ([]string, error) {
	return s.names(RoleFirstname, filter)
}

// Lastnames returns the unique, non-blacklisted lastname candidates
// selected by the filter, in insertion order of first occurrence.
func (s *Session) Lastnames(filter SourceFilter) ([]string, error) {
	return s.names(RoleLastname, filter)
}

func (s *Session) names(role Role, filter SourceFilter) ([]string, error) {
	if s.ds == nil {
		return nil, ErrNotLoaded
	}
	if !filter.valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFilter, filter)
	}
	return s.ds.poolFor(role).candidates(filter, s.ds.baseTag), nil
}

// Generate draws up to count novel pairs from the filtered candidate
// pools. A pair is emitted only if it is not a case-insensitive match of
// a known full name, not within the similarity threshold of a known full
// name sharing its lastname, and not a duplicate of a pair already
// emitted in this call. Returns fewer than count pairs (possibly none)
// when the attempt budget runs out; that is a normal outcome, not an
// error. count <= 0 yields an empty result without consuming the random
// source; count above the number of distinct combinations the filtered
// pools can form is clamped to it.
func (s *Session) Generate(count int, filter SourceFilter) ([]Pair, error) {
	if s.ds == nil {
		return nil, ErrNotLoaded
	}
	if !filter.valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFilter, filter)
	}
	if count <= 0 {
		return []Pair{}, nil
	}

	firstnames := s.ds.firstnames.candidates(filter, s.ds.baseTag)
	if len(firstnames) == 0 {
		return nil, fmt.Errorf("%w: no %s candidates for filter %q", ErrEmptyPool, RoleFirstname, filter)
	}
	lastnames := s.ds.lastnames.candidates(filter, s.ds.baseTag)
	if len(lastnames) == 0 {
		return nil, fmt.Errorf("%w: no %s candidates for filter %q", ErrEmptyPool, RoleLastname, filter)
	}

	// A call can never yield more distinct pairs than the pools can form;
	// clamping here also keeps the budget multiplication from overflowing
	// on absurd counts.
	if combos := len(firstnames) * len(lastnames); count > combos {
		count = combos
	}

	idx := s.ds.pairs()

	result := make([]Pair, 0, count)
	attempted := make(map[string]struct{})

	budget := count * maxAttemptsPerName
	for attempt := 0; attempt < budget && len(result) < count; attempt++ {
		firstname := firstnames[s.rnd.Intn(len(firstnames))]
		lastname := lastnames[s.rnd.Intn(len(lastnames))]

		key := pairKey(firstname, lastname)
		if _, ok := attempted[key]; ok {
			continue
		}
		attempted[key] = struct{}{}

		if idx.existsExact(firstname, lastname) || idx.existsSimilar(firstname, lastname, s.threshold) {
			continue
		}

		result = append(result, Pair{Firstname: firstname, Lastname: lastname})
	}

	return result, nil
}

// Stats returns a read-only snapshot of the loaded dataset under the
// given filter.
func (s *Session) Stats(filter SourceFilter) (Stats, error) {
	if s.ds == nil {
		return Stats{}, ErrNotLoaded
	}
	if !filter.valid() {
		return Stats{}, fmt.Errorf("%w: %q", ErrInvalidFilter, filter)
	}

	base := s.ds.baseTag
	return Stats{
		UniqueFirstnames:      s.ds.firstnames.uniqueCount(filter, base),
		UniqueLastnames:       s.ds.lastnames.uniqueCount(filter, base),
		TotalFirstnames:       s.ds.firstnames.totalCount(filter, base),
		TotalLastnames:        s.ds.lastnames.totalCount(filter, base),
		ExistingCount:         len(s.ds.existing),
		BlacklistedFirstnames: s.ds.firstnames.blockedCount(filter, base),
		BlacklistedLastnames:  s.ds.lastnames.blockedCount(filter, base),
	}, nil
}
