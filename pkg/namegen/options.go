package namegen

import "math/rand"

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source used for candidate draws. Nil values
// are ignored. Inject a seeded source for deterministic generation in
// tests; the default source is seeded from the current time.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) {
		if r != nil {
			s.rnd = r
		}
	}
}

// WithThreshold sets the edit-distance threshold below which a candidate
// firstname is considered a spelling variant of a known one sharing the
// same lastname. Values below 1 are ignored. Default is
// levenshtein.DefaultThreshold.
func WithThreshold(threshold int) Option {
	return func(s *Session) {
		if threshold >= 1 {
			s.threshold = threshold
		}
	}
}
