// Package namegen generates novel fictional character names (a firstname
// paired with a lastname) from loaded word lists, guaranteeing that a
// generated pair does not already exist as a known character name and is
// not a trivial spelling variant of one.
//
// # Architecture
//
//   - A Session is a caller-owned handle over exactly one loaded dataset
//     (word lists, blacklists, and known full names for one race/sex
//     selection). Loading a new dataset replaces the previous one
//     wholesale; there is no incremental mutation.
//   - Ingestion trims lines, drops blanks and #-comments, normalizes to
//     NFC, deduplicates case-insensitively (first occurrence wins for
//     display casing), and excludes blacklisted names from the candidate
//     pools. A name occurring in several sources belongs to each of them
//     for source filtering, regardless of ingestion order.
//     Blacklists never touch the known-name records: a known full
//     name keeps blocking near-duplicates even when its firstname is
//     blacklisted.
//   - Known full names are loaded as dedicated "Firstname Lastname"
//     records, optionally tagged with a provenance via a trailing
//     "| source" suffix. They are indexed once per dataset, lazily on the
//     first generation call: an exact-pair set plus similarity buckets
//     keyed by folded lastname.
//   - Generation is bounded rejection sampling: draw a firstname and a
//     lastname uniformly at random, reject pairs already attempted,
//     already existing, or within edit distance of an existing pair with
//     the same lastname, and stop after count names or count×200
//     attempts, whichever comes first. A short (even empty) result is a
//     normal outcome, not an error.
//
// A Session is not safe for concurrent use: callers must serialize Load
// against Generate and the read accessors.
//
// # Usage
//
//	import "github.com/dmitrymomot/namekit/pkg/namegen"
//
//	s := namegen.NewSession()
//	if err := s.Load(input); err != nil {
//		// handle namegen.ErrDataMissing
//	}
//	pairs, err := s.Generate(10, namegen.FilterAll)
//
// For deterministic output in tests, inject a seeded random source:
//
//	s := namegen.NewSession(namegen.WithRand(rand.New(rand.NewSource(1))))
package namegen
