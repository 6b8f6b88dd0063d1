// Package levenshtein computes the character-level edit distance between
// two strings and exposes a threshold predicate over it.
//
// Distances are computed over case-folded forms, so "Aryon" and "aryon"
// are zero edits apart. The package is a leaf with no dependencies and is
// used by the namegen engine to reject candidate names that are trivial
// spelling variants of known ones.
//
// # Usage
//
//	import "github.com/dmitrymomot/namekit/pkg/levenshtein"
//
//	levenshtein.Distance("kitten", "sitting") // 3
//	levenshtein.TooSimilar("Aryon", "Aryo", levenshtein.DefaultThreshold) // true
package levenshtein
