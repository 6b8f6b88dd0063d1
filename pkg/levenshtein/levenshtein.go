package levenshtein

import "strings"

// DefaultThreshold is the edit distance below which two names are treated
// as spelling variants of each other. Up to 2 edits is too similar; 3 or
// more edits counts as distinct.
const DefaultThreshold = 3

// Distance returns the Levenshtein edit distance between the case-folded
// forms of a and b: the minimum number of single-character insertions,
// deletions, and substitutions required to turn one into the other.
func Distance(a, b string) int {
	ar := []rune(strings.ToLower(a))
	br := []rune(strings.ToLower(b))

	if len(ar) == 0 {
		return len(br)
	}
	if len(br) == 0 {
		return len(ar)
	}

	// Keep the shorter string on the inner loop so the rolling rows stay
	// as small as possible.
	if len(ar) > len(br) {
		ar, br = br, ar
	}

	prev := make([]int, len(ar)+1)
	curr := make([]int, len(ar)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(br); j++ {
		curr[0] = j
		for i := 1; i <= len(ar); i++ {
			cost := 1
			if ar[i-1] == br[j-1] {
				cost = 0
			}
			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(ar)]
}

// TooSimilar reports whether a and b are within threshold edits of each
// other. Identical strings are too similar under any positive threshold.
func TooSimilar(a, b string, threshold int) bool {
	return Distance(a, b) < threshold
}
