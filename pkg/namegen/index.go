package namegen

import "github.com/dmitrymomot/namekit/pkg/levenshtein"

// pairIndex answers "does this pair already exist" queries over the
// known full names of one dataset. It is built once per dataset and
// reused across every query of a generation run.
type pairIndex struct {
	// exact holds the case-insensitive identity of every known pair.
	exact map[string]struct{}

	// byLastname buckets folded firstnames under their folded lastname
	// for the same-lastname similarity scan.
	byLastname map[string][]string
}

func buildPairIndex(existing []fullName) *pairIndex {
	idx := &pairIndex{
		exact:      make(map[string]struct{}, len(existing)),
		byLastname: make(map[string][]string),
	}
	for _, fn := range existing {
		idx.exact[pairKey(fn.firstname, fn.lastname)] = struct{}{}
		lastKey := foldKey(fn.lastname)
		idx.byLastname[lastKey] = append(idx.byLastname[lastKey], foldKey(fn.firstname))
	}
	return idx
}

// existsExact reports case-insensitive exact pair membership.
func (idx *pairIndex) existsExact(firstname, lastname string) bool {
	_, ok := idx.exact[pairKey(firstname, lastname)]
	return ok
}

// existsSimilar reports whether any known pair has the identical folded
// lastname and a firstname within threshold edits of the candidate.
// Cross-lastname similarity is never checked.
func (idx *pairIndex) existsSimilar(firstname, lastname string, threshold int) bool {
	for _, known := range idx.byLastname[foldKey(lastname)] {
		if levenshtein.TooSimilar(firstname, known, threshold) {
			return true
		}
	}
	return false
}

// pairs returns the dataset's index, building it on first use.
func (d *dataset) pairs() *pairIndex {
	if d.index == nil {
		d.index = buildPairIndex(d.existing)
	}
	return d.index
}
