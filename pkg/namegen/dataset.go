package namegen

import (
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// commentMarker prefixes word-list lines that ingestion discards.
const commentMarker = "#"

// cleanLine normalizes one raw word-list line: NFC composition, surrounding
// whitespace trimmed. Returns ok=false for lines that carry no name (blank
// or comment).
func cleanLine(raw string) (string, bool) {
	line := strings.TrimSpace(norm.NFC.String(raw))
	if line == "" || strings.HasPrefix(line, commentMarker) {
		return "", false
	}
	return line, true
}

// foldKey produces the case-insensitive lookup key for a cleaned name.
func foldKey(name string) string {
	return strings.ToLower(name)
}

// pairKey is the case-insensitive identity of a firstname/lastname pair.
func pairKey(firstname, lastname string) string {
	return foldKey(firstname) + "\x00" + foldKey(lastname)
}

// poolEntry is one unique candidate name. Display casing and ordering
// come from the first occurrence; tags accumulate every provenance the
// name occurred under, so filter membership never depends on which source
// happened to be ingested first.
type poolEntry struct {
	display string
	key     string
	tags    []string
}

func (e *poolEntry) addTag(tag string) {
	if !slices.Contains(e.tags, tag) {
		e.tags = append(e.tags, tag)
	}
}

// selectedBy reports whether any of the entry's provenance tags satisfies
// the filter.
func (e *poolEntry) selectedBy(f SourceFilter, baseTag string) bool {
	for _, tag := range e.tags {
		if f.matches(tag, baseTag) {
			return true
		}
	}
	return false
}

// pool holds the unique, non-blacklisted candidate names of one role in
// insertion order of first occurrence.
type pool struct {
	entries []poolEntry
	seen    map[string]int

	// totals counts every accepted line per provenance, duplicates and
	// blacklisted names included.
	totals map[string]int

	// blocked records distinct blacklisted names that were excluded.
	blocked     []poolEntry
	blockedSeen map[string]int
}

func newPool() *pool {
	return &pool{
		seen:        make(map[string]int),
		totals:      make(map[string]int),
		blockedSeen: make(map[string]int),
	}
}

func (p *pool) ingest(name, provenance string, blacklist map[string]struct{}) {
	p.totals[provenance]++

	key := foldKey(name)
	if _, banned := blacklist[key]; banned {
		if i, ok := p.blockedSeen[key]; ok {
			p.blocked[i].addTag(provenance)
			return
		}
		p.blockedSeen[key] = len(p.blocked)
		p.blocked = append(p.blocked, poolEntry{display: name, key: key, tags: []string{provenance}})
		return
	}

	if i, ok := p.seen[key]; ok {
		p.entries[i].addTag(provenance)
		return
	}
	p.seen[key] = len(p.entries)
	p.entries = append(p.entries, poolEntry{display: name, key: key, tags: []string{provenance}})
}

// candidates returns the display names selected by the filter, in
// insertion order.
func (p *pool) candidates(f SourceFilter, baseTag string) []string {
	out := make([]string, 0, len(p.entries))
	for _, e := range p.entries {
		if e.selectedBy(f, baseTag) {
			out = append(out, e.display)
		}
	}
	return out
}

func (p *pool) uniqueCount(f SourceFilter, baseTag string) int {
	n := 0
	for _, e := range p.entries {
		if e.selectedBy(f, baseTag) {
			n++
		}
	}
	return n
}

func (p *pool) totalCount(f SourceFilter, baseTag string) int {
	n := 0
	for tag, c := range p.totals {
		if f.matches(tag, baseTag) {
			n += c
		}
	}
	return n
}

func (p *pool) blockedCount(f SourceFilter, baseTag string) int {
	n := 0
	for _, e := range p.blocked {
		if e.selectedBy(f, baseTag) {
			n++
		}
	}
	return n
}

// fullName is one known, already-in-use character name. lastname may be
// empty for single-word names.
type fullName struct {
	firstname  string
	lastname   string
	provenance string
}

// parseFullName splits a cleaned full-name line into its parts. Format:
// "Firstname Lastname" or "Firstname Lastname | provenance"; the
// provenance defaults to the base tag when absent.
func parseFullName(line, baseTag string) (fullName, bool) {
	name := line
	provenance := baseTag

	if i := strings.Index(line, "|"); i >= 0 {
		name = strings.TrimSpace(line[:i])
		if tag := strings.TrimSpace(line[i+1:]); tag != "" {
			provenance = tag
		}
	}

	fields := strings.Fields(name)
	if len(fields) == 0 {
		return fullName{}, false
	}

	return fullName{
		firstname:  fields[0],
		lastname:   strings.Join(fields[1:], " "),
		provenance: provenance,
	}, true
}

// dataset is the immutable result of one Load: candidate pools,
// blacklists, known full names, and the lazily built pair index.
type dataset struct {
	baseTag string

	firstnames *pool
	lastnames  *pool

	existing []fullName

	// index is built on the first generation query and lives as long as
	// the dataset; replacing the dataset discards it.
	index *pairIndex
}

func buildDataset(in Input) *dataset {
	d := &dataset{
		baseTag:    in.BaseTag,
		firstnames: newPool(),
		lastnames:  newPool(),
	}

	blackFirst := foldLines(in.BlacklistFirstnames)
	blackLast := foldLines(in.BlacklistLastnames)

	for _, r := range in.Firstnames {
		if name, ok := cleanLine(r.Text); ok {
			d.firstnames.ingest(name, r.Provenance, blackFirst)
		}
	}
	for _, r := range in.Lastnames {
		if name, ok := cleanLine(r.Text); ok {
			d.lastnames.ingest(name, r.Provenance, blackLast)
		}
	}
	for _, raw := range in.FullNames {
		line, ok := cleanLine(raw)
		if !ok {
			continue
		}
		if fn, ok := parseFullName(line, in.BaseTag); ok {
			d.existing = append(d.existing, fn)
		}
	}

	return d
}

// foldLines cleans and case-folds blacklist lines into a lookup set.
func foldLines(lines []string) map[string]struct{} {
	set := make(map[string]struct{}, len(lines))
	for _, raw := range lines {
		if name, ok := cleanLine(raw); ok {
			set[foldKey(name)] = struct{}{}
		}
	}
	return set
}

func (d *dataset) poolFor(role Role) *pool {
	if role == RoleLastname {
		return d.lastnames
	}
	return d.firstnames
}
