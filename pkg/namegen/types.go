package namegen

// Record is one raw word-list line together with the provenance tag of
// the source it came from. Lines are cleaned during Load; a Record may
// carry surrounding whitespace, a comment, or nothing at all.
type Record struct {
	Text       string
	Provenance string
}

// Pair is one generated firstname/lastname combination.
type Pair struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// Role identifies which side of a name a pool or error refers to.
type Role string

const (
	RoleFirstname Role = "firstname"
	RoleLastname  Role = "lastname"
)

// SourceFilter selects which provenance tags candidate names are drawn
// from. Novelty checks always consult every loaded known name regardless
// of the filter.
type SourceFilter string

const (
	// FilterAll draws candidates from every loaded source.
	FilterAll SourceFilter = "all"
	// FilterBase draws candidates from the base source only.
	FilterBase SourceFilter = "base"
	// FilterExpanded draws candidates from every source except the base.
	FilterExpanded SourceFilter = "expanded"
)

func (f SourceFilter) valid() bool {
	switch f {
	case FilterAll, FilterBase, FilterExpanded:
		return true
	}
	return false
}

// matches reports whether a record with the given provenance tag is
// selected by the filter, relative to the dataset's base tag.
func (f SourceFilter) matches(provenance, baseTag string) bool {
	switch f {
	case FilterBase:
		return provenance == baseTag
	case FilterExpanded:
		return provenance != baseTag
	default:
		return true
	}
}

// Input carries everything one Load call needs. All line sequences are
// raw: cleaning (trimming, blank and #-comment removal, Unicode
// normalization) happens during Load.
type Input struct {
	// BaseTag is the provenance tag of the base word-list source. It is
	// also the default provenance for full-name records that carry none.
	BaseTag string

	// Firstnames and Lastnames are the candidate word lists, each line
	// tagged with the source it came from.
	Firstnames []Record
	Lastnames  []Record

	// BlacklistFirstnames and BlacklistLastnames exclude names from the
	// candidate pools, matched case-insensitively.
	BlacklistFirstnames []string
	BlacklistLastnames  []string

	// FullNames are known, already-in-use character names, one per line:
	// "Firstname Lastname" or "Firstname Lastname | provenance". The
	// lastname may be absent. Generated pairs never match these exactly
	// and never come within edit distance of one sharing a lastname.
	FullNames []string
}

// Stats is a read-only snapshot of a loaded dataset under one source
// filter. Unique counts reflect the candidate pools after deduplication
// and blacklisting; totals count every accepted line including
// duplicates and blacklisted names; blacklisted counts are distinct
// names that were excluded. ExistingCount is filter-independent since
// novelty checks always consult everything loaded.
type Stats struct {
	UniqueFirstnames      int `json:"unique_firstnames"`
	UniqueLastnames       int `json:"unique_lastnames"`
	TotalFirstnames       int `json:"total_firstnames"`
	TotalLastnames        int `json:"total_lastnames"`
	ExistingCount         int `json:"existing_count"`
	BlacklistedFirstnames int `json:"blacklisted_firstnames"`
	BlacklistedLastnames  int `json:"blacklisted_lastnames"`
}
