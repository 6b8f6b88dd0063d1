package loader

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Manifest describes where one dataset's word lists live, relative to the
// fetcher root.
type Manifest struct {
	// Base is the provenance tag of the base source. Candidate filtering
	// and default full-name provenance key off it.
	Base string `yaml:"base"`

	// Sources lists the base and expansion word-list sources.
	Sources []Source `yaml:"sources"`

	// Blacklists point at the firstname and lastname exclusion lists.
	// Either path may be empty or absent.
	Blacklists Blacklists `yaml:"blacklists"`

	// FullNames points at the known-character-names file. May be empty.
	FullNames string `yaml:"fullnames"`
}

// Source is one word-list source: a provenance tag and the directory
// holding its per-selection list files.
type Source struct {
	Tag string `yaml:"tag"`
	Dir string `yaml:"dir"`
}

// Blacklists holds the paths of the two exclusion lists.
type Blacklists struct {
	Firstnames string `yaml:"firstnames"`
	Lastnames  string `yaml:"lastnames"`
}

// ParseManifest decodes and validates a YAML manifest.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) validate() error {
	if len(m.Sources) == 0 {
		return fmt.Errorf("%w: no sources", ErrInvalidManifest)
	}
	if m.Base == "" {
		return fmt.Errorf("%w: base tag is empty", ErrInvalidManifest)
	}

	seen := make(map[string]struct{}, len(m.Sources))
	baseFound := false
	for _, src := range m.Sources {
		if src.Tag == "" {
			return fmt.Errorf("%w: source with empty tag", ErrInvalidManifest)
		}
		if _, dup := seen[src.Tag]; dup {
			return fmt.Errorf("%w: duplicate source tag %q", ErrInvalidManifest, src.Tag)
		}
		seen[src.Tag] = struct{}{}
		if src.Tag == m.Base {
			baseFound = true
		}
	}
	if !baseFound {
		return fmt.Errorf("%w: base tag %q is not among the sources", ErrInvalidManifest, m.Base)
	}
	return nil
}
