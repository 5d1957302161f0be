package tcrmodel

import "strings"

// ReferenceEntry is one curated VDJdb record. It is immutable after load.
type ReferenceEntry struct {
	CDR3           string
	VSegment       string
	JSegment       string
	Species        string
	Gene           string
	AntigenEpitope string
	AntigenSpecies string
	MHCClass       string
	AntigenGene    string
	ReferenceID    string
	Method         string
	Meta           string
	CDR3Fix        string
	VDJdbScore     int
}

// MatchesSpecies reports case-insensitive equality against species.
func (e ReferenceEntry) MatchesSpecies(species string) bool {
	return strings.EqualFold(e.Species, species)
}

// MatchesGene reports case-insensitive equality against gene.
func (e ReferenceEntry) MatchesGene(gene string) bool {
	return strings.EqualFold(e.Gene, gene)
}

// MatchesMinVDJdbScore reports whether the entry's score is at least min.
func (e ReferenceEntry) MatchesMinVDJdbScore(min int) bool {
	return e.VDJdbScore >= min
}

// CorpusMetadata carries provenance about a loaded reference corpus:
// the original column names (useful for round-tripping/diagnostics) and
// an optional version tag.
type CorpusMetadata struct {
	Columns []string
	Version string
}

// ReferenceCorpus is an ordered, immutable sequence of ReferenceEntry plus
// metadata. Filter operations return new corpora; they never mutate the
// receiver.
type ReferenceCorpus struct {
	Entries  []ReferenceEntry
	Metadata CorpusMetadata
}

// Len returns the number of entries in the corpus.
func (c ReferenceCorpus) Len() int { return len(c.Entries) }

// IsEmpty reports whether the corpus has no entries.
func (c ReferenceCorpus) IsEmpty() bool { return len(c.Entries) == 0 }

// Filter returns a new corpus retaining only entries matching the given
// species/gene (case-insensitive, nil/empty means "don't filter") and
// with VDJdbScore >= minVDJdbScore.
func (c ReferenceCorpus) Filter(species, gene string, minVDJdbScore int) ReferenceCorpus {
	filtered := make([]ReferenceEntry, 0, len(c.Entries))
	for _, e := range c.Entries {
		if species != "" && !e.MatchesSpecies(species) {
			continue
		}
		if gene != "" && !e.MatchesGene(gene) {
			continue
		}
		if !e.MatchesMinVDJdbScore(minVDJdbScore) {
			continue
		}
		filtered = append(filtered, e)
	}
	return ReferenceCorpus{Entries: filtered, Metadata: c.Metadata}
}

// FilterByEpitopeSize returns a new corpus retaining only entries whose
// antigen epitope appears at least minSize times in the receiver.
func (c ReferenceCorpus) FilterByEpitopeSize(minSize int) ReferenceCorpus {
	counts := make(map[string]int, len(c.Entries))
	for _, e := range c.Entries {
		counts[e.AntigenEpitope]++
	}
	filtered := make([]ReferenceEntry, 0, len(c.Entries))
	for _, e := range c.Entries {
		if counts[e.AntigenEpitope] >= minSize {
			filtered = append(filtered, e)
		}
	}
	return ReferenceCorpus{Entries: filtered, Metadata: c.Metadata}
}
