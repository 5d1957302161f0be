// Package tcrmodel defines the value objects shared by the matching,
// scoring, and tcrdist engines: CDR3 sequences, clonotypes, reference
// entries and corpora, search scopes, match configuration, alignments,
// hits, and TCR chain pairs.
package tcrmodel

import (
	"strings"

	"github.com/biogo/biogo/alphabet"
)

// CDR3Sequence is an uppercase amino-acid string. It is case-normalized at
// construction and immutable thereafter.
type CDR3Sequence struct {
	value string
}

// NewCDR3Sequence uppercases s and returns the immutable sequence.
func NewCDR3Sequence(s string) CDR3Sequence {
	return CDR3Sequence{value: strings.ToUpper(s)}
}

// String returns the normalized sequence.
func (c CDR3Sequence) String() string { return c.value }

// Len returns the sequence length in bytes.
func (c CDR3Sequence) Len() int { return len(c.value) }

// IsEmpty reports whether the sequence has no residues.
func (c CDR3Sequence) IsEmpty() bool { return c.value == "" }

// Bytes exposes the underlying amino-acid bytes.
func (c CDR3Sequence) Bytes() []byte { return []byte(c.value) }

// IsValidPeptide reports whether every byte of the sequence is a letter of
// the standard 20-residue peptide alphabet. Non-standard residues are not
// an error anywhere in this package (spec: unknown bytes score -4 and
// never fail an operation) — this is purely diagnostic, so callers that
// load data from an untrusted source can log a warning before matching.
func (c CDR3Sequence) IsValidPeptide() bool {
	for _, b := range c.Bytes() {
		if !alphabet.Protein.IsValid(alphabet.Letter(b)) {
			return false
		}
	}
	return true
}

// NormalizeSegment strips an "*allele" suffix from a V/J segment
// identifier by splitting on '*' and keeping the prefix.
func NormalizeSegment(segment string) string {
	if idx := strings.IndexByte(segment, '*'); idx >= 0 {
		return segment[:idx]
	}
	return segment
}
