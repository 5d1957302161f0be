package tcrmodel

import (
	"strconv"
	"strings"

	"github.com/antigenomics/vdjmatch-go/internal/apperr"
)

// SearchScope bounds how much edit distance a candidate is allowed to
// diverge from a query by, both in aggregate (Total) and per operation
// kind. Total >= max(Substitutions, Insertions, Deletions) is expected but
// not enforced: a scope violating that still has well-defined, if
// surprising, per-component bounds.
type SearchScope struct {
	Substitutions int
	Insertions    int
	Deletions     int
	Total         int
}

// ExactScope is the sentinel scope with every bound at zero: only exact
// string matches pass.
var ExactScope = SearchScope{}

// IsExact reports whether the scope only admits exact matches.
func (s SearchScope) IsExact() bool { return s.Total == 0 }

// ParseSearchScope parses "s,i,d,t" (four fields) or "s,id,t" (three
// fields, where the middle value sets both Insertions and Deletions).
// Invalid strings return an InputMalformed error; callers typically fall
// back to ExactScope.
func ParseSearchScope(s string) (SearchScope, error) {
	parts := strings.Split(s, ",")
	ints := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return SearchScope{}, apperr.Wrap(apperr.InputMalformed, err, "invalid search scope component %q in %q", p, s)
		}
		ints[i] = v
	}

	switch len(ints) {
	case 3:
		return SearchScope{
			Substitutions: ints[0],
			Insertions:    ints[1],
			Deletions:     ints[1],
			Total:         ints[2],
		}, nil
	case 4:
		return SearchScope{
			Substitutions: ints[0],
			Insertions:    ints[1],
			Deletions:     ints[2],
			Total:         ints[3],
		}, nil
	default:
		return SearchScope{}, apperr.New(apperr.InputMalformed, "invalid search scope format %q: expected 3 or 4 comma-separated fields", s)
	}
}
