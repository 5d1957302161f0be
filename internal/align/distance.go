// Package align implements the bounded edit-distance kernel: unit-cost
// Levenshtein distance and full backtrace alignment over amino-acid
// strings, plus the coarse scope gate the matcher applies before running
// a full alignment.
package align

import "github.com/antigenomics/vdjmatch-go/pkg/tcrmodel"

// EditDistance computes the classic unit-cost Levenshtein distance between
// a and b using two rolling rows. Deletion, insertion, and substitution
// each cost 1; identical bytes cost 0.
func EditDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			curr[j] = min3(del, ins, sub)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// MatchesWithinScope reports whether query and candidate fall within
// scope's Total edit-distance bound. When scope is EXACT, plain string
// equality is used instead of running the DP.
func MatchesWithinScope(query, candidate tcrmodel.CDR3Sequence, scope tcrmodel.SearchScope) bool {
	if scope.IsExact() {
		return query.String() == candidate.String()
	}
	return EditDistance(query.String(), candidate.String()) <= scope.Total
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
