package align

import "github.com/antigenomics/vdjmatch-go/pkg/tcrmodel"

// Align runs the full Levenshtein DP table between query and target, then
// backtraces once from (|query|, |target|) to (0, 0) to produce an
// Alignment with its operation sequence.
//
// Backtrace precedence at each cell is part of the contract, not an
// implementation detail: diagonal (match or substitution) is preferred
// whenever dp[i][j] == dp[i-1][j-1] + cost; otherwise deletion is
// preferred when dp[i][j] == dp[i-1][j] + 1; otherwise insertion. This
// fixed order determines which specific operation sequence — and
// therefore which score — scoring assigns when two paths tie.
func Align(query, target string) tcrmodel.Alignment {
	m, n := len(query), len(target)

	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
		dp[i][0] = i
	}
	for j := 0; j <= n; j++ {
		dp[0][j] = j
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			cost := 1
			if query[i-1] == target[j-1] {
				cost = 0
			}
			dp[i][j] = min3(dp[i-1][j]+1, dp[i][j-1]+1, dp[i-1][j-1]+cost)
		}
	}

	var ops []tcrmodel.EditOp
	substitutions, insertions, deletions := 0, 0, 0
	i, j := m, n
	for i > 0 || j > 0 {
		if i > 0 && j > 0 {
			cost := 1
			if query[i-1] == target[j-1] {
				cost = 0
			}
			if dp[i][j] == dp[i-1][j-1]+cost {
				if cost == 0 {
					ops = append(ops, tcrmodel.Match)
				} else {
					ops = append(ops, tcrmodel.Substitution)
					substitutions++
				}
				i--
				j--
				continue
			}
		}
		if i > 0 && dp[i][j] == dp[i-1][j]+1 {
			ops = append(ops, tcrmodel.Deletion)
			deletions++
			i--
		} else if j > 0 && dp[i][j] == dp[i][j-1]+1 {
			ops = append(ops, tcrmodel.Insertion)
			insertions++
			j--
		}
	}

	reverseOps(ops)

	return tcrmodel.Alignment{
		Query:         query,
		Target:        target,
		Operations:    ops,
		Substitutions: substitutions,
		Insertions:    insertions,
		Deletions:     deletions,
		EditDistance:  dp[m][n],
	}
}

func reverseOps(ops []tcrmodel.EditOp) {
	for i, j := 0, len(ops)-1; i < j; i, j = i+1, j-1 {
		ops[i], ops[j] = ops[j], ops[i]
	}
}
