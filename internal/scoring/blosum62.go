// Package scoring implements the BLOSUM62-driven scoring model: the
// substitution matrix lookup, the raw and normalized CDR3 alignment
// scores, the simple mismatch score, and V/J segment concordance.
package scoring

import "gonum.org/v1/gonum/mat"

// aminoAcids is the BLOSUM62 row/column order used by both this package
// and internal/tcrdist, so the two engines share one numeric table.
const aminoAcids = "ARNDCQEGHILKMFPSTWYV"

// unknownResidueScore is returned for any byte outside the 20 standard
// amino acids — it never errors, per spec, it just scores as a strong
// mismatch.
const unknownResidueScore = -4

var aminoAcidIndex = func() map[byte]int {
	m := make(map[byte]int, len(aminoAcids))
	for i := 0; i < len(aminoAcids); i++ {
		m[aminoAcids[i]] = i
	}
	return m
}()

// blosum62 holds the standard BLOSUM62 substitution matrix as a
// symmetric dense matrix indexed by aminoAcidIndex, rather than a bare
// map[byte]map[byte]int8 — a fixed 20x20 numeric table is exactly what
// gonum/mat.SymDense models, and internal/tcrdist reuses the same matrix
// for its position-cost computation.
var blosum62 = buildBLOSUM62()

// raw BLOSUM62 scores in aminoAcids order (A R N D C Q E G H I L K M F P S T W Y V).
var blosum62Raw = [20][20]int{
	{4, -1, -2, -2, 0, -1, -1, 0, -2, -1, -1, -1, -1, -2, -1, 1, 0, -3, -2, 0},
	{-1, 5, 0, -2, -3, 1, 0, -2, 0, -3, -2, 2, -1, -3, -2, -1, -1, -3, -2, -3},
	{-2, 0, 6, 1, -3, 0, 0, 0, 1, -3, -3, 0, -2, -3, -2, 1, 0, -4, -2, -3},
	{-2, -2, 1, 6, -3, 0, 2, -1, -1, -3, -4, -1, -3, -3, -1, 0, -1, -4, -3, -3},
	{0, -3, -3, -3, 9, -3, -4, -3, -3, -1, -1, -3, -1, -2, -3, -1, -1, -2, -2, -1},
	{-1, 1, 0, 0, -3, 5, 2, -2, 0, -3, -2, 1, 0, -3, -1, 0, -1, -2, -1, -2},
	{-1, 0, 0, 2, -4, 2, 5, -2, 0, -3, -3, 1, -2, -3, -1, 0, -1, -3, -2, -2},
	{0, -2, 0, -1, -3, -2, -2, 6, -2, -4, -4, -2, -3, -3, -2, 0, -2, -2, -3, -3},
	{-2, 0, 1, -1, -3, 0, 0, -2, 8, -3, -3, -1, -2, -1, -2, -1, -2, -2, 2, -3},
	{-1, -3, -3, -3, -1, -3, -3, -4, -3, 4, 2, -3, 1, 0, -3, -2, -1, -3, -1, 3},
	{-1, -2, -3, -4, -1, -2, -3, -4, -3, 2, 4, -2, 2, 0, -3, -2, -1, -2, -1, 1},
	{-1, 2, 0, -1, -3, 1, 1, -2, -1, -3, -2, 5, -1, -3, -1, 0, -1, -3, -2, -2},
	{-1, -1, -2, -3, -1, 0, -2, -3, -2, 1, 2, -1, 5, 0, -2, -1, -1, -1, -1, 1},
	{-2, -3, -3, -3, -2, -3, -3, -3, -1, 0, 0, -3, 0, 6, -4, -2, -2, 1, 3, -1},
	{-1, -2, -2, -1, -3, -1, -1, -2, -2, -3, -3, -1, -2, -4, 7, -1, -1, -4, -3, -2},
	{1, -1, 1, 0, -1, 0, 0, 0, -1, -2, -2, 0, -1, -2, -1, 4, 1, -3, -2, -2},
	{0, -1, 0, -1, -1, -1, -1, -2, -2, -1, -1, -1, -1, -2, -1, 1, 5, -2, -2, 0},
	{-3, -3, -4, -4, -2, -2, -3, -2, -2, -3, -2, -3, -1, 1, -4, -3, -2, 11, 2, -3},
	{-2, -2, -2, -3, -2, -1, -2, -3, 2, -1, -1, -2, -1, 3, -3, -2, -2, 2, 7, -1},
	{0, -3, -3, -3, -1, -2, -2, -3, -3, 3, 1, -2, 1, -1, -2, -2, 0, -3, -1, 4},
}

func buildBLOSUM62() *mat.SymDense {
	n := len(aminoAcids)
	m := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			m.SetSym(i, j, float64(blosum62Raw[i][j]))
		}
	}
	return m
}

// BLOSUM62 returns the substitution score for a pair of amino-acid bytes.
// Unknown bytes (outside the 20 standard amino acids) score -4.
func BLOSUM62(a, b byte) int {
	ia, ok1 := aminoAcidIndex[a]
	ib, ok2 := aminoAcidIndex[b]
	if !ok1 || !ok2 {
		return unknownResidueScore
	}
	return int(blosum62.At(ia, ib))
}
