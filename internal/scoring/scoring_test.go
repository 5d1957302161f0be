package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/antigenomics/vdjmatch-go/internal/align"
)

func TestBLOSUM62Identity(t *testing.T) {
	assert.Equal(t, 4, BLOSUM62('A', 'A'))
	assert.Equal(t, 11, BLOSUM62('W', 'W'))
	assert.Equal(t, 9, BLOSUM62('C', 'C'))
}

func TestBLOSUM62Symmetry(t *testing.T) {
	assert.Equal(t, -1, BLOSUM62('A', 'R'))
	assert.Equal(t, BLOSUM62('A', 'R'), BLOSUM62('R', 'A'))
}

func TestBLOSUM62UnknownResidue(t *testing.T) {
	assert.Equal(t, -4, BLOSUM62('X', 'A'))
	assert.Equal(t, -4, BLOSUM62('A', 'X'))
	assert.Equal(t, -4, BLOSUM62('X', 'X'))
}

func TestSimpleMismatchScoreRange(t *testing.T) {
	aln := align.Align("CASSLGQAYEQYF", "CASSLGQAYEQYF")
	assert.Equal(t, 1.0, SimpleMismatchScore(aln))

	aln = align.Align("CASSLGQAYEQYF", "AAAAAAAAAAAAA")
	score := SimpleMismatchScore(aln)
	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 1.0)
}

func TestComputeAlignmentScoreSign(t *testing.T) {
	identical := align.Align("CASSLGQAYEQYF", "CASSLGQAYEQYF")
	assert.Greater(t, ComputeAlignmentScore(identical), 0.0)

	dissimilar := align.Align("AAAA", "WWWW")
	assert.Less(t, ComputeAlignmentScore(dissimilar), 0.0)
}

func TestComputeNormalizedScoreRange(t *testing.T) {
	cases := [][2]string{
		{"CASSLGQAYEQYF", "CASSLGQAYEQYF"},
		{"CASSLGQAYEQYF", "CASSLGQAYEQYY"},
		{"AAAA", "WWWW"},
		{"", "CASSF"},
	}
	for _, c := range cases {
		aln := align.Align(c[0], c[1])
		score := ComputeNormalizedScore(aln)
		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 1.0)
	}

	identical := align.Align("CASSLGQAYEQYF", "CASSLGQAYEQYF")
	assert.Equal(t, 1.0, ComputeNormalizedScore(identical))
}

func TestSegmentMatchScore(t *testing.T) {
	assert.Equal(t, 1.0, SegmentMatchScore("TRBV12-3*01", "TRBV12-3*02", true))
	assert.Equal(t, 0.0, SegmentMatchScore("TRBV12-3*01", "TRBV12-3*02", false))
	assert.Equal(t, 0.0, SegmentMatchScore("TRBV12-3", "TRBV12-4", true))
	assert.Equal(t, 1.0, SegmentMatchScore("TRBV12-3", "TRBV12-3", false))
}

func TestSegmentMatchScoreAlleleInvariance(t *testing.T) {
	alleles := []string{"*01", "*02", "*1501"}
	base := "TRBV12-3"
	for _, a := range alleles {
		assert.Equal(t, 1.0, SegmentMatchScore(base, base+a, true))
	}
}

func TestAggregateScore(t *testing.T) {
	assert.Equal(t, 0.8, AggregateScore(false, 0.8, 0.0, 0.0))
	assert.InDelta(t, 0.5*0.8+0.25*1.0+0.25*1.0, AggregateScore(true, 0.8, 1.0, 1.0), 1e-9)
}
