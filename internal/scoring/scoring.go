package scoring

import (
	"github.com/antigenomics/vdjmatch-go/pkg/tcrmodel"
)

// gapPenalty is the fixed cost subtracted per insertion/deletion in the
// CDR3 alignment score.
const gapPenalty = 4

// vdjmatchCDR3Weight, vdjmatchVWeight, vdjmatchJWeight are the aggregate
// score weights under VDJMATCH-style scoring. They are constants, not
// configurable, matching the reference implementation.
const (
	vdjmatchCDR3Weight = 0.5
	vdjmatchVWeight    = 0.25
	vdjmatchJWeight    = 0.25
)

// SimpleMismatchScore returns 1 - edit_distance/max(|query|,|target|),
// clamped into [0, 1] by construction since edit_distance never exceeds
// the longer string's length.
func SimpleMismatchScore(aln tcrmodel.Alignment) float64 {
	maxLen := len(aln.Query)
	if len(aln.Target) > maxLen {
		maxLen = len(aln.Target)
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(aln.EditDistance)/float64(maxLen)
}

// ComputeAlignmentScore walks aln's operations with two cursors into the
// query/target bytes: Match and Substitution advance both cursors and add
// BLOSUM62[q,t]; Insertion advances the target cursor and subtracts the
// gap penalty; Deletion advances the query cursor and subtracts it too.
func ComputeAlignmentScore(aln tcrmodel.Alignment) float64 {
	query := []byte(aln.Query)
	target := []byte(aln.Target)

	score := 0
	qi, ti := 0, 0
	for _, op := range aln.Operations {
		switch op {
		case tcrmodel.Match, tcrmodel.Substitution:
			if qi < len(query) && ti < len(target) {
				score += BLOSUM62(query[qi], target[ti])
				qi++
				ti++
			}
		case tcrmodel.Insertion:
			score -= gapPenalty
			ti++
		case tcrmodel.Deletion:
			score -= gapPenalty
			qi++
		}
	}
	return float64(score)
}

// ComputeNormalizedScore shifts the raw alignment score into a
// non-negative region and divides by the larger of the query's and the
// target's self-alignment ceiling, then clips the result to [0, 1].
func ComputeNormalizedScore(aln tcrmodel.Alignment) float64 {
	raw := ComputeAlignmentScore(aln)

	querySelfScore := selfAlignmentScore([]byte(aln.Query))
	targetSelfScore := selfAlignmentScore([]byte(aln.Target))
	maxSelfScore := querySelfScore
	if targetSelfScore > maxSelfScore {
		maxSelfScore = targetSelfScore
	}
	if maxSelfScore == 0 {
		return 0.0
	}

	normalized := (raw - float64(aln.EditDistance)*(-gapPenalty)) / maxSelfScore
	return clamp01(normalized)
}

func selfAlignmentScore(seq []byte) float64 {
	sum := 0
	for _, b := range seq {
		sum += BLOSUM62(b, b)
	}
	return float64(sum)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// SegmentMatchScore returns 1.0 if querySegment and dbSegment are equal
// (after dropping any "*allele" suffix when normalize is set), else 0.0.
func SegmentMatchScore(querySegment, dbSegment string, normalize bool) float64 {
	q, d := querySegment, dbSegment
	if normalize {
		q = tcrmodel.NormalizeSegment(q)
		d = tcrmodel.NormalizeSegment(d)
	}
	if q == d {
		return 1.0
	}
	return 0.0
}

// AggregateScore combines the CDR3, V, and J scores per MatchConfig:
// under VDJMATCH scoring it is 0.5*cdr3 + 0.25*v + 0.25*j; otherwise it is
// the CDR3 score alone.
func AggregateScore(useVDJMatchScoring bool, cdr3Score, vScore, jScore float64) float64 {
	if !useVDJMatchScoring {
		return cdr3Score
	}
	return vdjmatchCDR3Weight*cdr3Score + vdjmatchVWeight*vScore + vdjmatchJWeight*jScore
}

// CDR3Score picks SimpleMismatchScore or ComputeNormalizedScore per the
// matcher's documented rule: normalized only when VDJMATCH scoring is on
// and ScoringMode selects the normalized mode.
func CDR3Score(cfg tcrmodel.MatchConfig, aln tcrmodel.Alignment) float64 {
	if cfg.UseVDJMatchScoring && cfg.ScoringMode == tcrmodel.ScoringModeNormalized {
		return ComputeNormalizedScore(aln)
	}
	return SimpleMismatchScore(aln)
}
