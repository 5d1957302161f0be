// Package match implements the per-query linear-scan matcher, its
// hit-selection post-filters, the parallel batch executor that fans it
// out across a worker pool, and informativeness weighting.
package match

import (
	"sort"

	"github.com/antigenomics/vdjmatch-go/internal/align"
	"github.com/antigenomics/vdjmatch-go/internal/scoring"
	"github.com/antigenomics/vdjmatch-go/pkg/tcrmodel"
)

// maxScoreTieTolerance is the absolute tolerance used to decide whether a
// hit's aggregate score ties the maximum for max-hits-only retention.
const maxScoreTieTolerance = 1e-9

// MatchClonotype scans corpus linearly for entries matching query under
// cfg: segment gate, scope gate, alignment, scoring, threshold gate, in
// that order; then max-hits-only, top-N, and informativeness weighting
// post-filters are applied to the accumulated hit list, in that order.
func MatchClonotype(query tcrmodel.Clonotype, corpus tcrmodel.ReferenceCorpus, cfg tcrmodel.MatchConfig) []tcrmodel.Hit {
	hits := make([]tcrmodel.Hit, 0)

	for _, entry := range corpus.Entries {
		if cfg.MatchV && query.VSegment != "" {
			if query.VNormalized() != tcrmodel.NormalizeSegment(entry.VSegment) {
				continue
			}
		}
		if cfg.MatchJ && query.JSegment != "" {
			if query.JNormalized() != tcrmodel.NormalizeSegment(entry.JSegment) {
				continue
			}
		}

		if !align.MatchesWithinScope(query.CDR3AA, tcrmodel.NewCDR3Sequence(entry.CDR3), cfg.SearchScope) {
			continue
		}

		aln := align.Align(query.CDR3AA.String(), entry.CDR3)

		cdr3Score := scoring.CDR3Score(cfg, aln)
		vScore := scoring.SegmentMatchScore(query.VSegment, entry.VSegment, true)
		jScore := scoring.SegmentMatchScore(query.JSegment, entry.JSegment, true)

		totalScore := scoring.AggregateScore(cfg.UseVDJMatchScoring, cdr3Score, vScore, jScore)

		if cfg.ScoreThreshold != nil && totalScore < *cfg.ScoreThreshold {
			continue
		}

		hits = append(hits, tcrmodel.Hit{
			QueryClonotype:     query,
			ReferenceEntry:     entry,
			Score:              totalScore,
			Weight:             1.0,
			CDR3AlignmentScore: cdr3Score,
			VScore:             vScore,
			JScore:             jScore,
			EditDistance:       aln.EditDistance,
		})
	}

	if cfg.MaxHitsOnly {
		hits = keepMaxScoreHits(hits)
	}
	if cfg.TopNHits != nil {
		hits = topNHits(hits, *cfg.TopNHits)
	}
	if cfg.WeightByInformativeness {
		WeightByInformativeness(hits, corpus)
	}

	return hits
}

func keepMaxScoreHits(hits []tcrmodel.Hit) []tcrmodel.Hit {
	if len(hits) == 0 {
		return hits
	}
	maxScore := hits[0].Score
	for _, h := range hits[1:] {
		if h.Score > maxScore {
			maxScore = h.Score
		}
	}
	kept := make([]tcrmodel.Hit, 0, len(hits))
	for _, h := range hits {
		if absf(h.Score-maxScore) < maxScoreTieTolerance {
			kept = append(kept, h)
		}
	}
	return kept
}

func topNHits(hits []tcrmodel.Hit, n int) []tcrmodel.Hit {
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})
	if len(hits) > n {
		hits = hits[:n]
	}
	return hits
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
