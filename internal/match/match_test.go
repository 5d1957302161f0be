package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antigenomics/vdjmatch-go/pkg/tcrmodel"
)

func testCorpus() tcrmodel.ReferenceCorpus {
	return tcrmodel.ReferenceCorpus{
		Entries: []tcrmodel.ReferenceEntry{
			{CDR3: "CASSLGQAYEQYF", VSegment: "TRBV12-3*01", JSegment: "TRBJ2-7*01", AntigenEpitope: "GILGFVFTL", AntigenSpecies: "InfluenzaA"},
			{CDR3: "CASSLGQAYEQYY", VSegment: "TRBV12-3*01", JSegment: "TRBJ2-7*01", AntigenEpitope: "GILGFVFTL", AntigenSpecies: "InfluenzaA"},
			{CDR3: "CASSIRSSYEQYF", VSegment: "TRBV19*01", JSegment: "TRBJ2-7*01", AntigenEpitope: "NLVPMVATV", AntigenSpecies: "CMV"},
			{CDR3: "CAAAAAAAAAAAA", VSegment: "TRBV7-2*01", JSegment: "TRBJ1-1*01", AntigenEpitope: "NLVPMVATV", AntigenSpecies: "CMV"},
		},
		Metadata: tcrmodel.CorpusMetadata{Version: "test"},
	}
}

func exactQuery() tcrmodel.Clonotype {
	return tcrmodel.NewClonotype("CASSLGQAYEQYF", "TRBV12-3*01", "TRBJ2-7*01", 1, 1.0)
}

func TestMatchClonotypeExactHit(t *testing.T) {
	cfg := tcrmodel.DefaultMatchConfig()
	hits := MatchClonotype(exactQuery(), testCorpus(), cfg)
	require.Len(t, hits, 1)
	assert.Equal(t, "CASSLGQAYEQYF", hits[0].ReferenceEntry.CDR3)
	assert.Equal(t, 0, hits[0].EditDistance)
	assert.Equal(t, 1.0, hits[0].Score)
}

func TestMatchClonotypeOneSubstitution(t *testing.T) {
	cfg := tcrmodel.DefaultMatchConfig()
	cfg.SearchScope = tcrmodel.SearchScope{Substitutions: 1, Insertions: 0, Deletions: 0, Total: 1}
	hits := MatchClonotype(exactQuery(), testCorpus(), cfg)
	require.Len(t, hits, 2)
}

func TestMatchClonotypeScopeGateOnlyChecksTotal(t *testing.T) {
	// MatchClonotype enforces only scope.Total (the documented divergence
	// from full per-op gating); a per-op-tight scope admits this insertion
	// because Total:1 is satisfied even though Insertions:0 would not be.
	// tcrmodel.Alignment.WithinScope is the exported path for callers who
	// want the stricter per-op check (see internal/align's own tests).
	corpus := tcrmodel.ReferenceCorpus{Entries: []tcrmodel.ReferenceEntry{
		{CDR3: "CASSLGQAYEQYFA", VSegment: "TRBV12-3*01", JSegment: "TRBJ2-7*01", AntigenEpitope: "GILGFVFTL"},
	}}
	cfg := tcrmodel.DefaultMatchConfig()
	cfg.SearchScope = tcrmodel.SearchScope{Substitutions: 1, Insertions: 0, Deletions: 0, Total: 1}
	hits := MatchClonotype(exactQuery(), corpus, cfg)
	require.Len(t, hits, 1)
	assert.Equal(t, "CASSLGQAYEQYFA", hits[0].ReferenceEntry.CDR3)
}

func TestMatchClonotypeTopNOrdersByScore(t *testing.T) {
	cfg := tcrmodel.DefaultMatchConfig()
	cfg.SearchScope = tcrmodel.SearchScope{Substitutions: 99, Insertions: 99, Deletions: 99, Total: 99}
	n := 2
	cfg.TopNHits = &n
	hits := MatchClonotype(exactQuery(), testCorpus(), cfg)
	require.Len(t, hits, 2)
	assert.GreaterOrEqual(t, hits[0].Score, hits[1].Score)
}

func TestMatchClonotypeMaxHitsOnlyWithTopN(t *testing.T) {
	cfg := tcrmodel.DefaultMatchConfig()
	cfg.SearchScope = tcrmodel.SearchScope{Substitutions: 1, Insertions: 0, Deletions: 0, Total: 1}
	cfg.MaxHitsOnly = true
	n := 5
	cfg.TopNHits = &n
	hits := MatchClonotype(exactQuery(), testCorpus(), cfg)
	require.Len(t, hits, 1)
	assert.Equal(t, 1.0, hits[0].Score)
}

func TestMatchClonotypeInformativenessWeighting(t *testing.T) {
	cfg := tcrmodel.DefaultMatchConfig()
	cfg.SearchScope = tcrmodel.SearchScope{Substitutions: 99, Insertions: 99, Deletions: 99, Total: 99}
	cfg.WeightByInformativeness = true
	hits := MatchClonotype(exactQuery(), testCorpus(), cfg)
	require.NotEmpty(t, hits)
	for _, h := range hits {
		assert.Greater(t, h.Weight, 0.0)
	}
}

func TestMatchClonotypesBatchMatchesSingleQuery(t *testing.T) {
	corpus := testCorpus()
	cfg := tcrmodel.DefaultMatchConfig()
	cfg.SearchScope = tcrmodel.SearchScope{Substitutions: 1, Insertions: 0, Deletions: 0, Total: 1}

	queries := []tcrmodel.Clonotype{
		exactQuery(),
		tcrmodel.NewClonotype("CASSIRSSYEQYF", "TRBV19*01", "TRBJ2-7*01", 1, 1.0),
	}

	batchResults := MatchClonotypes(queries, corpus, cfg, 4)
	require.Len(t, batchResults, 2)

	for i, q := range queries {
		single := MatchClonotype(q, corpus, cfg)
		assert.ElementsMatch(t, cdr3Set(single), cdr3Set(batchResults[i]))
	}
}

func cdr3Set(hits []tcrmodel.Hit) []string {
	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.ReferenceEntry.CDR3
	}
	return out
}
