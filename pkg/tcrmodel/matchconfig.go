package tcrmodel

// ScoringMode selects how the CDR3 alignment score is computed when
// UseVDJMatchScoring is set. Normalized uses ComputeNormalizedScore;
// any other value uses SimpleMismatchScore.
type ScoringMode int

const (
	// ScoringModeNormalized selects the BLOSUM62-normalized CDR3 score.
	ScoringModeNormalized ScoringMode = 1
	// ScoringModeSimple selects the plain 1-edit_distance/max_len score.
	ScoringModeSimple ScoringMode = 0
)

// MatchConfig configures a single-query match against a reference corpus.
type MatchConfig struct {
	SearchScope             SearchScope
	MatchV                  bool
	MatchJ                  bool
	UseVDJMatchScoring      bool
	ScoringMode             ScoringMode
	ScoreThreshold          *float64
	MaxHitsOnly             bool
	TopNHits                *int
	WeightByInformativeness bool
}

// DefaultMatchConfig mirrors the original implementation's Default: exact
// scope, no segment matching, simple scoring, no post-filters.
func DefaultMatchConfig() MatchConfig {
	return MatchConfig{
		SearchScope: ExactScope,
		ScoringMode: ScoringModeNormalized,
	}
}
