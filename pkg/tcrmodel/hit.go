package tcrmodel

// Hit is a retained match between a query Clonotype and a ReferenceEntry,
// carrying the scores that drove retention/ranking (Score) and a separate
// annotation-only Weight assigned by informativeness weighting. Scoring
// drives retention and ranking; weighting only annotates already-chosen
// hits. The two fields must never be collapsed into one.
type Hit struct {
	QueryClonotype     Clonotype
	ReferenceEntry     ReferenceEntry
	Score              float64
	Weight             float64
	CDR3AlignmentScore float64
	VScore             float64
	JScore             float64
	EditDistance       int
}
