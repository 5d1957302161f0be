package tcrmodel

// Clonotype is a query: a CDR3 amino-acid sequence plus V/J gene-segment
// identifiers and optional provenance fields. An empty V or J segment
// disables segment matching for that component, regardless of the match
// flags in MatchConfig.
type Clonotype struct {
	CDR3AA     CDR3Sequence
	VSegment   string
	JSegment   string
	CDR3NT     string
	DSegment   string
	SampleID   string
	IDInSample string
	Count      int
	Frequency  float64
}

// NewClonotype builds a Clonotype from its required fields.
func NewClonotype(cdr3AA, vSegment, jSegment string, count int, frequency float64) Clonotype {
	return Clonotype{
		CDR3AA:    NewCDR3Sequence(cdr3AA),
		VSegment:  vSegment,
		JSegment:  jSegment,
		Count:     count,
		Frequency: frequency,
	}
}

// VNormalized returns the V segment with any "*allele" suffix removed.
func (c Clonotype) VNormalized() string { return NormalizeSegment(c.VSegment) }

// JNormalized returns the J segment with any "*allele" suffix removed.
func (c Clonotype) JNormalized() string { return NormalizeSegment(c.JSegment) }
