package tcrmodel

// TCR holds the six CDR amino-acid strings (CDR1/CDR2/CDR3, alpha/beta
// chain) used by the pairwise tcrdist engine. Any member may be empty,
// meaning that CDR is missing for this TCR; missing CDRs are skipped in
// distance accumulation rather than penalized.
type TCR struct {
	CDR1Alpha string
	CDR2Alpha string
	CDR3Alpha string
	CDR1Beta  string
	CDR2Beta  string
	CDR3Beta  string
}
