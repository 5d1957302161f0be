package match

import (
	"math"

	"github.com/antigenomics/vdjmatch-go/pkg/tcrmodel"
)

// WeightByInformativeness overwrites each hit's Weight with a Laplace-
// adjusted informativeness score for its reference entry's epitope,
// computed over the whole corpus rather than just the hits at hand. It
// only annotates; it never reorders or drops hits.
func WeightByInformativeness(hits []tcrmodel.Hit, corpus tcrmodel.ReferenceCorpus) {
	if len(hits) == 0 {
		return
	}
	freq := epitopeFrequencies(corpus)
	total := corpus.Len()
	for i := range hits {
		count := freq[hits[i].ReferenceEntry.AntigenEpitope]
		hits[i].Weight = informativeness(count, total)
	}
}

func epitopeFrequencies(corpus tcrmodel.ReferenceCorpus) map[string]int {
	freq := make(map[string]int)
	for _, e := range corpus.Entries {
		freq[e.AntigenEpitope]++
	}
	return freq
}

// informativeness implements -log10((count+1)/(total+1)): rarer epitopes
// across the corpus get a larger weight.
func informativeness(count, total int) float64 {
	return -math.Log10(float64(count+1) / float64(total+1))
}
