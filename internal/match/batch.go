package match

import "github.com/antigenomics/vdjmatch-go/pkg/tcrmodel"

// MatchClonotypes runs MatchClonotype for every query against corpus,
// fanning the independent per-query work out across a bounded worker
// pool. Results preserve the input order: result[i] always corresponds
// to queries[i], regardless of which worker finished it or when.
func MatchClonotypes(queries []tcrmodel.Clonotype, corpus tcrmodel.ReferenceCorpus, cfg tcrmodel.MatchConfig, workers int) [][]tcrmodel.Hit {
	results := make([][]tcrmodel.Hit, len(queries))
	if len(queries) == 0 {
		return results
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > len(queries) {
		workers = len(queries)
	}

	jobs := make(chan int)
	done := make(chan struct{})

	for w := 0; w < workers; w++ {
		go func() {
			for i := range jobs {
				results[i] = MatchClonotype(queries[i], corpus, cfg)
			}
			done <- struct{}{}
		}()
	}

	go func() {
		for i := range queries {
			jobs <- i
		}
		close(jobs)
	}()

	for w := 0; w < workers; w++ {
		<-done
	}

	return results
}
