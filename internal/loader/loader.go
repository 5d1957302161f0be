// Package loader reads a VDJdb-format reference corpus from a TSV or
// gzip-compressed TSV file, resolving columns by header name rather than
// fixed position.
package loader

import (
	"compress/gzip"
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/antigenomics/vdjmatch-go/internal/apperr"
	"github.com/antigenomics/vdjmatch-go/pkg/tcrmodel"
)

// requiredColumns must be present in the header or loading fails with
// CorpusMalformed.
var requiredColumns = []string{
	"gene", "cdr3", "species", "v.segm", "j.segm", "antigen.epitope", "antigen.species",
}

// optionalColumns default to empty/zero when absent from the header.
var optionalColumns = []string{
	"mhc.class", "antigen.gene", "reference.id", "vdjdb.score", "method", "meta", "cdr3fix",
}

// LoadFromFile reads path (TSV, or TSV.GZ when the name ends in ".gz") into
// a ReferenceCorpus. A missing file is reported as DatabaseNotFound; a
// malformed header or row is reported as CorpusMalformed.
func LoadFromFile(path string) (tcrmodel.ReferenceCorpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return tcrmodel.ReferenceCorpus{}, apperr.Wrap(apperr.DatabaseNotFound, err, "opening reference corpus %q", path)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(strings.ToLower(path), ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return tcrmodel.ReferenceCorpus{}, apperr.Wrap(apperr.CorpusMalformed, err, "opening gzip stream for %q", path)
		}
		defer gz.Close()
		r = gz
	}

	return Load(r)
}

// Load parses a TSV reference corpus from an already-decompressed reader.
func Load(r io.Reader) (tcrmodel.ReferenceCorpus, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return tcrmodel.ReferenceCorpus{}, apperr.Wrap(apperr.CorpusMalformed, err, "reading header row")
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}

	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			return tcrmodel.ReferenceCorpus{}, apperr.New(apperr.CorpusMalformed, "missing required column %q in header", col)
		}
	}

	entries := make([]tcrmodel.ReferenceEntry, 0)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return tcrmodel.ReferenceCorpus{}, apperr.Wrap(apperr.CorpusMalformed, err, "reading corpus row")
		}

		entries = append(entries, rowToEntry(row, idx))
	}

	return tcrmodel.ReferenceCorpus{
		Entries:  entries,
		Metadata: tcrmodel.CorpusMetadata{Columns: header},
	}, nil
}

func column(row []string, idx map[string]int, name string) string {
	i, ok := idx[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// rowToEntry never fails on a bad vdjdb.score: missing or unparseable both
// default to 0, matching the original loader's unwrap_or(0).
func rowToEntry(row []string, idx map[string]int) tcrmodel.ReferenceEntry {
	score := 0
	if parsed, err := strconv.Atoi(strings.TrimSpace(column(row, idx, "vdjdb.score"))); err == nil {
		score = parsed
	}

	return tcrmodel.ReferenceEntry{
		CDR3:           column(row, idx, "cdr3"),
		VSegment:       column(row, idx, "v.segm"),
		JSegment:       column(row, idx, "j.segm"),
		Species:        column(row, idx, "species"),
		Gene:           column(row, idx, "gene"),
		AntigenEpitope: column(row, idx, "antigen.epitope"),
		AntigenSpecies: column(row, idx, "antigen.species"),
		MHCClass:       column(row, idx, "mhc.class"),
		AntigenGene:    column(row, idx, "antigen.gene"),
		ReferenceID:    column(row, idx, "reference.id"),
		Method:         column(row, idx, "method"),
		Meta:           column(row, idx, "meta"),
		CDR3Fix:        column(row, idx, "cdr3fix"),
		VDJdbScore:     score,
	}
}
