// Package sample ingests repertoire sample files into Clonotype queries.
// Only the VDJtools tab-separated layout is implemented; MiTCR, MiGEC, and
// ImmunoSeq are recognized formats that report apperr.Unsupported, matching
// the state of the reference implementation this package was ported from.
package sample

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/antigenomics/vdjmatch-go/internal/apperr"
	"github.com/antigenomics/vdjmatch-go/pkg/tcrmodel"
)

// Format identifies a repertoire sample file layout.
type Format int

const (
	VDJtools Format = iota
	MiTCR
	MiGEC
	ImmunoSeq
)

// ParseFormat maps a case-insensitive format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "vdjtools":
		return VDJtools, nil
	case "mitcr":
		return MiTCR, nil
	case "migec":
		return MiGEC, nil
	case "immunoseq":
		return ImmunoSeq, nil
	default:
		return 0, apperr.New(apperr.InputMalformed, "unknown sample format: %s", s)
	}
}

// LoadFile reads path under the given format into a slice of Clonotype
// queries. Every clonotype from one load shares a fresh UUID as its SampleID,
// and IDInSample is the clonotype's zero-based position in the result,
// matching VDJtools convention where a sample file carries no explicit
// per-record identifiers.
func LoadFile(path string, format Format) ([]tcrmodel.Clonotype, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.Wrap(apperr.DatabaseNotFound, err, "opening sample file %q", path)
	}
	defer f.Close()

	sampleID := uuid.NewString()

	switch format {
	case VDJtools:
		return loadVDJtools(f, sampleID)
	case MiTCR:
		return nil, apperr.New(apperr.Unsupported, "MiTCR sample format not yet implemented")
	case MiGEC:
		return nil, apperr.New(apperr.Unsupported, "MiGEC sample format not yet implemented")
	case ImmunoSeq:
		return nil, apperr.New(apperr.Unsupported, "ImmunoSeq sample format not yet implemented")
	default:
		return nil, apperr.New(apperr.Unsupported, "unrecognized sample format")
	}
}

// loadVDJtools parses the VDJtools tab-separated layout: a header row, then
// count, frequency, cdr3.nt, cdr3.aa, v, d, j, in that column order. Records with fewer than
// 5 fields, or an empty CDR3/V/J, are skipped rather than erroring.
func loadVDJtools(r io.Reader, sampleID string) ([]tcrmodel.Clonotype, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	clonotypes := make([]tcrmodel.Clonotype, 0)

	// The first row is the column header.
	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return clonotypes, nil
		}
		return nil, apperr.Wrap(apperr.CorpusMalformed, err, "reading VDJtools sample header")
	}

	idx := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperr.Wrap(apperr.CorpusMalformed, err, "reading VDJtools sample row")
		}
		if len(record) < 5 {
			continue
		}

		count, _ := strconv.Atoi(strings.TrimSpace(field(record, 0)))
		frequency, _ := strconv.ParseFloat(strings.TrimSpace(field(record, 1)), 64)
		cdr3NT := field(record, 2)
		cdr3AA := field(record, 3)
		vSegment := field(record, 4)
		dSegment := field(record, 5)
		jSegment := field(record, 6)

		if cdr3AA == "" || vSegment == "" || jSegment == "" {
			continue
		}

		clonotype := tcrmodel.NewClonotype(cdr3AA, vSegment, jSegment, count, frequency)
		clonotype.CDR3NT = cdr3NT
		clonotype.DSegment = dSegment
		clonotype.SampleID = sampleID
		clonotype.IDInSample = strconv.Itoa(idx)
		idx++

		clonotypes = append(clonotypes, clonotype)
	}

	return clonotypes, nil
}

func field(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return record[i]
}
