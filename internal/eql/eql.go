// Package eql implements the tiny filter-expression language applied to
// reference-corpus entries: case-insensitive equality and regex match over
// a fixed set of named columns.
package eql

import (
	"regexp"

	"golang.org/x/text/cases"

	"github.com/antigenomics/vdjmatch-go/internal/apperr"
	"github.com/antigenomics/vdjmatch-go/pkg/tcrmodel"
)

var foldCase = cases.Fold()

// Filter evaluates a parsed expression against a reference entry.
type Filter interface {
	Matches(entry tcrmodel.ReferenceEntry) bool
}

// exactColumnValue extracts the named column's text for == comparisons.
// antigen.gene is deliberately absent: it is a regex-only column, so an
// exact-match filter against it must always evaluate false, regardless of
// whether the field is populated.
func exactColumnValue(column string, entry tcrmodel.ReferenceEntry) (string, bool) {
	switch column {
	case "species":
		return entry.Species, true
	case "gene":
		return entry.Gene, true
	case "antigen.species":
		return entry.AntigenSpecies, true
	case "antigen.epitope":
		return entry.AntigenEpitope, true
	default:
		return "", false
	}
}

// regexColumnValue extracts the named column's text for =~ comparisons.
// antigen.gene is the only column recognized here but not by
// exactColumnValue; its second return is false when the field is unset so
// an empty pattern can't spuriously match.
func regexColumnValue(column string, entry tcrmodel.ReferenceEntry) (string, bool) {
	switch column {
	case "species":
		return entry.Species, true
	case "gene":
		return entry.Gene, true
	case "antigen.species":
		return entry.AntigenSpecies, true
	case "antigen.epitope":
		return entry.AntigenEpitope, true
	case "antigen.gene":
		if entry.AntigenGene == "" {
			return "", false
		}
		return entry.AntigenGene, true
	default:
		return "", false
	}
}

// exactFilter matches column against value, case-insensitively.
type exactFilter struct {
	column string
	value  string
}

func (f exactFilter) Matches(entry tcrmodel.ReferenceEntry) bool {
	text, ok := exactColumnValue(f.column, entry)
	if !ok {
		return false
	}
	return foldCase.String(text) == foldCase.String(f.value)
}

// regexFilter matches column against a compiled regular expression.
// antigen.gene is the only column the original spec restricts to
// regex-only comparisons.
type regexFilter struct {
	column  string
	pattern *regexp.Regexp
}

func (f regexFilter) Matches(entry tcrmodel.ReferenceEntry) bool {
	text, ok := regexColumnValue(f.column, entry)
	if !ok {
		return false
	}
	return f.pattern.MatchString(text)
}

var (
	regexExprPattern = regexp.MustCompile(`^\s*__([A-Za-z0-9._]+)__\s*=~\s*'([^']*)'\s*$`)
	exactExprPattern = regexp.MustCompile(`^\s*__([A-Za-z0-9._]+)__\s*==\s*'([^']*)'\s*$`)
)

// ParseFilterExpression parses a `__column__ == 'literal'` or
// `__column__ =~ 'regex'` expression into a Filter. Malformed expressions
// and invalid regex patterns are reported as apperr.InputMalformed.
func ParseFilterExpression(expr string) (Filter, error) {
	if m := regexExprPattern.FindStringSubmatch(expr); m != nil {
		pattern, err := regexp.Compile(m[2])
		if err != nil {
			return nil, apperr.Wrap(apperr.InputMalformed, err, "invalid regex in filter expression %q", expr)
		}
		return regexFilter{column: m[1], pattern: pattern}, nil
	}
	if m := exactExprPattern.FindStringSubmatch(expr); m != nil {
		return exactFilter{column: m[1], value: m[2]}, nil
	}
	return nil, apperr.New(apperr.InputMalformed, "invalid filter expression: %s", expr)
}
