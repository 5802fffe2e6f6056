package match

import (
	"strings"

	"github.com/harshil12345000/certifyr-sub001/pkg/records"
)

// ResultType classifies the outcome of a person lookup.
type ResultType string

const (
	ResultExact        ResultType = "exact"
	ResultDisambiguate ResultType = "disambiguate"
	ResultNone         ResultType = "none"
)

// Result holds a resolved lookup. Record is set for ResultExact;
// Matches is set for ResultDisambiguate and preserves dataset order.
type Result struct {
	Type    ResultType
	Record  records.Record
	Matches []records.Record
}

// Resolve searches the organization's record set for the candidate name.
// Matching is a bidirectional case-insensitive substring test: the record
// name may contain the search string, or the search string may contain
// the record name. This is deliberately loose so partial names, nicknames
// and over-qualified queries ("Dr. John Smith Sr.") still land.
//
// Queries shorter than 2 characters never match.
func Resolve(recs []records.Record, candidateName string) Result {
	search := strings.ToLower(strings.TrimSpace(candidateName))
	if len(search) < 2 || len(recs) == 0 {
		return Result{Type: ResultNone}
	}

	var matches []records.Record
	for _, rec := range recs {
		name := strings.ToLower(records.Name(rec))
		if name == "" {
			continue
		}
		if strings.Contains(name, search) || strings.Contains(search, name) {
			matches = append(matches, rec)
		}
	}

	switch len(matches) {
	case 0:
		return Result{Type: ResultNone}
	case 1:
		return Result{Type: ResultExact, Record: matches[0]}
	default:
		return Result{Type: ResultDisambiguate, Matches: matches}
	}
}
