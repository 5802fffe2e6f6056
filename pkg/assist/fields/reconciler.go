package fields

import (
	"strings"
	"unicode"

	"github.com/harshil12345000/certifyr-sub001/pkg/records"
)

// Source identifies where a resolved field value came from.
type Source string

const (
	SourceOrganization Source = "organization"
	SourceRecord       Source = "record"
	SourceCollected    Source = "collected"
	SourceSystem       Source = "system"
)

// FieldInfo is one resolved template field.
type FieldInfo struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Value  string `json:"value"`
	Source Source `json:"source"`
}

// Defaults holds organization-level values. These fields are always
// organization-scoped, never person-scoped, and must never show up in
// the "known information about the person" listing.
type Defaults struct {
	Name                 string
	Address              string
	Place                string
	Email                string
	Phone                string
	SignatoryName        string
	SignatoryDesignation string
}

// Result is the classification of a template's required fields.
//
// Known lists person-visible information only (record and collected
// sources); organization and system values are resolved into Fields but
// deliberately excluded from the listing, otherwise the assistant ends
// up asking about values it already has.
type Result struct {
	Known   []FieldInfo       `json:"known"`
	Missing []string          `json:"missing"`
	Fields  map[string]string `json:"fields"`
	Flagged []string          `json:"flagged,omitempty"`
}

// Ready reports whether every required field is resolved.
func (r Result) Ready() bool {
	return len(r.Missing) == 0
}

// orgFieldKeys maps normalized required-field names to an accessor on
// Defaults. Membership here is what enforces the org/person split.
var orgFieldKeys = map[string]func(Defaults) string{
	"organizationname":     func(d Defaults) string { return d.Name },
	"orgname":              func(d Defaults) string { return d.Name },
	"schoolname":           func(d Defaults) string { return d.Name },
	"companyname":          func(d Defaults) string { return d.Name },
	"institutionname":      func(d Defaults) string { return d.Name },
	"organizationaddress":  func(d Defaults) string { return d.Address },
	"address":              func(d Defaults) string { return d.Address },
	"place":                func(d Defaults) string { return d.Place },
	"email":                func(d Defaults) string { return d.Email },
	"phone":                func(d Defaults) string { return d.Phone },
	"signatoryname":        func(d Defaults) string { return d.SignatoryName },
	"signatorydesignation": func(d Defaults) string { return d.SignatoryDesignation },
}

// Reconcile classifies each required field as satisfied by organization
// defaults, the matched record, a prior collected answer, or missing.
// rec may be nil (no person matched); every lookup then falls through to
// collected answers or missing. The same inputs always produce the same
// classification.
func Reconcile(
	required []string,
	rec records.Record,
	defaults Defaults,
	collected map[string]string,
	issueDate string,
) Result {
	res := Result{
		Fields: make(map[string]string, len(required)),
	}

	for _, field := range required {
		name := strings.TrimSpace(field)
		if name == "" {
			continue
		}

		// Issue date is supplied by the conversation, never the user.
		if isIssueDateField(name) {
			value, ok := NormalizeDate(issueDate)
			if !ok && value != "" {
				res.Flagged = append(res.Flagged, name)
			}
			res.Fields[name] = value
			continue
		}

		// Organization-level fields resolve from defaults only.
		if get, ok := orgFieldKeys[normalizeKey(name)]; ok {
			if value := strings.TrimSpace(get(defaults)); value != "" {
				res.Fields[name] = value
				continue
			}
			res.Missing = append(res.Missing, name)
			continue
		}

		// Matched record, via alias resolution.
		if value := records.Field(rec, name); value != "" {
			value, flagged := normalizeValue(name, value)
			if flagged {
				res.Flagged = append(res.Flagged, name)
			}
			res.Fields[name] = value
			res.Known = append(res.Known, FieldInfo{
				Name:   name,
				Label:  Label(name),
				Value:  value,
				Source: SourceRecord,
			})
			continue
		}

		// Prior collected answer.
		if value := strings.TrimSpace(collected[name]); value != "" {
			value, flagged := normalizeValue(name, value)
			if flagged {
				res.Flagged = append(res.Flagged, name)
			}
			res.Fields[name] = value
			res.Known = append(res.Known, FieldInfo{
				Name:   name,
				Label:  Label(name),
				Value:  value,
				Source: SourceCollected,
			})
			continue
		}

		res.Missing = append(res.Missing, name)
	}

	return res
}

// normalizeValue applies per-field value normalization. The bool result
// is true when a date value could not be parsed; the original value is
// kept so user input is never silently dropped.
func normalizeValue(name, value string) (string, bool) {
	switch {
	case isDateField(name):
		normalized, ok := NormalizeDate(value)
		return normalized, !ok
	case normalizeKey(name) == "gender":
		return normalizeGender(value), false
	case normalizeKey(name) == "persontype":
		return normalizePersonType(value), false
	default:
		return value, false
	}
}

func normalizeGender(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "m", "male":
		return "male"
	case "f", "female":
		return "female"
	case "o", "other":
		return "other"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}

func normalizePersonType(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "student", "pupil":
		return "student"
	case "employee", "staff", "faculty":
		return "employee"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}

// normalizeKey flattens a field name for table lookups:
// "Signatory_Name" and "signatoryName" both become "signatoryname".
func normalizeKey(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r == '_' || r == ' ' || r == '-' {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// minor words kept lowercase inside labels
var labelMinorWords = map[string]bool{
	"of": true, "the": true, "a": true, "an": true,
	"and": true, "in": true, "for": true, "to": true,
}

// Label renders a canonical field name for display:
// "dateOfBirth" -> "Date of Birth", "roll_number" -> "Roll Number".
func Label(name string) string {
	words := splitWords(name)
	for i, w := range words {
		lower := strings.ToLower(w)
		if i > 0 && labelMinorWords[lower] {
			words[i] = lower
			continue
		}
		words[i] = strings.ToUpper(lower[:1]) + lower[1:]
	}
	return strings.Join(words, " ")
}

func splitWords(name string) []string {
	var words []string
	var current []rune
	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = nil
		}
	}
	for _, r := range name {
		switch {
		case r == '_' || r == ' ' || r == '-':
			flush()
		case unicode.IsUpper(r):
			flush()
			current = append(current, r)
		default:
			current = append(current, r)
		}
	}
	flush()
	if len(words) == 0 {
		return []string{name}
	}
	return words
}
