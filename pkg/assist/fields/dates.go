package fields

import (
	"strings"
	"time"
)

// Output format for every date-valued field.
const dateLayout = "02/01/2006"

// Accepted input layouts, most common upload formats first.
// DD/MM/YYYY is listed before the US layout so ambiguous values like
// 04/05/1990 stay day-first.
var dateLayouts = []string{
	"02/01/2006",
	"2006-01-02",
	"2006/01/02",
	"02-01-2006",
	"2 January 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	time.RFC3339,
	"01/02/2006",
}

// NormalizeDate converts a raw date value to DD/MM/YYYY.
// Returns (original, false) when no layout parses so the caller can keep
// the user-supplied value and flag it instead of dropping it.
func NormalizeDate(raw string) (string, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(dateLayout), true
		}
	}
	return value, false
}

// isDateField reports whether a canonical field name is date-valued.
func isDateField(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "date") || lower == "dob" || lower == "doj"
}

// isIssueDateField reports whether the field is the document issue date,
// which is always resolved from the conversation's issue date and never
// asked of the user.
func isIssueDateField(name string) bool {
	lower := strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(name, "_", ""), " ", ""))
	switch lower {
	case "issuedate", "dateofissue", "currentdate", "issuedon":
		return true
	}
	return false
}
