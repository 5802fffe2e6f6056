package records

import (
	"strconv"
	"strings"
)

// Record is a single uploaded employee/student row. Key names vary per
// upload (e.g. "name", "fullName", "Full Name"), values may be any scalar.
// The resolution pipeline never mutates a Record.
type Record map[string]interface{}

// Summary is the compact shape shown when the user has to pick between
// multiple matching records.
type Summary struct {
	Name       string `json:"name"`
	ID         string `json:"id"`
	Department string `json:"department"`
}

// stringValue coerces a raw cell value to a trimmed string.
// Missing, nil and non-scalar values yield "".
func stringValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		// JSON numbers decode as float64; ids like 10234 should survive
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

// Lookup returns the first non-empty value among the given key aliases,
// in alias order. Returns "" when no alias is present.
func Lookup(r Record, aliases []string) string {
	if r == nil {
		return ""
	}
	for _, alias := range aliases {
		if raw, ok := r[alias]; ok {
			if s := stringValue(raw); s != "" {
				return s
			}
		}
	}
	return ""
}
