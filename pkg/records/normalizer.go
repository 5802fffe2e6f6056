package records

// Name extracts the canonical person name from a record.
// Returns "" if no name alias carries a value.
func Name(r Record) string {
	return Lookup(r, NameAliases)
}

// ID extracts the canonical person identifier from a record.
func ID(r Record) string {
	return Lookup(r, IDAliases)
}

// Department extracts the canonical department from a record.
func Department(r Record) string {
	return Lookup(r, DepartmentAliases)
}

// Field extracts the value for any canonical field via its alias table.
// Unknown canonical names fall back to a direct key lookup, so templates
// can require custom fields the catalog has no aliases for.
func Field(r Record, canonical string) string {
	if aliases := Aliases(canonical); aliases != nil {
		return Lookup(r, aliases)
	}
	return Lookup(r, []string{canonical})
}

// Summarize builds the disambiguation display shape for a record.
func Summarize(r Record) Summary {
	return Summary{
		Name:       Name(r),
		ID:         ID(r),
		Department: Department(r),
	}
}
