package records

import (
	"testing"
)

func TestName(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   string
	}{
		{
			name:   "plain name key",
			record: Record{"name": "John Smith"},
			want:   "John Smith",
		},
		{
			name:   "camelCase fullName",
			record: Record{"fullName": "Asha Rao"},
			want:   "Asha Rao",
		},
		{
			name:   "spaced title-case key",
			record: Record{"Full Name": "Priya Sharma"},
			want:   "Priya Sharma",
		},
		{
			name:   "value is trimmed",
			record: Record{"name": "  John Smith  "},
			want:   "John Smith",
		},
		{
			name:   "first alias wins over later aliases",
			record: Record{"name": "First Alias", "fullName": "Second Alias"},
			want:   "First Alias",
		},
		{
			name:   "empty string falls through to next alias",
			record: Record{"name": "   ", "fullName": "Fallback Value"},
			want:   "Fallback Value",
		},
		{
			name:   "no alias present",
			record: Record{"salary": 50000},
			want:   "",
		},
		{
			name:   "nil value tolerated",
			record: Record{"name": nil, "fullName": "Safe Value"},
			want:   "Safe Value",
		},
		{
			name:   "non-string value tolerated",
			record: Record{"name": []string{"not", "a", "name"}},
			want:   "",
		},
		{
			name:   "nil record",
			record: nil,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Name(tt.record)
			if got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestID(t *testing.T) {
	tests := []struct {
		name   string
		record Record
		want   string
	}{
		{"string id", Record{"employeeId": "EMP-042"}, "EMP-042"},
		{"numeric id from JSON", Record{"id": float64(10234)}, "10234"},
		{"int id", Record{"studentId": 77}, "77"},
		{"roll number alias", Record{"roll_no": "21CS104"}, "21CS104"},
		{"missing", Record{"name": "John"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ID(tt.record); got != tt.want {
				t.Errorf("ID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestField(t *testing.T) {
	rec := Record{
		"dob":        "1995-03-15",
		"sex":        "F",
		"Department": "IT",
		"customTag":  "blue",
	}

	if got := Field(rec, FieldDateOfBirth); got != "1995-03-15" {
		t.Errorf("Field(dateOfBirth) = %q, want %q", got, "1995-03-15")
	}
	if got := Field(rec, FieldGender); got != "F" {
		t.Errorf("Field(gender) = %q, want %q", got, "F")
	}
	if got := Field(rec, FieldDepartment); got != "IT" {
		t.Errorf("Field(department) = %q, want %q", got, "IT")
	}
	// Unknown canonical names fall back to direct key lookup
	if got := Field(rec, "customTag"); got != "blue" {
		t.Errorf("Field(customTag) = %q, want %q", got, "blue")
	}
}

func TestSummarize(t *testing.T) {
	rec := Record{
		"fullName":   "Asha Rao",
		"employeeId": "EMP-7",
		"dept":       "Engineering",
	}
	got := Summarize(rec)
	if got.Name != "Asha Rao" || got.ID != "EMP-7" || got.Department != "Engineering" {
		t.Errorf("Summarize() = %+v", got)
	}
}
