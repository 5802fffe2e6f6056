package fields

import (
	"testing"

	"github.com/harshil12345000/certifyr-sub001/pkg/records"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"15/08/2002", "15/08/2002", true},
		{"2002-08-15", "15/08/2002", true},
		{"2002/08/15", "15/08/2002", true},
		{"15-08-2002", "15/08/2002", true},
		{"15 August 2002", "15/08/2002", true},
		{"Aug 15, 2002", "15/08/2002", true},
		{"  15/08/2002  ", "15/08/2002", true},
		{"not a date", "not a date", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := NormalizeDate(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("NormalizeDate(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestReconcileSources(t *testing.T) {
	rec := records.Record{
		"fullName":    "Asha Rao",
		"id":          "STU-0042",
		"department":  "Physics",
		"dateOfBirth": "2002-08-15",
	}
	defaults := Defaults{
		Name:          "Riverside College",
		Address:       "12 Lake Road",
		SignatoryName: "Dr. K. Menon",
	}
	collected := map[string]string{"purpose": "passport renewal"}

	required := []string{
		"fullName", "id", "dateOfBirth", "purpose",
		"organizationName", "signatoryName", "issueDate", "course",
	}
	res := Reconcile(required, rec, defaults, collected, "30/08/2026")

	wantFields := map[string]string{
		"fullName":         "Asha Rao",
		"id":               "STU-0042",
		"dateOfBirth":      "15/08/2002",
		"purpose":          "passport renewal",
		"organizationName": "Riverside College",
		"signatoryName":    "Dr. K. Menon",
		"issueDate":        "30/08/2026",
	}
	for name, want := range wantFields {
		if got := res.Fields[name]; got != want {
			t.Errorf("Fields[%q] = %q, want %q", name, got, want)
		}
	}
	if len(res.Missing) != 1 || res.Missing[0] != "course" {
		t.Errorf("Missing = %v, want [course]", res.Missing)
	}

	// Organization and issue-date values never show up as known
	// information about the person.
	for _, info := range res.Known {
		if info.Source == SourceOrganization || info.Source == SourceSystem {
			t.Errorf("Known contains %s-sourced field %q", info.Source, info.Name)
		}
		if info.Name == "organizationName" || info.Name == "signatoryName" || info.Name == "issueDate" {
			t.Errorf("Known contains org/system field %q", info.Name)
		}
	}

	sources := map[string]Source{}
	for _, info := range res.Known {
		sources[info.Name] = info.Source
	}
	if sources["fullName"] != SourceRecord {
		t.Errorf("fullName source = %q, want record", sources["fullName"])
	}
	if sources["purpose"] != SourceCollected {
		t.Errorf("purpose source = %q, want collected", sources["purpose"])
	}
}

func TestReconcileIdempotent(t *testing.T) {
	rec := records.Record{"fullName": "John Doe", "dateOfBirth": "01/02/2000"}
	required := []string{"fullName", "dateOfBirth", "purpose"}

	first := Reconcile(required, rec, Defaults{}, nil, "30/08/2026")
	second := Reconcile(required, rec, Defaults{}, nil, "30/08/2026")

	if len(first.Known) != len(second.Known) {
		t.Fatalf("Known length differs across runs: %d vs %d", len(first.Known), len(second.Known))
	}
	for i := range first.Known {
		if first.Known[i] != second.Known[i] {
			t.Errorf("Known[%d] differs: %+v vs %+v", i, first.Known[i], second.Known[i])
		}
	}
	if first.Fields["dateOfBirth"] != "01/02/2000" {
		t.Errorf("already-normalized date changed: %q", first.Fields["dateOfBirth"])
	}
}

func TestReconcileNilRecord(t *testing.T) {
	res := Reconcile([]string{"fullName", "purpose"}, nil, Defaults{}, map[string]string{"purpose": "visa"}, "")
	if len(res.Missing) != 1 || res.Missing[0] != "fullName" {
		t.Errorf("Missing = %v, want [fullName]", res.Missing)
	}
	if res.Fields["purpose"] != "visa" {
		t.Errorf("Fields[purpose] = %q", res.Fields["purpose"])
	}
}

func TestReconcileUnparseableDateFlagged(t *testing.T) {
	rec := records.Record{"dateOfBirth": "sometime in 2002"}
	res := Reconcile([]string{"dateOfBirth"}, rec, Defaults{}, nil, "")
	if res.Fields["dateOfBirth"] != "sometime in 2002" {
		t.Errorf("unparseable date value not preserved: %q", res.Fields["dateOfBirth"])
	}
	if len(res.Flagged) != 1 || res.Flagged[0] != "dateOfBirth" {
		t.Errorf("Flagged = %v, want [dateOfBirth]", res.Flagged)
	}
}

func TestReconcileUnparseableIssueDateFlagged(t *testing.T) {
	res := Reconcile([]string{"issueDate"}, nil, Defaults{}, nil, "sometime next week")
	if res.Fields["issueDate"] != "sometime next week" {
		t.Errorf("unparseable issue date not preserved: %q", res.Fields["issueDate"])
	}
	if len(res.Flagged) != 1 || res.Flagged[0] != "issueDate" {
		t.Errorf("Flagged = %v, want [issueDate]", res.Flagged)
	}

	// An empty issue date is just absent, not malformed.
	res = Reconcile([]string{"issueDate"}, nil, Defaults{}, nil, "")
	if len(res.Flagged) != 0 {
		t.Errorf("empty issue date flagged: %v", res.Flagged)
	}
}

func TestReconcileNormalization(t *testing.T) {
	rec := records.Record{"gender": "M", "personType": "Staff"}
	res := Reconcile([]string{"gender", "personType"}, rec, Defaults{}, nil, "")
	if res.Fields["gender"] != "male" {
		t.Errorf("gender = %q, want male", res.Fields["gender"])
	}
	if res.Fields["personType"] != "employee" {
		t.Errorf("personType = %q, want employee", res.Fields["personType"])
	}
}

func TestLabel(t *testing.T) {
	tests := []struct{ in, want string }{
		{"dateOfBirth", "Date of Birth"},
		{"fullName", "Full Name"},
		{"roll_number", "Roll Number"},
		{"purpose", "Purpose"},
		{"fatherName", "Father Name"},
	}
	for _, tt := range tests {
		if got := Label(tt.in); got != tt.want {
			t.Errorf("Label(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
