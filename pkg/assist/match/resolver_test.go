package match

import (
	"testing"

	"github.com/harshil12345000/certifyr-sub001/pkg/records"
)

func TestResolveCardinality(t *testing.T) {
	recs := []records.Record{
		{"name": "John Smith"},
		{"name": "John Doe"},
	}

	t.Run("two matches disambiguate", func(t *testing.T) {
		res := Resolve(recs, "John")
		if res.Type != ResultDisambiguate {
			t.Fatalf("Type = %v, want disambiguate", res.Type)
		}
		if len(res.Matches) != 2 {
			t.Fatalf("len(Matches) = %d, want 2", len(res.Matches))
		}
		// dataset order preserved
		if records.Name(res.Matches[0]) != "John Smith" || records.Name(res.Matches[1]) != "John Doe" {
			t.Errorf("Matches out of dataset order: %v", res.Matches)
		}
	})

	t.Run("single match exact", func(t *testing.T) {
		res := Resolve(recs, "John Smith")
		if res.Type != ResultExact {
			t.Fatalf("Type = %v, want exact", res.Type)
		}
		if records.Name(res.Record) != "John Smith" {
			t.Errorf("Record = %v", res.Record)
		}
	})

	t.Run("no match", func(t *testing.T) {
		res := Resolve(recs, "Jane")
		if res.Type != ResultNone {
			t.Fatalf("Type = %v, want none", res.Type)
		}
	})
}

func TestResolveBidirectionalSubstring(t *testing.T) {
	recs := []records.Record{
		{"fullName": "Asha Rao"},
	}

	// partial query contained in record name
	if res := Resolve(recs, "Asha"); res.Type != ResultExact {
		t.Errorf("partial query: Type = %v, want exact", res.Type)
	}

	// over-qualified query containing the record name
	if res := Resolve(recs, "Mrs. Asha Rao PhD"); res.Type != ResultExact {
		t.Errorf("over-qualified query: Type = %v, want exact", res.Type)
	}

	// case-insensitive
	if res := Resolve(recs, "asha rao"); res.Type != ResultExact {
		t.Errorf("lowercase query: Type = %v, want exact", res.Type)
	}
}

func TestResolveGuards(t *testing.T) {
	recs := []records.Record{{"name": "John Smith"}}

	if res := Resolve(recs, ""); res.Type != ResultNone {
		t.Errorf("empty query: Type = %v, want none", res.Type)
	}
	if res := Resolve(recs, " J "); res.Type != ResultNone {
		t.Errorf("one-char query: Type = %v, want none", res.Type)
	}
	if res := Resolve(nil, "John"); res.Type != ResultNone {
		t.Errorf("empty dataset: Type = %v, want none", res.Type)
	}
}

func TestResolveSkipsNamelessRecords(t *testing.T) {
	recs := []records.Record{
		{"salary": 100},
		{"name": "John Smith"},
	}
	res := Resolve(recs, "John")
	if res.Type != ResultExact {
		t.Fatalf("Type = %v, want exact", res.Type)
	}
}
