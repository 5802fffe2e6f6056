package extract

import (
	"testing"
)

func TestExtractRejectsAnswerLikeMessages(t *testing.T) {
	tests := []string{
		"passport",
		"Passport renewal",
		"PASSPORT",
		"visa application",
		"bank account opening",
		"for higher studies processing",
		"the purpose is higher education",
		"purpose is internship",
		"it's for my visa",
		"i need it for a loan",
		"yes",
		"Yes",
		"ok",
		"sure",
		"thanks",
		"correct",
		"done.",
	}

	for _, msg := range tests {
		t.Run(msg, func(t *testing.T) {
			if got := Extract(msg, true); got != "" {
				t.Errorf("Extract(%q) = %q, want empty", msg, got)
			}
		})
	}
}

func TestExtractLookupPhrasings(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{
			name:    "for phrase",
			message: "Create a bonafide certificate for John Smith",
			want:    "John Smith",
		},
		{
			name:    "of phrase",
			message: "experience letter of Priya Sharma please",
			want:    "Priya Sharma",
		},
		{
			name:    "document keyword then name",
			message: "certificate for Anil Kumar",
			want:    "Anil Kumar",
		},
		{
			name:    "generate verb",
			message: "generate an NOC for Maria Gonzalez",
			want:    "Maria Gonzalez",
		},
		{
			name:    "disambiguation follow-up",
			message: "I'm referring to John Doe",
			want:    "John Doe",
		},
		{
			name:    "i mean follow-up",
			message: "i mean Asha Rao",
			want:    "Asha Rao",
		},
		{
			name:    "bare name message",
			message: "Asha Rao",
			want:    "Asha Rao",
		},
		{
			name:    "single word name",
			message: "Asha",
			want:    "Asha",
		},
		{
			name:    "short message with embedded name",
			message: "what about Ravi Verma then",
			want:    "Ravi Verma",
		},
		{
			name:    "create with partial name",
			message: "Create bonafide for Asha",
			want:    "Asha",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extract(tt.message, true); got != tt.want {
				t.Errorf("Extract(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestExtractNoMatch(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{"long sentence without name phrasing", "i would like to understand how this whole document system works here"},
		{"stoplisted capitals only", "The Certificate Document"},
		{"empty", ""},
		{"whitespace", "   "},
		{"lowercase chatter", "can you help me with something"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extract(tt.message, true); got != "" {
				t.Errorf("Extract(%q) = %q, want empty", tt.message, got)
			}
		})
	}
}

func TestExtractWithoutRecords(t *testing.T) {
	// No dataset means lookup is meaningless; even perfect name
	// phrasings must return empty.
	if got := Extract("Create a certificate for John Smith", false); got != "" {
		t.Errorf("Extract with hasRecords=false = %q, want empty", got)
	}
}
