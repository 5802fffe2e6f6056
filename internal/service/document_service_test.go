package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderBodySubstitutesFields(t *testing.T) {
	body := "Certified that {{name}} of {{department}} studied here."
	out := renderBody(body, map[string]string{
		"name":       "Ravi Kumar",
		"department": "Computer Science",
	})

	assert.Equal(t, "Certified that Ravi Kumar of Computer Science studied here.", out)
}

func TestRenderBodyBlanksUnresolvedPlaceholders(t *testing.T) {
	body := "Issued to {{name}} on {{issue_date}}."
	out := renderBody(body, map[string]string{"name": "Anita Sharma"})

	assert.Equal(t, "Issued to Anita Sharma on .", out)
	assert.NotContains(t, out, "{{")
}

func TestRenderBodyIgnoresExtraFields(t *testing.T) {
	out := renderBody("Hello {{name}}", map[string]string{
		"name":   "X",
		"gender": "Male",
	})

	assert.Equal(t, "Hello X", out)
}

func TestGenerateVerificationCodeFormat(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := generateVerificationCode()
		assert.NoError(t, err)
		assert.Len(t, code, 11)
		assert.Equal(t, byte('-'), code[5])

		for _, part := range strings.Split(code, "-") {
			for _, c := range part {
				assert.Contains(t, codeAlphabet, string(c))
			}
		}

		// Ambiguous characters are excluded from the alphabet
		assert.NotContains(t, code, "O")
		assert.NotContains(t, code, "0")
		assert.NotContains(t, code, "I")
		assert.NotContains(t, code, "1")

		seen[code] = true
	}
	assert.Equal(t, 50, len(seen), "codes should not repeat in practice")
}

func TestToRecordPreservesRawKeys(t *testing.T) {
	r := toRecord(map[string]string{"Student Name": "Ravi Kumar", "Roll No": "CS-101"})

	assert.Equal(t, "Ravi Kumar", r["Student Name"])
	assert.Equal(t, "CS-101", r["Roll No"])
}
