package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Demo Institute", "demo-institute"},
		{"  St. Mary's College  ", "st-mary-s-college"},
		{"ACME Corp.", "acme-corp"},
		{"a   b", "a-b"},
		{"--weird--input--", "weird-input"},
		{"2026 Batch", "2026-batch"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, slugify(c.in), "slugify(%q)", c.in)
	}
}
