package note

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrontmatter(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected map[string]string
	}{
		{
			name:     "scalar fields",
			content:  "---\nean: 9780140449136\nstatus: reading\n---\nBody.",
			expected: map[string]string{"ean": "9780140449136", "status": "reading"},
		},
		{
			name:     "quoted string value",
			content:  "---\ntitle: \"Republic\"\n---\nBody.",
			expected: map[string]string{"title": "Republic"},
		},
		{
			name:     "no frontmatter",
			content:  "Just a body.",
			expected: map[string]string{},
		},
		{
			name:     "unclosed block",
			content:  "---\nean: 123\nno closing line",
			expected: map[string]string{},
		},
		{
			name:     "empty block",
			content:  "---\n---\nBody.",
			expected: map[string]string{},
		},
		{
			name:     "unparseable yaml",
			content:  "---\n: : :\n---\nBody.",
			expected: map[string]string{},
		},
		{
			name:     "null value",
			content:  "---\nean:\n---\nBody.",
			expected: map[string]string{"ean": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Frontmatter(tt.content))
		})
	}
}

func TestFrontmatterNumericIdentifier(t *testing.T) {
	// YAML parses a bare EAN as an integer; the flat map must still expose it
	// as its decimal string form.
	fields := Frontmatter("---\nean: 9780140449136\n---\n")
	assert.Equal(t, "9780140449136", fields["ean"])
}
