package mimetypes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		detected string
		expected MIME
		want     bool
	}{
		{"Plain text with charset", "text/plain; charset=utf-8", TextPlain, true},
		{"CSV", "text/csv", TextCSV, true},
		{"JSON", "application/json", ApplicationJSON, true},
		{"JSON with charset", "application/json; charset=utf-8", ApplicationJSON, true},
		{"Mismatch", "text/plain; charset=utf-8", ApplicationJSON, false},
		{"Invalid MIME", "not a mime", TextPlain, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Matches(tt.detected, tt.expected)
			require.Equal(t, tt.want, ok)
		})
	}
}

func TestDetectImport(t *testing.T) {
	req := require.New(t)

	format, _ := DetectImport([]byte(`[{"id":"q1","content":"hello"}]`))
	req.Equal(ApplicationJSON, format)

	format, _ = DetectImport([]byte("id,content\nq1,hello\nq2,world\n"))
	req.Equal(TextCSV, format)

	format, detected := DetectImport([]byte("hello world"))
	req.Equal(Unknown, format)
	req.Contains(detected, "text/plain")
}
