package similarity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty string", "", ""},
		{"Punctuation and extra spaces", "  Is this   recorded???  ", "is this recorded"},
		{"Punctuation between words", "Hello,World", "hello world"},
		{"Full width characters are folded", "ＡＢＣ１２３", "abc123"},
		{"Ligature is decomposed", "ﬁle", "file"},
		{"Non breaking space", "a\u00A0b", "a b"},
		{"Underscore is a word character", "snake_case-name", "snake_case name"},
		{"Tabs and newlines collapse", "Tab\tand\nnewline", "tab and newline"},
		{"Hangul is kept", "질문 있어요?", "질문 있어요"},
		{"Only punctuation", "?!...", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req.Equal(tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_IsIdempotent(t *testing.T) {
	req := require.New(t)
	for _, s := range []string{"Is this recorded???", "ＡＢＣ  １２３", "Un été, avec un badger!"} {
		once := Normalize(s)
		req.Equal(once, Normalize(once))
	}
}
