package similarity

import (
	"maps"
	"slices"
	"strings"
)

// Shingles is a set of character n-grams.
type Shingles map[string]struct{}

// Sorted returns the shingles in lexical order.
func (s Shingles) Sorted() []string {
	return slices.Sorted(maps.Keys(s))
}

// CharNgrams returns the set of contiguous n-rune substrings of text once spaces are removed.
// A text shorter than n yields itself as a single shingle, an empty text yields an empty set.
func CharNgrams(text string, n int) Shingles {
	if n < 1 {
		n = 1
	}
	runes := []rune(strings.ReplaceAll(text, " ", ""))
	out := make(Shingles)
	if len(runes) < n {
		if len(runes) > 0 {
			out[string(runes)] = struct{}{}
		}
		return out
	}
	for i := 0; i+n <= len(runes); i++ {
		out[string(runes[i:i+n])] = struct{}{}
	}
	return out
}

// CharNgramsMulti normalizes text and lists every n-gram for n in [minN, maxN].
// Duplicates are kept: the result feeds term-frequency weighting.
func CharNgramsMulti(text string, minN, maxN int) []string {
	runes := []rune(strings.ReplaceAll(Normalize(text), " ", ""))
	if len(runes) == 0 {
		return nil
	}
	if minN < 1 {
		minN = 1
	}
	var out []string
	for n := minN; n <= maxN; n++ {
		for i := 0; i+n <= len(runes); i++ {
			out = append(out, string(runes[i:i+n]))
		}
	}
	return out
}
