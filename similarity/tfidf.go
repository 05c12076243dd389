package similarity

import "math"

// IDF computes smoothed inverse document frequencies over a corpus of token lists:
// idf = log((N+1)/(df+1)) + 1.
func IDF(corpus [][]string) map[string]float64 {
	df := make(map[string]int)
	for _, tokens := range corpus {
		seen := make(map[string]struct{}, len(tokens))
		for _, t := range tokens {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
		}
	}
	n := float64(len(corpus))
	idf := make(map[string]float64, len(df))
	for t, d := range df {
		idf[t] = math.Log((n+1)/(float64(d)+1)) + 1.0
	}
	return idf
}

// TFIDF weights raw term counts by idf. Tokens missing from idf weigh 1.
func TFIDF(tokens []string, idf map[string]float64) map[string]float64 {
	tf := make(map[string]int, len(tokens))
	for _, t := range tokens {
		tf[t]++
	}
	out := make(map[string]float64, len(tf))
	for t, count := range tf {
		w, ok := idf[t]
		if !ok {
			w = 1.0
		}
		out[t] = float64(count) * w
	}
	return out
}
