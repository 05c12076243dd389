package similarity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIDF(t *testing.T) {
	req := require.New(t)

	idf := IDF([][]string{{"a", "b", "b"}, {"a"}})
	req.InDelta(1.0, idf["a"], 1e-9)
	req.InDelta(math.Log(3.0/2.0)+1, idf["b"], 1e-9)
	req.Len(idf, 2)
}

func TestTFIDF(t *testing.T) {
	req := require.New(t)

	idf := map[string]float64{"a": 1.0, "b": 2.0}
	got := TFIDF([]string{"a", "a", "b", "c"}, idf)

	req.InDelta(2.0, got["a"], 1e-9)
	req.InDelta(2.0, got["b"], 1e-9)
	req.InDelta(1.0, got["c"], 1e-9)
}

func TestTFIDF_LexicalRanking(t *testing.T) {
	req := require.New(t)

	docs := []string{"When is the deadline?", "Is the deadline tomorrow?", "Will slides be shared?"}
	corpus := make([][]string, len(docs))
	for i, d := range docs {
		corpus[i] = CharNgramsMulti(d, 2, 4)
	}
	idf := IDF(corpus)
	query := TFIDF(CharNgramsMulti("deadline", 2, 4), idf)

	close1 := CosineSparse(query, TFIDF(corpus[0], idf))
	far := CosineSparse(query, TFIDF(corpus[2], idf))
	req.Greater(close1, far)
}
