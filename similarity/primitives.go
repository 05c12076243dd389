package similarity

import (
	"fmt"
	"math"
	"question-lab/errors"
)

// Jaccard returns |A∩B| / |A∪B|. Two empty sets are identical.
func Jaccard(a, b Shingles) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	small, big := a, b
	if len(small) > len(big) {
		small, big = big, small
	}
	inter := 0
	for s := range small {
		if _, ok := big[s]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0.0
	}
	return float64(inter) / float64(union)
}

// Dot is the cosine similarity of two dense unit-norm vectors.
// Only embeddings produced by an embedding.Provider may be passed here.
func Dot(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: vector lengths %d and %d differ", errors.ErrCalculationFailure, len(a), len(b))
	}
	var dot float64
	for i := range a {
		dot += a[i] * b[i]
	}
	if math.IsNaN(dot) || math.IsInf(dot, 0) {
		return 0, fmt.Errorf("%w: non finite dot product", errors.ErrCalculationFailure)
	}
	return dot, nil
}

// CosineDense divides the dot product by both Euclidean norms. Zero vectors score 0.
func CosineDense(a, b []float64) (float64, error) {
	dot, err := Dot(a, b)
	if err != nil {
		return 0, err
	}
	na, nb := L2Norm(a), L2Norm(b)
	if na == 0 || nb == 0 {
		return 0, nil
	}
	return dot / (na * nb), nil
}

// CosineSparse is the cosine similarity of two sparse term-weight vectors.
func CosineSparse(a, b map[string]float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	small, big := a, b
	if len(small) > len(big) {
		small, big = big, small
	}
	var dot float64
	for t, w := range small {
		dot += w * big[t]
	}
	na, nb := sparseNorm(a), sparseNorm(b)
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (na * nb)
}

func L2Norm(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// NormalizeL2 scales v to unit length in place. Zero vectors are left untouched.
func NormalizeL2(v []float64) {
	n := L2Norm(v)
	if n == 0 {
		return
	}
	for i := range v {
		v[i] /= n
	}
}

func sparseNorm(v map[string]float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}
	return math.Sqrt(sum)
}
