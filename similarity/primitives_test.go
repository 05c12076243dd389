package similarity

import (
	"math"
	"question-lab/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func set(items ...string) Shingles {
	s := make(Shingles, len(items))
	for _, i := range items {
		s[i] = struct{}{}
	}
	return s
}

func TestJaccard(t *testing.T) {
	req := require.New(t)

	req.Equal(1.0, Jaccard(set(), set()))
	req.Equal(1.0, Jaccard(set("a"), set("a")))
	req.Equal(0.0, Jaccard(set("a"), set("b")))
	req.Equal(0.0, Jaccard(set(), set("b")))
	req.InDelta(1.0/3.0, Jaccard(set("a", "b"), set("b", "c")), 1e-9)
	req.Equal(Jaccard(set("a", "b", "c"), set("c")), Jaccard(set("c"), set("a", "b", "c")))
}

func TestDot(t *testing.T) {
	req := require.New(t)

	got, err := Dot([]float64{0.6, 0.8}, []float64{0.6, 0.8})
	req.NoError(err)
	req.InDelta(1.0, got, 1e-9)

	got, err = Dot([]float64{1, 0}, []float64{0, 1})
	req.NoError(err)
	req.Equal(0.0, got)

	_, err = Dot([]float64{1, 0}, []float64{1})
	req.ErrorIs(err, errors.ErrCalculationFailure)

	_, err = Dot([]float64{math.NaN()}, []float64{1})
	req.ErrorIs(err, errors.ErrCalculationFailure)
}

func TestCosineDense(t *testing.T) {
	req := require.New(t)

	got, err := CosineDense([]float64{1, 0}, []float64{2, 0})
	req.NoError(err)
	req.InDelta(1.0, got, 1e-9)

	got, err = CosineDense([]float64{0, 0}, []float64{2, 0})
	req.NoError(err)
	req.Equal(0.0, got)
}

func TestCosineSparse(t *testing.T) {
	req := require.New(t)

	req.Equal(0.0, CosineSparse(nil, map[string]float64{"a": 1}))
	req.InDelta(1.0, CosineSparse(map[string]float64{"a": 1, "b": 1}, map[string]float64{"a": 2, "b": 2}), 1e-9)
	req.Equal(0.0, CosineSparse(map[string]float64{"a": 1}, map[string]float64{"b": 1}))
}

func TestNormalizeL2(t *testing.T) {
	req := require.New(t)

	v := []float64{3, 4}
	NormalizeL2(v)
	req.InDeltaSlice([]float64{0.6, 0.8}, v, 1e-9)

	zero := []float64{0, 0}
	NormalizeL2(zero)
	req.Equal([]float64{0, 0}, zero)
}
