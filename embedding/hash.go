package embedding

import (
	"context"
	"hash/fnv"
	"question-lab/similarity"
	"strings"
)

const defaultHashDimension = 256

// HashEmbedder maps words and character trigrams to a fixed-size vector with the hashing trick.
// It needs no model and is fully deterministic.
type HashEmbedder struct {
	size int
}

func NewHashEmbedder(size int) *HashEmbedder {
	if size <= 0 {
		size = defaultHashDimension
	}
	return &HashEmbedder{size: size}
}

func (h *HashEmbedder) Name() string { return KindHash }

func (h *HashEmbedder) Dimension() int { return h.size }

func (h *HashEmbedder) Embed(ctx context.Context, normalizedText string) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	vec := make([]float64, h.size)
	for _, w := range strings.Fields(normalizedText) {
		h.add(vec, "w:"+w)
	}
	for g := range similarity.CharNgrams(normalizedText, 3) {
		h.add(vec, "c:"+g)
	}
	similarity.NormalizeL2(vec)
	return vec, nil
}

// add uses the top bit of the hash as the sign so that collisions tend to cancel out.
func (h *HashEmbedder) add(vec []float64, feature string) {
	f := fnv.New64a()
	_, _ = f.Write([]byte(feature))
	sum := f.Sum64()
	idx := int(sum % uint64(h.size))
	if sum>>63 == 1 {
		vec[idx] -= 1.0
	} else {
		vec[idx] += 1.0
	}
}
