package similarity

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFingerprint_Empty(t *testing.T) {
	req := require.New(t)
	req.Equal(uint64(0), Fingerprint(slices.Values([]string(nil))))
	req.Equal(uint64(0), Fingerprint(maps.Keys(CharNgrams("", 2))))
}

func TestFingerprint_SingleFeatureIsItsHash(t *testing.T) {
	req := require.New(t)
	req.Equal(mix64("ab"), Fingerprint(slices.Values([]string{"ab"})))
}

func TestFingerprint_MajorityVote(t *testing.T) {
	req := require.New(t)
	// Every bit follows the feature counted twice.
	req.Equal(mix64("ab"), Fingerprint(slices.Values([]string{"ab", "ab", "cd"})))
}

func TestFingerprint_Stability(t *testing.T) {
	req := require.New(t)
	shingles := CharNgrams(Normalize("What is the deadline?"), 2)

	first := Fingerprint(maps.Keys(shingles))
	second := Fingerprint(slices.Values(shingles.Sorted()))

	req.Equal(first, second)
	req.Equal(0, Hamming(first, second))
}

func TestHamming(t *testing.T) {
	req := require.New(t)

	a := Fingerprint(maps.Keys(CharNgrams("is this recorded", 2)))
	b := Fingerprint(maps.Keys(CharNgrams("when is the deadline", 2)))

	req.Equal(0, Hamming(a, a))
	req.Equal(Hamming(a, b), Hamming(b, a))
	req.Equal(64, Hamming(0, ^uint64(0)))
	req.Equal(1, Hamming(0b1000, 0))
}

func TestBucket(t *testing.T) {
	req := require.New(t)

	req.Equal(uint64(1)<<13, Bucket(uint64(1)<<63, 14))
	req.Equal(uint64(0x3FFF), Bucket(^uint64(0), 14))
	req.Equal(uint64(0), Bucket(^uint64(0), 0))
	req.Equal(uint64(42), Bucket(42, 64))
}
