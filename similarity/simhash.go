package similarity

import (
	"iter"
	"math/bits"
)

const fingerprintBits = 64

const (
	mixSeed = 0xC70F6907
	mixMul  = 0x5BD1E9955BD1E995
)

// mix64 is a murmur-style multiplicative hash with a 47-bit avalanche shift.
func mix64(s string) uint64 {
	h := uint64(mixSeed)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= mixMul
		h ^= h >> 47
	}
	return h
}

// Fingerprint computes the 64-bit SimHash of a feature set.
// Texts sharing many features end up with fingerprints a few bits apart.
// An empty feature sequence yields 0.
func Fingerprint(features iter.Seq[string]) uint64 {
	var acc [fingerprintBits]int
	seen := false
	for f := range features {
		seen = true
		h := mix64(f)
		for i := 0; i < fingerprintBits; i++ {
			if h>>i&1 == 1 {
				acc[i]++
			} else {
				acc[i]--
			}
		}
	}
	if !seen {
		return 0
	}
	var out uint64
	for i, v := range acc {
		if v > 0 {
			out |= 1 << i
		}
	}
	return out
}

// Hamming returns the number of differing bits, in [0, 64].
func Hamming(a, b uint64) int {
	return bits.OnesCount64(a ^ b)
}

// Bucket keeps the top prefixBits bits of a fingerprint.
func Bucket(fingerprint uint64, prefixBits int) uint64 {
	if prefixBits <= 0 {
		return 0
	}
	if prefixBits >= fingerprintBits {
		return fingerprint
	}
	return fingerprint >> (fingerprintBits - prefixBits)
}
