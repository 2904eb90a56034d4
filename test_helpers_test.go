package radixsort

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand/v2"
	"testing"
)

// newTestRNG returns a PCG generator seeded from the test name, so every
// test sees the same data on every run.
func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	return rand.New(rand.NewPCG(binary.LittleEndian.Uint64(sum[:8]), binary.LittleEndian.Uint64(sum[8:])))
}

// testSizes covers the empty and tiny cases, sizes either side of every
// default threshold, and sizes large enough for several radix rounds.
var testSizes = []int{0, 1, 2, 3, 49, 50, 51, 74, 75, 76, 127, 128, 129, 149, 150, 151, 300, 1000, 5000, 70000}

// pattern builds n values from rng. Patterns produce raw 32-bit words that
// the typed helpers truncate.
type pattern struct {
	name string
	gen  func(rng *rand.Rand, n int) []uint32
}

var patterns = []pattern{
	{"random", func(rng *rand.Rand, n int) []uint32 {
		out := make([]uint32, n)
		for i := range out {
			out[i] = rng.Uint32()
		}
		return out
	}},
	{"sorted", func(rng *rand.Rand, n int) []uint32 {
		out := make([]uint32, n)
		for i := range out {
			out[i] = uint32(i) * 2654435761 >> 8
		}
		for i := 1; i < n; i++ {
			out[i] = max(out[i], out[i-1])
		}
		return out
	}},
	{"reverse", func(rng *rand.Rand, n int) []uint32 {
		out := make([]uint32, n)
		for i := range out {
			out[i] = uint32(n - i)
		}
		return out
	}},
	{"duplicates", func(rng *rand.Rand, n int) []uint32 {
		out := make([]uint32, n)
		v := rng.Uint32()
		for i := range out {
			out[i] = v
		}
		return out
	}},
	{"few", func(rng *rand.Rand, n int) []uint32 {
		out := make([]uint32, n)
		for i := range out {
			out[i] = uint32(rng.IntN(4)) * 0x01010101
		}
		return out
	}},
	// Every element lands in the same bucket for the first rounds.
	{"collide", func(rng *rand.Rand, n int) []uint32 {
		out := make([]uint32, n)
		for i := range out {
			out[i] = 0xAB_CD_00_00 | uint32(rng.IntN(256))
		}
		return out
	}},
	{"sawtooth", func(rng *rand.Rand, n int) []uint32 {
		out := make([]uint32, n)
		for i := range out {
			out[i] = uint32(i % 37)
		}
		return out
	}},
}

// randomStrings returns n strings over a small alphabet, with lengths up to
// maxLen, so that equal prefixes and exhausted strings are common.
func randomStrings(rng *rand.Rand, n, maxLen int, alphabet string) []string {
	out := make([]string, n)
	buf := make([]byte, maxLen)
	for i := range out {
		l := rng.IntN(maxLen + 1)
		for j := range l {
			buf[j] = alphabet[rng.IntN(len(alphabet))]
		}
		out[i] = string(buf[:l])
	}
	return out
}

// prefixedStrings returns n strings sharing a prefix of prefixLen bytes.
func prefixedStrings(rng *rand.Rand, n, prefixLen int) []string {
	prefix := make([]byte, prefixLen)
	for i := range prefix {
		prefix[i] = 'p'
	}
	out := randomStrings(rng, n, 6, "abc")
	for i := range out {
		out[i] = string(prefix) + out[i]
	}
	return out
}
