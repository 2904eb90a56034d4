package bits

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"math/rand/v2"
	"testing"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return rand.New(rand.NewPCG(testSeed1^s1, testSeed2^s2))
}

// TestFastRange32Range verifies that the result is always in [0, n).
func TestFastRange32Range(t *testing.T) {
	rng := newTestRNG(t)
	const iterations = 10000

	for i := 0; i < iterations; i++ {
		n := uint32(rng.Uint32N(math.MaxUint32)) + 1
		h := rng.Uint64()

		if got := FastRange32(h, n); got >= n {
			t.Fatalf("iter %d: FastRange32(0x%X, %d)=%d >= %d", i, h, n, got, n)
		}
	}
}

// TestFastRange32Monotonicity verifies h1 < h2 implies
// FastRange32(h1,n) <= FastRange32(h2,n) for a fixed n.
func TestFastRange32Monotonicity(t *testing.T) {
	rng := newTestRNG(t)

	for i := 0; i < 10000; i++ {
		n := uint32(rng.Uint32N(1<<16)) + 1
		h1, h2 := rng.Uint64(), rng.Uint64()
		if h1 > h2 {
			h1, h2 = h2, h1
		}
		if r1, r2 := FastRange32(h1, n), FastRange32(h2, n); r1 > r2 {
			t.Fatalf("iter %d: FastRange32(0x%X)=%d > FastRange32(0x%X)=%d (n=%d)", i, h1, r1, h2, r2, n)
		}
	}
}

func TestFastRange32EdgeCases(t *testing.T) {
	for _, h := range []uint64{0, 1, math.MaxUint64, 0xDEADBEEF} {
		if got := FastRange32(h, 0); got != 0 {
			t.Errorf("FastRange32(0x%X, 0) = %d, want 0", h, got)
		}
		if got := FastRange32(h, 1); got != 0 {
			t.Errorf("FastRange32(0x%X, 1) = %d, want 0", h, got)
		}
	}
	for n := uint32(2); n <= 256; n++ {
		if got := FastRange32(math.MaxUint64, n); got != n-1 {
			t.Errorf("FastRange32(MaxUint64, %d) = %d, want %d", n, got, n-1)
		}
	}
}

func TestDepthLimit(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 0},
		{2, 4},
		{3, 4},
		{4, 6},
		{255, 16},
		{256, 18},
		{1 << 20, 42},
	}
	for _, tc := range tests {
		if got := DepthLimit(tc.n); got != tc.want {
			t.Errorf("DepthLimit(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}

func TestSignBit(t *testing.T) {
	for _, tc := range []struct {
		width int
		want  uint32
	}{{8, 0x80}, {16, 0x8000}, {32, 0x80000000}} {
		if got := SignBit(tc.width); got != tc.want {
			t.Errorf("SignBit(%d) = 0x%X, want 0x%X", tc.width, got, tc.want)
		}
	}
}
