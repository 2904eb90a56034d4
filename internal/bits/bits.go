// Package bits provides small integer helpers shared by the sorting engine
// and the dataset generators.
package bits

import "math/bits"

// FastRange32 maps a 64-bit hash onto [0, n) without modulo bias by taking
// the high word of the 128-bit product. Generators use it to draw values
// from a bounded domain (for example, values colliding in one byte round).
func FastRange32(hash uint64, n uint32) uint32 {
	if n == 0 {
		return 0
	}
	hi, _ := bits.Mul64(hash, uint64(n))
	return uint32(hi)
}

// DepthLimit returns the quicksort recursion budget for n elements before
// the fallback switches to heapsort: 2*ceil(log2(n+1)).
func DepthLimit(n int) int {
	if n <= 1 {
		return 0
	}
	return 2 * bits.Len(uint(n))
}

// SignBit returns the half-range of an unsigned width in bits (8, 16 or 32),
// which is the value added to a signed bit pattern to make unsigned byte
// order agree with signed numeric order.
func SignBit(width int) uint32 {
	return 1 << (width - 1)
}
