// Package dataset generates reproducible test and benchmark inputs.
//
// Element i of a dataset depends only on (pattern, seed, i, n): it is derived
// from murmur3 of the index, so a dataset can be produced in independent
// chunks and regenerated byte for byte.
package dataset

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/spaolacci/murmur3"

	sorterrors "github.com/tamirms/radixsort/errors"
	intbits "github.com/tamirms/radixsort/internal/bits"
)

// Pattern names a distribution of keys.
type Pattern string

const (
	Uniform Pattern = "uniform" // independent uniform words
	Sorted  Pattern = "sorted"  // non-decreasing
	Reverse Pattern = "reverse" // non-increasing
	Dups    Pattern = "dups"    // one value repeated
	Few     Pattern = "few"     // four distinct values
	Collide Pattern = "collide" // all keys share their leading bytes
)

// Patterns lists every known pattern.
var Patterns = []Pattern{Uniform, Sorted, Reverse, Dups, Few, Collide}

// ParsePattern returns the Pattern named s.
func ParsePattern(s string) (Pattern, error) {
	for _, p := range Patterns {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", sorterrors.ErrUnknownPattern, s)
}

func hashIndex(i uint64, seed uint32) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], i)
	return murmur3.Sum64WithSeed(buf[:], seed)
}

// Word returns element i of an n-element dataset of 32-bit words.
func Word(p Pattern, i, n int, seed uint32) uint32 {
	h := hashIndex(uint64(i), seed)
	switch p {
	case Sorted:
		return uint32(uint64(i) << 32 / uint64(max(n, 1)))
	case Reverse:
		return uint32(uint64(n-1-i) << 32 / uint64(max(n, 1)))
	case Dups:
		return uint32(hashIndex(0, seed))
	case Few:
		return intbits.FastRange32(h, 4) * 0x01010101
	case Collide:
		return 0xC0110000 | intbits.FastRange32(h, 1<<16)
	default:
		return uint32(h)
	}
}

// FillWords writes elements offset .. offset+len(dst)-1 of an n-element
// dataset into dst.
func FillWords(dst []uint32, p Pattern, offset, n int, seed uint32) {
	for j := range dst {
		dst[j] = Word(p, offset+j, n, seed)
	}
}

// Words returns a complete n-element dataset.
func Words(p Pattern, n int, seed uint32) []uint32 {
	out := make([]uint32, n)
	FillWords(out, p, 0, n, seed)
	return out
}

// PutFixed writes the low width bytes of every word to dst in little-endian
// order. dst must hold len(words)*width bytes.
func PutFixed(dst []byte, words []uint32, width int) {
	var buf [4]byte
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[:], w)
		copy(dst[i*width:(i+1)*width], buf[:width])
	}
}

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// String returns element i of an n-element dataset of short lowercase
// strings of at most maxLen bytes.
func String(p Pattern, i, n, maxLen int, seed uint32) string {
	switch p {
	case Sorted, Reverse:
		// Fixed-width base-26 rendering of the word keeps the order.
		w := uint64(Word(p, i, n, seed))
		var b strings.Builder
		for range 7 {
			b.WriteByte(alphabet[w/308915776%26])
			w = w % 308915776 * 26
		}
		return b.String()
	case Dups:
		i = 0
	case Few:
		i = int(intbits.FastRange32(hashIndex(uint64(i), seed), 4))
	}

	h1, h2 := murmur3.Sum128WithSeed(binary.LittleEndian.AppendUint64(nil, uint64(i)), seed)
	length := int(intbits.FastRange32(h1, uint32(maxLen+1)))
	var b strings.Builder
	if p == Collide {
		b.WriteString("shared/prefix/")
	}
	for j := range length {
		h2 = h2*6364136223846793005 + 1442695040888963407
		b.WriteByte(alphabet[intbits.FastRange32(h2^uint64(j), uint32(len(alphabet)))])
	}
	return b.String()
}

// Strings returns a complete n-element string dataset.
func Strings(p Pattern, n, maxLen int, seed uint32) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = String(p, i, n, maxLen, seed)
	}
	return out
}
