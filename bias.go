package radixsort

import (
	intbits "github.com/tamirms/radixsort/internal/bits"
	"github.com/tamirms/radixsort/internal/encoding"
)

type unsigned interface {
	~uint8 | ~uint16 | ~uint32
}

// halfRange returns 2^(w-1) for the width of T.
func halfRange[T unsigned]() T {
	return T(intbits.SignBit(8 * encoding.Width[T]()))
}

// bias adds the half-range to every element, modulo 2^w, so the unsigned
// order of the bit patterns matches the signed order of the values:
// -2^(w-1) becomes 0 and 2^(w-1)-1 becomes the maximum.
func bias[T unsigned](data []T) {
	h := halfRange[T]()
	for i := range data {
		data[i] += h
	}
}

// unbias reverses bias.
func unbias[T unsigned](data []T) {
	h := halfRange[T]()
	for i := range data {
		data[i] -= h
	}
}
