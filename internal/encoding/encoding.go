// Package encoding provides zero-copy views between raw byte buffers (usually
// memory-mapped files) and fixed-width integer slices.
//
// Views use the machine's native byte order and are only meaningful for files
// written on little-endian architectures (amd64, arm64), which is the format
// the radixsort tools read and write.
package encoding

import (
	"fmt"
	"unsafe"

	sorterrors "github.com/tamirms/radixsort/errors"
)

// Fixed is the set of element types that can be viewed over raw bytes.
type Fixed interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32
}

// Width returns the size of T in bytes.
func Width[T Fixed]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// View returns buf as a []T sharing the same memory. len(buf) must be a
// multiple of the width of T and the first byte must be aligned for T.
// An empty buffer yields a nil slice.
func View[T Fixed](buf []byte) ([]T, error) {
	width := Width[T]()
	if len(buf)%width != 0 {
		return nil, fmt.Errorf("%w: %d bytes with %d-byte elements", sorterrors.ErrMisalignedFile, len(buf), width)
	}
	if len(buf) == 0 {
		return nil, nil
	}
	base := unsafe.Pointer(unsafe.SliceData(buf))
	if uintptr(base)%uintptr(width) != 0 {
		return nil, fmt.Errorf("%w: address %p, width %d", sorterrors.ErrMisalignedBuffer, base, width)
	}
	return unsafe.Slice((*T)(base), len(buf)/width), nil
}

// Bytes returns the raw bytes backing data.
func Bytes[T Fixed](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(data))), len(data)*Width[T]())
}

// Cast reinterprets data as a slice of another element type of the same
// width, e.g. []int16 as []uint16 or a named integer type as its underlying
// type. It panics if the widths differ.
func Cast[To, From Fixed](data []From) []To {
	if Width[To]() != Width[From]() {
		panic("encoding: Cast between types of different width")
	}
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*To)(unsafe.Pointer(unsafe.SliceData(data))), len(data))
}
