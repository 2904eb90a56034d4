package radixsort

import (
	"bytes"
	"cmp"
	"slices"
	"strings"

	"github.com/tamirms/radixsort/internal/encoding"
)

// Integer is the set of element types Sort accepts: any type whose
// underlying type is an 8, 16 or 32-bit integer.
type Integer interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32
}

// Sorter sorts buffers in place with a fixed configuration. The key sets for
// every element type are built once by New.
//
// A Sorter is safe for concurrent use unless it was configured WithStats.
// The Sorter never takes ownership of a buffer and never allocates one; a
// buffer must not be modified by anyone else while it is being sorted.
type Sorter struct {
	cfg sortConfig

	u8   ScalarKeys[uint8]
	u16  ScalarKeys[uint16]
	u32  ScalarKeys[uint32]
	str  VectorKeys[string]
	byt  VectorKeys[[]byte]
	cstr VectorKeys[[]byte]
	ptr  VectorKeys[*string]
	wide VectorKeys[[]uint16]
}

// New returns a Sorter configured by opts.
func New(opts ...Option) *Sorter {
	cfg := defaultSortConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	th := cfg.thresholds

	return &Sorter{
		cfg: cfg,
		u8: ScalarKeys[uint8]{
			Rounds:  []ByteKey[uint8]{Identity},
			Compare: cmp.Compare[uint8],
		},
		u16: ScalarKeys[uint16]{
			Rounds:  Word16Rounds(),
			Cutoffs: []int{th.Uint16Pass, th.Uint16Low},
			Compare: cmp.Compare[uint16],
		},
		u32: ScalarKeys[uint32]{
			Rounds:  Word32Rounds(),
			Cutoffs: []int{th.Word32, th.Word32, th.Word32, th.Word32},
			Compare: cmp.Compare[uint32],
		},
		str: VectorKeys[string]{
			Ended:  func(s string, i int) bool { return i >= len(s) },
			At:     func(s string, i int) uint16 { return uint16(s[i]) },
			Cutoff: th.Narrow,
			Compare: func(a, b string, from int) int {
				return strings.Compare(a[from:], b[from:])
			},
		},
		byt: VectorKeys[[]byte]{
			Ended:  func(s []byte, i int) bool { return i >= len(s) },
			At:     func(s []byte, i int) uint16 { return uint16(s[i]) },
			Cutoff: th.Narrow,
			Compare: func(a, b []byte, from int) int {
				return bytes.Compare(a[from:], b[from:])
			},
		},
		cstr: VectorKeys[[]byte]{
			Ended:  func(s []byte, i int) bool { return i >= len(s) || s[i] == 0 },
			At:     func(s []byte, i int) uint16 { return uint16(s[i]) },
			Cutoff: th.Narrow,
			Compare: func(a, b []byte, from int) int {
				return bytes.Compare(cstring(a)[from:], cstring(b)[from:])
			},
		},
		ptr: VectorKeys[*string]{
			Ended:  func(s *string, i int) bool { return i >= len(*s) },
			At:     func(s *string, i int) uint16 { return uint16((*s)[i]) },
			Cutoff: th.Narrow,
			Compare: func(a, b *string, from int) int {
				return strings.Compare((*a)[from:], (*b)[from:])
			},
		},
		wide: VectorKeys[[]uint16]{
			Ended:  func(s []uint16, i int) bool { return i >= len(s) },
			At:     func(s []uint16, i int) uint16 { return s[i] },
			Wide:   true,
			Cutoff: th.Wide,
			Compare: func(a, b []uint16, from int) int {
				return slices.Compare(a[from:], b[from:])
			},
		},
	}
}

var defaultSorter = New()

func sorterFor(opts []Option) *Sorter {
	if len(opts) == 0 {
		return defaultSorter
	}
	return New(opts...)
}

// cstring returns s up to, not including, its first NUL byte.
func cstring(s []byte) []byte {
	if i := bytes.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}

func check[T any](cfg *sortConfig, data []T, compare func(a, b T) int) {
	if cfg.verify {
		mustBeSorted(data, compare)
	}
}

// unsigned cores, shared by the typed entry points and Sort

func (s *Sorter) uint8s(data []uint8)   { s.u8.sort(data, &s.cfg) }
func (s *Sorter) uint16s(data []uint16) { s.u16.sort(data, &s.cfg) }
func (s *Sorter) uint32s(data []uint32) { s.u32.sort(data, &s.cfg) }

func (s *Sorter) int8s(data []uint8) {
	bias(data)
	s.uint8s(data)
	unbias(data)
}

func (s *Sorter) int16s(data []uint16) {
	bias(data)
	s.uint16s(data)
	unbias(data)
}

func (s *Sorter) int32s(data []uint32) {
	bias(data)
	s.uint32s(data)
	unbias(data)
}

// Uint8s sorts data in ascending order with a single counting pass.
func (s *Sorter) Uint8s(data []uint8) {
	s.uint8s(data)
	check(&s.cfg, data, cmp.Compare[uint8])
}

// Int8s sorts data in ascending signed order.
func (s *Sorter) Int8s(data []int8) {
	s.int8s(encoding.Cast[uint8](data))
	check(&s.cfg, data, cmp.Compare[int8])
}

// Uint16s sorts data in ascending order. Buffers at or below the Uint16Pass
// threshold are comparison sorted outright.
func (s *Sorter) Uint16s(data []uint16) {
	s.uint16s(data)
	check(&s.cfg, data, cmp.Compare[uint16])
}

// Int16s sorts data in ascending signed order.
func (s *Sorter) Int16s(data []int16) {
	s.int16s(encoding.Cast[uint16](data))
	check(&s.cfg, data, cmp.Compare[int16])
}

// Uint32s sorts data in ascending order with up to four byte rounds.
func (s *Sorter) Uint32s(data []uint32) {
	s.uint32s(data)
	check(&s.cfg, data, cmp.Compare[uint32])
}

// Int32s sorts data in ascending signed order.
func (s *Sorter) Int32s(data []int32) {
	s.int32s(encoding.Cast[uint32](data))
	check(&s.cfg, data, cmp.Compare[int32])
}

// Strings sorts data in byte-wise lexicographic order; a proper prefix sorts
// before the longer string.
func (s *Sorter) Strings(data []string) {
	s.str.sort(data, &s.cfg)
	check(&s.cfg, data, strings.Compare)
}

// Bytes sorts byte strings lexicographically, as Strings does.
func (s *Sorter) Bytes(data [][]byte) {
	s.byt.sort(data, &s.cfg)
	check(&s.cfg, data, bytes.Compare)
}

// CStrings sorts NUL-terminated byte strings. Each element ends at its first
// NUL byte or at the end of the slice, whichever comes first; bytes after
// the NUL do not take part in the order.
func (s *Sorter) CStrings(data [][]byte) {
	s.cstr.sort(data, &s.cfg)
	check(&s.cfg, data, func(a, b []byte) int {
		return bytes.Compare(cstring(a), cstring(b))
	})
}

// StringPtrs sorts the pointers in data by the strings they point to. The
// strings themselves are not moved. Every pointer must be non-nil.
func (s *Sorter) StringPtrs(data []*string) {
	s.ptr.sort(data, &s.cfg)
	check(&s.cfg, data, func(a, b *string) int {
		return strings.Compare(*a, *b)
	})
}

// WideStrings sorts strings of 16-bit code units lexicographically by code
// unit value. Every character takes two byte rounds, high byte first.
func (s *Sorter) WideStrings(data [][]uint16) {
	s.wide.sort(data, &s.cfg)
	check(&s.cfg, data, slices.Compare[[]uint16, uint16])
}

// Uint8s sorts data in ascending order.
func Uint8s(data []uint8, opts ...Option) { sorterFor(opts).Uint8s(data) }

// Int8s sorts data in ascending order.
func Int8s(data []int8, opts ...Option) { sorterFor(opts).Int8s(data) }

// Uint16s sorts data in ascending order.
func Uint16s(data []uint16, opts ...Option) { sorterFor(opts).Uint16s(data) }

// Int16s sorts data in ascending order.
func Int16s(data []int16, opts ...Option) { sorterFor(opts).Int16s(data) }

// Uint32s sorts data in ascending order.
func Uint32s(data []uint32, opts ...Option) { sorterFor(opts).Uint32s(data) }

// Int32s sorts data in ascending order.
func Int32s(data []int32, opts ...Option) { sorterFor(opts).Int32s(data) }

// Strings sorts data in lexicographic order.
func Strings(data []string, opts ...Option) { sorterFor(opts).Strings(data) }

// Bytes sorts data in lexicographic order.
func Bytes(data [][]byte, opts ...Option) { sorterFor(opts).Bytes(data) }

// CStrings sorts NUL-terminated byte strings in lexicographic order.
func CStrings(data [][]byte, opts ...Option) { sorterFor(opts).CStrings(data) }

// StringPtrs sorts string pointers by the strings they point to.
func StringPtrs(data []*string, opts ...Option) { sorterFor(opts).StringPtrs(data) }

// WideStrings sorts 16-bit code unit strings in lexicographic order.
func WideStrings(data [][]uint16, opts ...Option) { sorterFor(opts).WideStrings(data) }

// Sort sorts any slice of 8, 16 or 32-bit integers, including named types,
// in ascending order. The buffer is reinterpreted in place, not copied.
func Sort[T Integer](data []T, opts ...Option) {
	SortWith(sorterFor(opts), data)
}

// SortWith is Sort with an existing Sorter.
func SortWith[T Integer](s *Sorter, data []T) {
	var zero T
	signed := ^zero < 0

	switch encoding.Width[T]() {
	case 1:
		u := encoding.Cast[uint8](data)
		if signed {
			s.int8s(u)
		} else {
			s.uint8s(u)
		}
	case 2:
		u := encoding.Cast[uint16](data)
		if signed {
			s.int16s(u)
		} else {
			s.uint16s(u)
		}
	case 4:
		u := encoding.Cast[uint32](data)
		if signed {
			s.int32s(u)
		} else {
			s.uint32s(u)
		}
	}
	check(&s.cfg, data, cmp.Compare[T])
}
