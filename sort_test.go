package radixsort

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
	"strings"
	"testing"
	"unicode/utf16"
)

func convert[To, From uint32 | int32 | uint16 | int16 | uint8 | int8](in []From) []To {
	out := make([]To, len(in))
	for i, v := range in {
		out[i] = To(v)
	}
	return out
}

// checkAgainst sorts a copy with want and the input with got, and compares.
func checkAgainst[T cmp.Ordered](t *testing.T, in []T, got func([]T)) {
	t.Helper()
	want := slices.Clone(in)
	slices.Sort(want)
	got(in)
	if !slices.Equal(in, want) {
		for i := range in {
			if in[i] != want[i] {
				t.Fatalf("n=%d: first difference at %d: got %v, want %v", len(in), i, in[i], want[i])
			}
		}
	}
}

func TestIntegerEntryPoints(t *testing.T) {
	rng := newTestRNG(t)
	for _, p := range patterns {
		for _, n := range testSizes {
			raw := p.gen(rng, n)
			t.Run(fmt.Sprintf("%s/%d", p.name, n), func(t *testing.T) {
				checkAgainst(t, convert[uint8](raw), func(d []uint8) { Uint8s(d) })
				checkAgainst(t, convert[int8](raw), func(d []int8) { Int8s(d) })
				checkAgainst(t, convert[uint16](raw), func(d []uint16) { Uint16s(d) })
				checkAgainst(t, convert[int16](raw), func(d []int16) { Int16s(d) })
				checkAgainst(t, convert[uint32](raw), func(d []uint32) { Uint32s(d) })
				checkAgainst(t, convert[int32](raw), func(d []int32) { Int32s(d) })
			})
		}
	}
}

func TestSignedBoundaries(t *testing.T) {
	i8 := []int8{127, -128, 0, -1, 1}
	Int8s(i8)
	if want := []int8{-128, -1, 0, 1, 127}; !slices.Equal(i8, want) {
		t.Errorf("Int8s = %v, want %v", i8, want)
	}

	i16 := []int16{32767, -32768, 0, -1, 1, 256, -256}
	Int16s(i16)
	if want := []int16{-32768, -256, -1, 0, 1, 256, 32767}; !slices.Equal(i16, want) {
		t.Errorf("Int16s = %v, want %v", i16, want)
	}

	i32 := []int32{2147483647, -2147483648, 0, -1, 1}
	Int32s(i32)
	if want := []int32{-2147483648, -1, 0, 1, 2147483647}; !slices.Equal(i32, want) {
		t.Errorf("Int32s = %v, want %v", i32, want)
	}
}

func TestUnsignedBoundaries(t *testing.T) {
	u32 := []uint32{0, 0xFFFFFFFF, 0x80000000, 1}
	Uint32s(u32)
	if want := []uint32{0, 1, 0x80000000, 0xFFFFFFFF}; !slices.Equal(u32, want) {
		t.Errorf("Uint32s = %#x, want %#x", u32, want)
	}

	u16 := []uint16{0xFFFF, 0x8000, 0, 0x7FFF, 1}
	Uint16s(u16)
	if want := []uint16{0, 1, 0x7FFF, 0x8000, 0xFFFF}; !slices.Equal(u16, want) {
		t.Errorf("Uint16s = %#x, want %#x", u16, want)
	}
}

// Signed sorts must restore the original bit patterns, not just the order.
func TestSignedLargeBoundaryMix(t *testing.T) {
	rng := newTestRNG(t)
	data := make([]int32, 10000)
	edges := []int32{-2147483648, -1, 0, 1, 2147483647}
	for i := range data {
		if rng.IntN(4) == 0 {
			data[i] = edges[rng.IntN(len(edges))]
		} else {
			data[i] = int32(rng.Uint32())
		}
	}
	checkAgainst(t, data, func(d []int32) { Int32s(d) })
}

func TestSmallInputs(t *testing.T) {
	Uint32s(nil)
	Strings(nil)
	WideStrings(nil)

	one := []uint32{42}
	Uint32s(one)
	if one[0] != 42 {
		t.Errorf("single element changed: %d", one[0])
	}

	two := []int16{5, -5}
	Int16s(two)
	if !slices.Equal(two, []int16{-5, 5}) {
		t.Errorf("two elements: %v", two)
	}

	s := []string{"b", "a"}
	Strings(s)
	if !slices.Equal(s, []string{"a", "b"}) {
		t.Errorf("two strings: %v", s)
	}
}

func TestIdempotent(t *testing.T) {
	rng := newTestRNG(t)
	data := make([]uint32, 20000)
	for i := range data {
		data[i] = rng.Uint32()
	}
	Uint32s(data)
	once := slices.Clone(data)
	Uint32s(data)
	if !slices.Equal(data, once) {
		t.Fatal("sorting a sorted buffer changed it")
	}

	strs := randomStrings(rng, 5000, 10, "abcd")
	Strings(strs)
	sorted := slices.Clone(strs)
	Strings(strs)
	if !slices.Equal(strs, sorted) {
		t.Fatal("sorting sorted strings changed them")
	}
}

type celsius int16

type code uint8

func TestSortNamedTypes(t *testing.T) {
	rng := newTestRNG(t)

	temps := make([]celsius, 3000)
	for i := range temps {
		temps[i] = celsius(rng.IntN(1<<16) - 1<<15)
	}
	checkAgainst(t, temps, func(d []celsius) { Sort(d) })

	codes := make([]code, 1000)
	for i := range codes {
		codes[i] = code(rng.Uint32())
	}
	checkAgainst(t, codes, func(d []code) { Sort(d) })

	plain := []int32{3, -3, 0}
	Sort(plain, WithVerify())
	if !slices.Equal(plain, []int32{-3, 0, 3}) {
		t.Errorf("Sort[int32] = %v", plain)
	}
}

func TestStringsBasic(t *testing.T) {
	s := []string{"b", "ab", "", "a"}
	Strings(s)
	if want := []string{"", "a", "ab", "b"}; !slices.Equal(s, want) {
		t.Errorf("Strings = %q, want %q", s, want)
	}
}

func TestStrings(t *testing.T) {
	rng := newTestRNG(t)
	cases := []struct {
		name string
		data []string
	}{
		{"short-alphabet", randomStrings(rng, 5000, 8, "ab")},
		{"bytes", randomStrings(rng, 5000, 12, "\x00\x01\x7f\x80\xfeabcz")},
		{"long-prefix", prefixedStrings(rng, 3000, 200)},
		{"all-equal", slices.Repeat([]string{"same"}, 1000)},
		{"all-empty", make([]string, 500)},
		{"prefix-chain", func() []string {
			out := make([]string, 300)
			for i := range out {
				out[i] = strings.Repeat("x", 299-i)
			}
			return out
		}()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			checkAgainst(t, tc.data, func(d []string) { Strings(d) })
		})
	}
}

func TestBytes(t *testing.T) {
	rng := newTestRNG(t)
	strs := randomStrings(rng, 4000, 9, "abc\x00")
	data := make([][]byte, len(strs))
	for i, s := range strs {
		data[i] = []byte(s)
	}
	Bytes(data)
	if !slices.IsSortedFunc(data, bytes.Compare) {
		t.Fatal("Bytes result not sorted")
	}
	got := make([]string, len(data))
	for i, b := range data {
		got[i] = string(b)
	}
	slices.Sort(strs)
	if !slices.Equal(got, strs) {
		t.Fatal("Bytes result is not a permutation of the input")
	}
}

func TestCStrings(t *testing.T) {
	data := [][]byte{
		[]byte("beta\x00zzz"),
		[]byte("alpha"),
		[]byte("\x00ignored"),
		[]byte("alp\x00ha"),
		[]byte("beta\x00aaa"),
		{},
	}
	CStrings(data)
	keys := make([]string, len(data))
	for i, s := range data {
		keys[i] = string(cstring(s))
	}
	if want := []string{"", "", "alp", "alpha", "beta", "beta"}; !slices.Equal(keys, want) {
		t.Errorf("CStrings keys = %q, want %q", keys, want)
	}

	rng := newTestRNG(t)
	strs := randomStrings(rng, 3000, 10, "ab\x00")
	big := make([][]byte, len(strs))
	for i, s := range strs {
		big[i] = []byte(s)
	}
	CStrings(big, WithVerify())
}

func TestStringPtrs(t *testing.T) {
	rng := newTestRNG(t)
	strs := randomStrings(rng, 3000, 7, "xyz")
	ptrs := make([]*string, len(strs))
	for i := range strs {
		ptrs[i] = &strs[i]
	}
	StringPtrs(ptrs)

	got := make([]string, len(ptrs))
	for i, p := range ptrs {
		got[i] = *p
	}
	want := slices.Clone(strs)
	slices.Sort(want)
	if !slices.Equal(got, want) {
		t.Fatal("StringPtrs order differs from slices.Sort")
	}
	// Pointees stay where they are.
	for i, p := range ptrs {
		if p == nil {
			t.Fatalf("pointer %d is nil", i)
		}
	}
}

func TestWideStrings(t *testing.T) {
	rng := newTestRNG(t)
	runes := []rune{'a', 'b', 'é', 'ω', '中', 0x1F600, 0x00FF, 0x0100}
	data := make([][]uint16, 4000)
	for i := range data {
		l := rng.IntN(7)
		rs := make([]rune, l)
		for j := range rs {
			rs[j] = runes[rng.IntN(len(runes))]
		}
		data[i] = utf16.Encode(rs)
	}
	want := slices.Clone(data)
	slices.SortFunc(want, slices.Compare[[]uint16, uint16])

	WideStrings(data)
	if !slices.EqualFunc(data, want, slices.Equal[[]uint16, uint16]) {
		t.Fatal("WideStrings order differs from slices.SortFunc")
	}
}

// 0x00FF and 0x0100 share no byte, so the low-byte round alone would
// misorder them.
func TestWideStringsHighByteFirst(t *testing.T) {
	data := make([][]uint16, 0, 400)
	for range 200 {
		data = append(data, []uint16{0x0100}, []uint16{0x00FF})
	}
	WideStrings(data)
	for i := range 200 {
		if data[i][0] != 0x00FF {
			t.Fatalf("element %d = %#x, want 0x00ff", i, data[i][0])
		}
	}
}

func TestVerifyPanicsOnBadCompare(t *testing.T) {
	keys := ScalarKeys[uint32]{
		Rounds: Word32Rounds(),
		// Disagrees with the byte rounds.
		Compare: func(a, b uint32) int { return cmp.Compare(b, a) },
	}
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if err, ok := r.(error); !ok || !strings.Contains(err.Error(), "not sorted") {
			t.Fatalf("panic value %v", r)
		}
	}()
	SortBy([]uint32{3, 1, 2}, keys, WithVerify())
}
