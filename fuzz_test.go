package radixsort

import (
	"bytes"
	"encoding/binary"
	"slices"
	"testing"
)

func FuzzInt32s(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0x7F, 0, 0, 0, 0x80, 1, 0, 0, 0})
	f.Fuzz(func(t *testing.T, raw []byte) {
		data := make([]int32, len(raw)/4)
		for i := range data {
			data[i] = int32(binary.LittleEndian.Uint32(raw[4*i:]))
		}
		want := slices.Clone(data)
		slices.Sort(want)
		Int32s(data, WithThresholds(Thresholds{Word32: 2}))
		if !slices.Equal(data, want) {
			t.Fatalf("Int32s(%v) = %v", want, data)
		}
	})
}

func FuzzUint16s(f *testing.F) {
	f.Add([]byte{0x00, 0x01, 0xFF, 0x00, 0x01, 0x00})
	f.Fuzz(func(t *testing.T, raw []byte) {
		data := make([]uint16, len(raw)/2)
		for i := range data {
			data[i] = binary.LittleEndian.Uint16(raw[2*i:])
		}
		want := slices.Clone(data)
		slices.Sort(want)
		Uint16s(data, WithThresholds(Thresholds{Uint16Pass: 1, Uint16Low: 1}))
		if !slices.Equal(data, want) {
			t.Fatalf("Uint16s(%v) = %v", want, data)
		}
	})
}

// Input bytes become newline-separated lines.
func FuzzBytes(f *testing.F) {
	f.Add([]byte("b\na\n\nab\naa"))
	f.Add([]byte("\x00\n\x00\x00\n"))
	f.Fuzz(func(t *testing.T, raw []byte) {
		lines := bytes.Split(raw, []byte{'\n'})
		want := slices.Clone(lines)
		slices.SortFunc(want, bytes.Compare)
		Bytes(lines, WithThresholds(Thresholds{Narrow: 1}))
		if !slices.EqualFunc(lines, want, bytes.Equal) {
			t.Fatalf("Bytes(%q) = %q", want, lines)
		}
	})
}
