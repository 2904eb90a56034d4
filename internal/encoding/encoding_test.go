package encoding

import (
	"encoding/binary"
	"errors"
	"testing"

	sorterrors "github.com/tamirms/radixsort/errors"
)

func TestViewRoundtrip(t *testing.T) {
	src := []uint32{0, 1, 0x80000000, 0xFFFFFFFF, 0xDEADBEEF}
	raw := Bytes(src)
	if len(raw) != 4*len(src) {
		t.Fatalf("Bytes length = %d, want %d", len(raw), 4*len(src))
	}
	for i, v := range src {
		if got := binary.LittleEndian.Uint32(raw[i*4:]); got != v {
			t.Fatalf("element %d: raw bytes decode to 0x%X, want 0x%X", i, got, v)
		}
	}

	view, err := View[uint32](raw)
	if err != nil {
		t.Fatalf("View: %v", err)
	}
	view[0] = 42
	if src[0] != 42 {
		t.Fatal("View does not share memory with the source buffer")
	}
}

func TestViewRejectsPartialElement(t *testing.T) {
	buf := make([]byte, 7)
	if _, err := View[uint16](buf); !errors.Is(err, sorterrors.ErrMisalignedFile) {
		t.Fatalf("View[uint16] of 7 bytes: err = %v, want ErrMisalignedFile", err)
	}
	if _, err := View[int32](buf[:6]); !errors.Is(err, sorterrors.ErrMisalignedFile) {
		t.Fatalf("View[int32] of 6 bytes: err = %v, want ErrMisalignedFile", err)
	}
	if v, err := View[uint8](buf); err != nil || len(v) != 7 {
		t.Fatalf("View[uint8] of 7 bytes: len=%d err=%v", len(v), err)
	}
}

func TestViewRejectsUnalignedBase(t *testing.T) {
	backing := make([]uint32, 4)
	raw := Bytes(backing)[1:9]
	if _, err := View[uint32](raw); !errors.Is(err, sorterrors.ErrMisalignedBuffer) {
		t.Fatalf("err = %v, want ErrMisalignedBuffer", err)
	}
}

func TestViewEmpty(t *testing.T) {
	v, err := View[uint32](nil)
	if err != nil || v != nil {
		t.Fatalf("View(nil) = %v, %v; want nil, nil", v, err)
	}
}

func TestCast(t *testing.T) {
	signed := []int16{-1, 0, 1, -32768}
	unsigned := Cast[uint16](signed)
	want := []uint16{0xFFFF, 0, 1, 0x8000}
	for i := range want {
		if unsigned[i] != want[i] {
			t.Fatalf("element %d: got 0x%X, want 0x%X", i, unsigned[i], want[i])
		}
	}
	unsigned[1] = 0x8000
	if signed[1] != -32768 {
		t.Fatal("Cast does not share memory")
	}
}

func TestCastWidthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for width mismatch")
		}
	}()
	Cast[uint32]([]uint16{1, 2})
}
