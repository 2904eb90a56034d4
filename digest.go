package radixsort

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/xxh3"

	sorterrors "github.com/tamirms/radixsort/errors"
	"github.com/tamirms/radixsort/internal/encoding"
)

// Digest is an order-independent fingerprint of the multiset of elements in
// a buffer. Taking one before and one after a sort and comparing them checks
// that the sort only permuted the buffer.
//
// Each element is hashed, then folded into a wrapping sum and into an xor of
// a second mixing of the hash, so reorderings leave the digest unchanged
// while a duplicated or lost element changes it with high probability.
type Digest struct {
	Count uint64
	Sum   uint64
	Xor   uint64
}

const digestMix = 0x517cc1b727220a95

func (d *Digest) add(h uint64) {
	d.Count++
	d.Sum += h
	m := h * digestMix
	d.Xor ^= m ^ (m >> 29)
}

// Equal reports whether d and other fingerprint the same multiset.
func (d Digest) Equal(other Digest) bool {
	return d == other
}

// Check returns an error wrapping errors.ErrDigestMismatch if after does not
// fingerprint the same multiset as d.
func (d Digest) Check(after Digest) error {
	if d.Equal(after) {
		return nil
	}
	return fmt.Errorf("%w: before %d elements (sum %016x xor %016x), after %d elements (sum %016x xor %016x)",
		sorterrors.ErrDigestMismatch, d.Count, d.Sum, d.Xor, after.Count, after.Sum, after.Xor)
}

// DigestFixed fingerprints a buffer of fixed-width integers. Elements are
// hashed with xxHash64 over their little-endian bytes.
func DigestFixed[T Integer](data []T) Digest {
	var (
		d   Digest
		buf [4]byte
	)
	width := encoding.Width[T]()
	for _, v := range data {
		binary.LittleEndian.PutUint32(buf[:], uint32(v))
		d.add(xxhash.Sum64(buf[:width]))
	}
	return d
}

// DigestStrings fingerprints a buffer of strings with xxh3.
func DigestStrings(data []string) Digest {
	var d Digest
	for _, s := range data {
		d.add(xxh3.HashString(s))
	}
	return d
}

// DigestBytes fingerprints a buffer of byte strings with xxh3.
func DigestBytes(data [][]byte) Digest {
	var d Digest
	for _, s := range data {
		d.add(xxh3.Hash(s))
	}
	return d
}

// DigestCStrings fingerprints NUL-terminated byte strings. Only the bytes up
// to the terminator count, matching the order CStrings sorts by.
func DigestCStrings(data [][]byte) Digest {
	var d Digest
	for _, s := range data {
		d.add(xxh3.Hash(cstring(s)))
	}
	return d
}

// DigestStringPtrs fingerprints the strings behind data. Two pointers to
// equal strings contribute the same hash.
func DigestStringPtrs(data []*string) Digest {
	var d Digest
	for _, s := range data {
		d.add(xxh3.HashString(*s))
	}
	return d
}

// DigestWide fingerprints strings of 16-bit code units.
func DigestWide(data [][]uint16) Digest {
	var d Digest
	for _, s := range data {
		d.add(xxh3.Hash(encoding.Bytes(s)))
	}
	return d
}
