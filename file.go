package radixsort

import (
	"bytes"
	"cmp"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/edsrzf/mmap-go"

	sorterrors "github.com/tamirms/radixsort/errors"
	"github.com/tamirms/radixsort/internal/encoding"
)

// Kind names the element type of a binary file.
type Kind uint8

const (
	KindUint8 Kind = iota + 1
	KindInt8
	KindUint16
	KindInt16
	KindUint32
	KindInt32
)

var kindNames = [...]string{
	KindUint8:  "uint8",
	KindInt8:   "int8",
	KindUint16: "uint16",
	KindInt16:  "int16",
	KindUint32: "uint32",
	KindInt32:  "int32",
}

func (k Kind) String() string {
	if k == 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Width returns the element size in bytes, or 0 for an unknown kind.
func (k Kind) Width() int {
	switch k {
	case KindUint8, KindInt8:
		return 1
	case KindUint16, KindInt16:
		return 2
	case KindUint32, KindInt32:
		return 4
	}
	return 0
}

// ParseKind returns the Kind named s ("uint8" ... "int32").
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name != "" && name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", sorterrors.ErrUnsupportedKind, s)
}

// FileResult describes a completed file sort. Before and After are only
// filled in when the Sorter was configured WithVerify.
type FileResult struct {
	Path     string
	Elements int
	Bytes    int64
	Before   Digest
	After    Digest
}

// SortFile sorts the file at path in place as a packed array of kind
// elements in native (little-endian) byte order. The file is memory-mapped
// read-write; nothing is copied to the heap.
func (s *Sorter) SortFile(path string, kind Kind) (res FileResult, err error) {
	res.Path = path
	width := kind.Width()
	if width == 0 {
		return res, fmt.Errorf("%w: %v", sorterrors.ErrUnsupportedKind, kind)
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return res, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	info, err := f.Stat()
	if err != nil {
		return res, fmt.Errorf("stat %s: %w", path, err)
	}
	size := info.Size()
	res.Bytes = size
	if size%int64(width) != 0 {
		return res, fmt.Errorf("%w: %s is %d bytes, element width %d",
			sorterrors.ErrMisalignedFile, path, size, width)
	}
	n := size / int64(width)
	if n >= math.MaxInt32 {
		return res, fmt.Errorf("%w: %s holds %d elements", sorterrors.ErrTooManyElements, path, n)
	}
	res.Elements = int(n)
	if n <= 1 {
		return res, nil
	}

	mm, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		return res, fmt.Errorf("mmap %s: %w", path, err)
	}
	adviseRandom(mm)

	switch kind {
	case KindUint8:
		err = sortView[uint8](s, mm, &res)
	case KindInt8:
		err = sortView[int8](s, mm, &res)
	case KindUint16:
		err = sortView[uint16](s, mm, &res)
	case KindInt16:
		err = sortView[int16](s, mm, &res)
	case KindUint32:
		err = sortView[uint32](s, mm, &res)
	case KindInt32:
		err = sortView[int32](s, mm, &res)
	}
	if err != nil {
		return res, errors.Join(err, mm.Unmap())
	}

	if err := mm.Flush(); err != nil {
		return res, errors.Join(fmt.Errorf("flush %s: %w", path, err), mm.Unmap())
	}
	if err := mm.Unmap(); err != nil {
		return res, fmt.Errorf("unmap %s: %w", path, err)
	}
	return res, nil
}

// sortView sorts the mapping as []T. With verification on, a misordered
// result or a changed digest is returned as an error rather than a panic.
func sortView[T Integer](s *Sorter, buf []byte, res *FileResult) error {
	data, err := encoding.View[T](buf)
	if err != nil {
		return err
	}
	if !s.cfg.verify {
		SortWith(s, data)
		return nil
	}

	res.Before = DigestFixed(data)
	quiet := *s
	quiet.cfg.verify = false
	SortWith(&quiet, data)
	res.After = DigestFixed(data)

	if err := CheckSorted(data, cmp.Compare[T]); err != nil {
		return fmt.Errorf("%s: %w", res.Path, err)
	}
	return res.Before.Check(res.After)
}

// SortFile sorts a binary file in place; see Sorter.SortFile.
func SortFile(path string, kind Kind, opts ...Option) (FileResult, error) {
	return sorterFor(opts).SortFile(path, kind)
}

// SortLines writes the lines of the file in to the file out in byte-wise
// lexicographic order. Lines are separated by '\n'; the separator is not part
// of a line's key. Every output line ends in '\n', so an input without a
// trailing newline gains one.
//
// The input is mapped read-only and the lines are sorted as views into the
// mapping. The output is written to a temporary file next to out, through a
// pre-allocated read-write mapping, and renamed over out on success.
func (s *Sorter) SortLines(in, out string) (res FileResult, err error) {
	res.Path = out

	src, err := os.Open(in)
	if err != nil {
		return res, fmt.Errorf("open %s: %w", in, err)
	}
	defer func() { err = errors.Join(err, src.Close()) }()

	info, err := src.Stat()
	if err != nil {
		return res, fmt.Errorf("stat %s: %w", in, err)
	}

	var input mmap.MMap
	if info.Size() > 0 {
		fadviseSequential(src)
		input, err = mmap.Map(src, mmap.RDONLY, 0)
		if err != nil {
			return res, fmt.Errorf("mmap %s: %w", in, err)
		}
		defer func() { err = errors.Join(err, input.Unmap()) }()
	}

	lines := splitLines(input)
	if len(lines) >= math.MaxInt32 {
		return res, fmt.Errorf("%w: %s holds %d lines", sorterrors.ErrTooManyElements, in, len(lines))
	}
	res.Elements = len(lines)

	if s.cfg.verify {
		res.Before = DigestBytes(lines)
	}
	s.byt.sort(lines, &s.cfg)
	if s.cfg.verify {
		res.After = DigestBytes(lines)
		if err := CheckSorted(lines, bytes.Compare); err != nil {
			return res, fmt.Errorf("%s: %w", in, err)
		}
		if err := res.Before.Check(res.After); err != nil {
			return res, err
		}
	}

	var size int64
	for _, line := range lines {
		size += int64(len(line)) + 1
	}
	res.Bytes = size

	if err := writeLines(out, lines, size); err != nil {
		return res, err
	}
	return res, nil
}

// SortLines sorts the lines of a text file; see Sorter.SortLines.
func SortLines(in, out string, opts ...Option) (FileResult, error) {
	return sorterFor(opts).SortLines(in, out)
}

// splitLines returns the '\n'-separated lines of buf as sub-slices of it.
// A final line without a newline is included; an empty trailing piece after
// the last newline is not.
func splitLines(buf []byte) [][]byte {
	if len(buf) == 0 {
		return nil
	}
	n := bytes.Count(buf, []byte{'\n'})
	if buf[len(buf)-1] != '\n' {
		n++
	}
	lines := make([][]byte, 0, n)
	for len(buf) > 0 {
		i := bytes.IndexByte(buf, '\n')
		if i < 0 {
			lines = append(lines, buf)
			break
		}
		lines = append(lines, buf[:i:i])
		buf = buf[i+1:]
	}
	return lines
}

// writeLines writes lines, each followed by '\n', to path via a temporary
// file in the same directory.
func writeLines(path string, lines [][]byte, size int64) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			err = errors.Join(err, os.Remove(tmpPath))
		}
	}()

	if size == 0 {
		if err := tmp.Close(); err != nil {
			return fmt.Errorf("close %s: %w", tmpPath, err)
		}
		return os.Rename(tmpPath, path)
	}

	if err := fallocateFile(tmp, size); err != nil {
		return errors.Join(fmt.Errorf("allocate %d bytes: %w", size, err), tmp.Close())
	}
	mm, err := mmap.MapRegion(tmp, int(size), mmap.RDWR, 0, 0)
	if err != nil {
		return errors.Join(fmt.Errorf("mmap %s: %w", tmpPath, err), tmp.Close())
	}
	prefaultRegion(mm)

	off := 0
	for _, line := range lines {
		off += copy(mm[off:], line)
		mm[off] = '\n'
		off++
	}

	if err := mm.Flush(); err != nil {
		return errors.Join(fmt.Errorf("flush %s: %w", tmpPath, err), mm.Unmap(), tmp.Close())
	}
	unmapErr := mm.Unmap()
	closeErr := tmp.Close()
	if err := errors.Join(unmapErr, closeErr); err != nil {
		return fmt.Errorf("finish %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename %s: %w", tmpPath, err)
	}
	return nil
}

// mapReadOnly maps a whole binary file of kind elements for reading. The
// returned mapping is nil for a file shorter than two elements.
func mapReadOnly(path string, kind Kind) (mm mmap.MMap, res FileResult, err error) {
	res.Path = path
	width := kind.Width()
	if width == 0 {
		return nil, res, fmt.Errorf("%w: %v", sorterrors.ErrUnsupportedKind, kind)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, res, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	info, err := f.Stat()
	if err != nil {
		return nil, res, fmt.Errorf("stat %s: %w", path, err)
	}
	res.Bytes = info.Size()
	if res.Bytes%int64(width) != 0 {
		return nil, res, fmt.Errorf("%w: %s is %d bytes, element width %d",
			sorterrors.ErrMisalignedFile, path, res.Bytes, width)
	}
	res.Elements = int(res.Bytes / int64(width))
	if res.Elements <= 1 {
		return nil, res, nil
	}
	fadviseSequential(f)
	mm, err = mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, res, fmt.Errorf("mmap %s: %w", path, err)
	}
	return mm, res, nil
}

// CheckFile reports whether a binary file of kind elements is sorted. The
// returned error wraps errors.ErrNotSorted if it is not. Before holds the
// file's digest.
func CheckFile(path string, kind Kind) (res FileResult, err error) {
	mm, res, err := mapReadOnly(path, kind)
	if err != nil || mm == nil {
		return res, err
	}
	defer func() { err = errors.Join(err, mm.Unmap()) }()

	switch kind {
	case KindUint8:
		res.Before, err = checkView[uint8](mm)
	case KindInt8:
		res.Before, err = checkView[int8](mm)
	case KindUint16:
		res.Before, err = checkView[uint16](mm)
	case KindInt16:
		res.Before, err = checkView[int16](mm)
	case KindUint32:
		res.Before, err = checkView[uint32](mm)
	case KindInt32:
		res.Before, err = checkView[int32](mm)
	}
	if err != nil {
		return res, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}

func checkView[T Integer](buf []byte) (Digest, error) {
	data, err := encoding.View[T](buf)
	if err != nil {
		return Digest{}, err
	}
	return DigestFixed(data), CheckSorted(data, cmp.Compare[T])
}

// HistogramFile returns the bucket counts of one radix round over a binary
// file, as the engine sees them: signed kinds are counted after the bias, so
// bucket 0 of round 0 holds the most negative values.
func HistogramFile(path string, kind Kind, round int) (counts [numBuckets]int, res FileResult, err error) {
	if round < 0 || round >= kind.Width() {
		return counts, res, fmt.Errorf("round %d out of range for %v", round, kind)
	}
	mm, res, err := mapReadOnly(path, kind)
	if err != nil {
		return counts, res, err
	}
	if mm == nil {
		// Zero or one element: nothing mapped, read it directly.
		buf, err := os.ReadFile(path)
		if err != nil {
			return counts, res, fmt.Errorf("read %s: %w", path, err)
		}
		return histogramKind(buf, kind, round), res, nil
	}
	defer func() { err = errors.Join(err, mm.Unmap()) }()
	return histogramKind(mm, kind, round), res, nil
}

func histogramKind(buf []byte, kind Kind, round int) [numBuckets]int {
	signed := kind == KindInt8 || kind == KindInt16 || kind == KindInt32
	switch kind.Width() {
	case 1:
		return histogramView(buf, []ByteKey[uint8]{Identity}, round, signed)
	case 2:
		return histogramView(buf, Word16Rounds(), round, signed)
	default:
		return histogramView(buf, Word32Rounds(), round, signed)
	}
}

func histogramView[T unsigned](buf []byte, rounds []ByteKey[T], round int, signed bool) [numBuckets]int {
	data, err := encoding.View[T](buf)
	if err != nil {
		return [numBuckets]int{}
	}
	key := rounds[round]
	if signed {
		h := halfRange[T]()
		unbiased := key
		key = func(v T) uint8 { return unbiased(v + h) }
	}
	return Histogram(data, key)
}
