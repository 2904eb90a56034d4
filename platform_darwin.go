//go:build darwin

package radixsort

import (
	"os"

	"golang.org/x/sys/unix"
)

// fallocateFile reserves size bytes of disk for the output of SortLines with
// F_PREALLOCATE, then sets the length. F_PREALLOCATE only reserves.
func fallocateFile(file *os.File, size int64) error {
	fst := unix.Fstore_t{
		Flags:   unix.F_ALLOCATEALL,
		Posmode: unix.F_PEOFPOSMODE,
		Length:  size,
	}
	if err := unix.FcntlFstore(file.Fd(), unix.F_PREALLOCATE, &fst); err != nil {
		return unix.Ftruncate(int(file.Fd()), size)
	}
	return unix.Ftruncate(int(file.Fd()), size)
}

// fadviseSequential turns readahead on for the input file. Best-effort.
func fadviseSequential(file *os.File) {
	_, _ = unix.FcntlInt(file.Fd(), unix.F_RDAHEAD, 1)
}

// prefaultRegion is a no-op; darwin has no MADV_POPULATE_WRITE.
func prefaultRegion(data []byte) {}

// adviseRandom disables readahead on a mapping the permutation passes will
// touch in scattered order. Best-effort.
func adviseRandom(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Madvise(data, unix.MADV_RANDOM)
}
