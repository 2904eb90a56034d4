//go:build linux

package radixsort

import (
	"os"

	"golang.org/x/sys/unix"
)

// MADV_POPULATE_WRITE, Linux 5.14+. Older kernels answer EINVAL.
const madvPopulateWrite = 23

// fallocateFile reserves size bytes of disk for the output of SortLines so a
// full disk fails here instead of as SIGBUS while writing through the
// mapping. Filesystems without fallocate (NFS, tmpfs on old kernels) fall
// back to ftruncate.
func fallocateFile(file *os.File, size int64) error {
	fd := int(file.Fd())
	if err := unix.Fallocate(fd, 0, 0, size); err != nil {
		return unix.Ftruncate(fd, size)
	}
	return unix.Ftruncate(fd, size)
}

// fadviseSequential tells the kernel the whole input will be read once,
// front to back. Best-effort.
func fadviseSequential(file *os.File) {
	_ = unix.Fadvise(int(file.Fd()), 0, 0, unix.FADV_SEQUENTIAL)
}

// prefaultRegion populates the pages of a fresh writable mapping up front.
// Best-effort.
func prefaultRegion(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Madvise(data, madvPopulateWrite)
}

// adviseRandom marks a mapping that the permutation passes will touch in
// scattered order, which disables readahead. Best-effort.
func adviseRandom(data []byte) {
	if len(data) == 0 {
		return
	}
	_ = unix.Madvise(data, unix.MADV_RANDOM)
}
