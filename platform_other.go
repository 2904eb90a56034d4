//go:build !linux && !darwin

package radixsort

import "os"

// fallocateFile sets the output length. The blocks may not be reserved, so a
// full disk can still surface as a fault while writing.
func fallocateFile(file *os.File, size int64) error {
	return file.Truncate(size)
}

func fadviseSequential(file *os.File) {}

func prefaultRegion(data []byte) {}

func adviseRandom(data []byte) {}
