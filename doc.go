// Package radixsort implements in-place MSD radix sorting for 8, 16 and
// 32-bit integers and for narrow, wide and NUL-terminated strings.
//
// Every sort runs over the caller's buffer without allocating a copy of it.
// Each radix pass counts the keys of one byte round, computes bucket
// boundaries and moves every element into its bucket by swapping. Buckets
// that still hold more than one element continue with the next round, or
// with a comparison sort once they become small.
//
// # Basic Usage
//
//	xs := []int32{3, -1, 7, 0}
//	radixsort.Int32s(xs) // [-1 0 3 7]
//
//	names := []string{"pear", "apple", "app"}
//	radixsort.Strings(names) // [app apple pear]
//
// A Sorter carries non-default thresholds, statistics or verification:
//
//	var st radixsort.Stats
//	s := radixsort.New(radixsort.WithStats(&st), radixsort.WithVerify())
//	s.Uint32s(data)
//	fmt.Println(st.Passes, st.Fallbacks)
//
// Custom element types are sorted through SortBy with a ScalarKeys or
// VectorKeys description built from the key extractors in key.go.
//
// # Package Structure
//
//   - Key extraction: key.go (ByteKey, WordKey, Compose, built-in extractors)
//   - Counting core: partition.go (partitions, recurseTable, Histogram)
//   - Permutation: permute.go
//   - Dispatch: dispatch.go (work list, ScalarKeys, VectorKeys, SortBy)
//   - Entry points: sort.go (Sorter, per-type functions, Sort), bias.go
//   - Configuration: options.go (Option, With* functions), stats.go
//   - Checking: verify.go (CheckSorted), digest.go (Digest)
//   - Files: file.go (SortFile, SortLines), platform_*.go
//   - Fallback sort: internal/introsort/
package radixsort
