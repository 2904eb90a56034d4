// Package introsort is the comparison sort the radix engine hands small
// partitions to.
//
// It is an introsort: median-of-three quicksort that recurses into the
// smaller side and loops on the larger, insertion sort for short ranges, and
// heapsort once the recursion budget is exhausted, so the worst case stays
// O(n log n). It is not stable; the radix engine only hands it elements whose
// comparator defines a total order on their values, where stability is not
// observable.
package introsort

import (
	"cmp"

	"github.com/tamirms/radixsort/internal/bits"
)

// insertionThreshold: ranges this size or smaller are insertion sorted.
const insertionThreshold = 12

// Sort sorts data in ascending order.
func Sort[T cmp.Ordered](data []T) {
	SortFunc(data, cmp.Compare[T])
}

// SortFunc sorts data in ascending order as determined by compare, which
// must return a negative number when a < b, zero when a == b and a positive
// number when a > b.
func SortFunc[T any](data []T, compare func(a, b T) int) {
	n := len(data)
	if n <= 1 {
		return
	}
	sortImpl(data, compare, bits.DepthLimit(n))
}

// IsSortedFunc reports whether data is sorted according to compare.
func IsSortedFunc[T any](data []T, compare func(a, b T) int) bool {
	for i := 1; i < len(data); i++ {
		if compare(data[i], data[i-1]) < 0 {
			return false
		}
	}
	return true
}

func sortImpl[T any](data []T, compare func(a, b T) int, depthLimit int) {
	for len(data) > insertionThreshold {
		if depthLimit == 0 {
			heapSort(data, compare)
			return
		}
		depthLimit--

		p := partition(data, compare)
		if p < len(data)-p-1 {
			sortImpl(data[:p], compare, depthLimit)
			data = data[p+1:]
		} else {
			sortImpl(data[p+1:], compare, depthLimit)
			data = data[:p]
		}
	}
	insertionSort(data, compare)
}

// partition moves a median-of-three pivot to its final position and returns
// that position. Elements equal to the pivot stop both scans, which keeps
// ranges of duplicates balanced.
func partition[T any](data []T, compare func(a, b T) int) int {
	n := len(data)
	mid := n / 2
	medianOfThree(data, compare, 0, mid, n-1)
	data[0], data[mid] = data[mid], data[0]
	pivot := data[0]

	i, j := 1, n-1
	for {
		for i <= j && compare(data[i], pivot) < 0 {
			i++
		}
		for i <= j && compare(data[j], pivot) > 0 {
			j--
		}
		if i >= j {
			break
		}
		data[i], data[j] = data[j], data[i]
		i++
		j--
	}
	data[0], data[j] = data[j], data[0]
	return j
}

// medianOfThree orders data[a] <= data[b] <= data[c].
func medianOfThree[T any](data []T, compare func(a, b T) int, a, b, c int) {
	if compare(data[b], data[a]) < 0 {
		data[a], data[b] = data[b], data[a]
	}
	if compare(data[c], data[b]) < 0 {
		data[b], data[c] = data[c], data[b]
		if compare(data[b], data[a]) < 0 {
			data[a], data[b] = data[b], data[a]
		}
	}
}

func insertionSort[T any](data []T, compare func(a, b T) int) {
	for i := 1; i < len(data); i++ {
		key := data[i]
		j := i - 1
		for j >= 0 && compare(data[j], key) > 0 {
			data[j+1] = data[j]
			j--
		}
		data[j+1] = key
	}
}

func heapSort[T any](data []T, compare func(a, b T) int) {
	n := len(data)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(data, compare, i, n)
	}
	for i := n - 1; i > 0; i-- {
		data[0], data[i] = data[i], data[0]
		siftDown(data, compare, 0, i)
	}
}

func siftDown[T any](data []T, compare func(a, b T) int, i, n int) {
	for {
		largest := i
		left := 2*i + 1
		right := left + 1

		if left < n && compare(data[left], data[largest]) > 0 {
			largest = left
		}
		if right < n && compare(data[right], data[largest]) > 0 {
			largest = right
		}
		if largest == i {
			return
		}
		data[i], data[largest] = data[largest], data[i]
		i = largest
	}
}
