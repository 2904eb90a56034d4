package radixsort

import (
	"fmt"

	sorterrors "github.com/tamirms/radixsort/errors"
)

// CheckSorted returns an error wrapping errors.ErrNotSorted that names the
// first out-of-order position, or nil if data is in non-descending order
// under compare.
func CheckSorted[T any](data []T, compare func(a, b T) int) error {
	for i := 1; i < len(data); i++ {
		if compare(data[i-1], data[i]) > 0 {
			return fmt.Errorf("%w: element %d is greater than element %d of %d",
				sorterrors.ErrNotSorted, i-1, i, len(data))
		}
	}
	return nil
}

// mustBeSorted is the post-condition behind WithVerify.
func mustBeSorted[T any](data []T, compare func(a, b T) int) {
	if err := CheckSorted(data, compare); err != nil {
		panic(err)
	}
}
