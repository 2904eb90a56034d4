// Package errors defines the exported error sentinels for the radixsort module.
//
// The in-memory sort entry points never return errors. These sentinels belong
// to the surfaces around them: file-backed sorting, verification helpers and
// tool configuration. Both the root package and the internal packages import
// from here so errors.Is checks work across package boundaries.
package errors

import "errors"

// File errors
var (
	ErrMisalignedFile   = errors.New("radixsort: file size is not a multiple of the element width")
	ErrTooManyElements  = errors.New("radixsort: element count exceeds maximum (2^31-1)")
	ErrUnsupportedKind  = errors.New("radixsort: unsupported element kind")
	ErrMisalignedBuffer = errors.New("radixsort: buffer is not aligned for the element width")
)

// Verification errors
var (
	ErrNotSorted      = errors.New("radixsort: buffer is not sorted")
	ErrDigestMismatch = errors.New("radixsort: multiset digest changed during sort")
)

// Configuration errors
var (
	ErrUnknownConfigKey = errors.New("radixsort: unknown configuration key")
	ErrInvalidThreshold = errors.New("radixsort: threshold must not be negative")
	ErrInvalidLogFormat = errors.New("radixsort: unknown log format")
	ErrUnknownPattern   = errors.New("radixsort: unknown dataset pattern")
)
