package buffer

import "errors"

var (
	// ErrInvalidLayout is returned for non-positive or overflowing dimensions.
	ErrInvalidLayout = errors.New("buffer: invalid layout")
	// ErrLayoutMismatch is returned when a slice length does not match a layout.
	ErrLayoutMismatch = errors.New("buffer: slice length does not match layout")
	// ErrAllocation is returned when backing storage cannot be obtained.
	ErrAllocation = errors.New("buffer: allocation failed")
	// ErrInvalidAlignment is returned for alignments that are not a power of
	// two multiple of the sample size.
	ErrInvalidAlignment = errors.New("buffer: alignment must be a power of two >= 8")
)
