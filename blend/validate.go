package blend

import (
	"fmt"
	"unsafe"
)

// validate checks the executor preconditions once, before dispatch.
func validate(dst, src1, src2 []float64) error {
	switch {
	case src1 == nil:
		return fmt.Errorf("%w: src1", ErrNullBuffer)
	case src2 == nil:
		return fmt.Errorf("%w: src2", ErrNullBuffer)
	case dst == nil:
		return fmt.Errorf("%w: dst", ErrNullBuffer)
	}

	if len(src1) != len(src2) || len(dst) != len(src1) {
		return fmt.Errorf("%w: src1=%d src2=%d dst=%d samples",
			ErrDimensionMismatch, len(src1), len(src2), len(dst))
	}

	if partialOverlap(dst, src1) || partialOverlap(dst, src2) {
		return ErrBufferOverlap
	}
	return nil
}

// partialOverlap reports whether x and y share memory without starting at
// the same address. Exact aliasing is fine: index i only reads index i.
func partialOverlap(x, y []float64) bool {
	if len(x) == 0 || len(y) == 0 {
		return false
	}
	const size = unsafe.Sizeof(float64(0))
	xs := uintptr(unsafe.Pointer(unsafe.SliceData(x)))
	ys := uintptr(unsafe.Pointer(unsafe.SliceData(y)))
	xe := xs + uintptr(len(x))*size
	ye := ys + uintptr(len(y))*size
	return xs != ys && xs < ye && ys < xe
}
