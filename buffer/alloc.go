package buffer

import (
	"fmt"
	"math"
	"unsafe"
)

const sampleSize = int(unsafe.Sizeof(float64(0)))

// maxSamples is the largest sample count whose byte size fits in an int.
const maxSamples = math.MaxInt / sampleSize

// Alloc returns a zeroed slice of n samples. Impossible sizes are reported
// as ErrAllocation instead of panicking in makeslice.
func Alloc(n int) (s []float64, err error) {
	if n < 0 || n > maxSamples {
		return nil, fmt.Errorf("%w: %d samples", ErrAllocation, n)
	}
	defer func() {
		if r := recover(); r != nil {
			s = nil
			err = fmt.Errorf("%w: %d samples: %v", ErrAllocation, n, r)
		}
	}()
	return make([]float64, n), nil
}

// Aligned returns a zeroed slice of n samples whose first element sits on an
// align-byte boundary. align must be a power of two and at least the sample
// size. The slice is carved out of a slightly larger allocation; its
// capacity is clipped to n so appends cannot run into the padding.
func Aligned(n, align int) ([]float64, error) {
	raw, err := allocPadded(n, align)
	if err != nil {
		return nil, err
	}
	s, _ := alignedWindow(raw, n, align)
	return s, nil
}

func checkAlignment(align int) error {
	if align < sampleSize || align&(align-1) != 0 {
		return fmt.Errorf("%w: %d", ErrInvalidAlignment, align)
	}
	return nil
}

// allocPadded allocates n samples plus enough padding to place an aligned
// window of n samples anywhere inside it.
func allocPadded(n, align int) ([]float64, error) {
	if err := checkAlignment(align); err != nil {
		return nil, err
	}
	pad := align/sampleSize - 1
	if n < 0 || n > maxSamples-pad {
		return nil, fmt.Errorf("%w: %d samples", ErrAllocation, n)
	}
	return Alloc(n + pad)
}

// alignedWindow returns the first align-byte aligned run of n samples inside
// the capacity of raw, or false if raw is too small.
func alignedWindow(raw []float64, n, align int) ([]float64, bool) {
	if n == 0 {
		return []float64{}, true
	}
	full := raw[:cap(raw)]
	if len(full) < n {
		return nil, false
	}
	off := Misalignment(full, align) // bytes past the previous boundary
	skip := 0
	if off != 0 {
		skip = (align - off) / sampleSize
	}
	if skip+n > len(full) {
		return nil, false
	}
	return full[skip : skip+n : skip+n], true
}

// Misalignment returns how many bytes the first element of s lies past the
// previous align-byte boundary. Empty slices report 0.
func Misalignment(s []float64, align int) int {
	if len(s) == 0 || align <= 0 {
		return 0
	}
	return int(uintptr(unsafe.Pointer(unsafe.SliceData(s))) % uintptr(align))
}

// IsAligned reports whether the first element of s sits on an align-byte
// boundary.
func IsAligned(s []float64, align int) bool {
	return Misalignment(s, align) == 0
}
