package blend

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-blend/buffer"
)

// Composite blends two images with exec into a newly allocated buffer of
// the same layout. The layouts must match exactly: equal sample counts with
// different width, height or channel count are still a mismatch.
func Composite(exec Executor, a, b *buffer.Buffer) (*buffer.Buffer, error) {
	if exec == nil {
		return nil, fmt.Errorf("%w: executor", ErrNullBuffer)
	}
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: source image", ErrNullBuffer)
	}
	if a.Samples() == nil || b.Samples() == nil {
		return nil, fmt.Errorf("%w: source image has no samples", ErrNullBuffer)
	}
	if err := a.Layout().Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDimensionMismatch, err)
	}
	if a.Layout() != b.Layout() {
		return nil, fmt.Errorf("%w: %v vs %v", ErrDimensionMismatch, a.Layout(), b.Layout())
	}

	dst, err := buffer.NewImage(a.Layout())
	if err != nil {
		if errors.Is(err, buffer.ErrAllocation) {
			return nil, fmt.Errorf("%w: %w", ErrAllocationFailure, err)
		}
		return nil, err
	}

	if err := exec.Run(dst.Samples(), a.Samples(), b.Samples()); err != nil {
		return nil, err
	}
	return dst, nil
}
