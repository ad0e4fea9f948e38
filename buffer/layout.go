package buffer

import (
	"fmt"
	"math"
)

// Layout describes a channel-interleaved raster: Width*Height pixels with
// Channels samples each, stored row-major as [c0 c1 ... c0 c1 ...].
type Layout struct {
	Width    int
	Height   int
	Channels int
}

// Flat returns the layout of a plain run of n single-channel samples.
func Flat(n int) Layout {
	return Layout{Width: n, Height: 1, Channels: 1}
}

// Len returns the number of samples described by l, or -1 if the product
// does not fit in an int.
func (l Layout) Len() int {
	if l.Width < 0 || l.Height < 0 || l.Channels < 0 {
		return -1
	}
	n := l.Width
	for _, f := range [...]int{l.Height, l.Channels} {
		if f != 0 && n > math.MaxInt/f {
			return -1
		}
		n *= f
	}
	return n
}

// Validate reports ErrInvalidLayout for non-positive or overflowing dimensions.
func (l Layout) Validate() error {
	if l.Width <= 0 || l.Height <= 0 || l.Channels <= 0 {
		return fmt.Errorf("%w: %dx%dx%d", ErrInvalidLayout, l.Width, l.Height, l.Channels)
	}
	if l.Len() < 0 {
		return fmt.Errorf("%w: %dx%dx%d overflows", ErrInvalidLayout, l.Width, l.Height, l.Channels)
	}
	return nil
}

// String formats l as WxHxC.
func (l Layout) String() string {
	return fmt.Sprintf("%dx%dx%d", l.Width, l.Height, l.Channels)
}
