package buffer

import "fmt"

// Buffer wraps a float64 sample slice together with its image layout.
// Executors accept raw []float64; use Samples() to bridge.
type Buffer struct {
	layout  Layout
	samples []float64

	// raw is the padded allocation behind aligned samples, kept so pooled
	// buffers can be realigned without allocating.
	raw []float64
}

// New returns a zero-filled flat Buffer of the given length.
func New(length int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{layout: Flat(length), samples: make([]float64, length)}
}

// NewImage returns a zero-filled Buffer for the given layout.
func NewImage(l Layout) (*Buffer, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	s, err := Alloc(l.Len())
	if err != nil {
		return nil, err
	}
	return &Buffer{layout: l, samples: s}, nil
}

// FromSlice wraps an existing slice as a flat buffer without copying.
// Mutations to the slice are visible through the Buffer and vice versa.
func FromSlice(s []float64) *Buffer {
	return &Buffer{layout: Flat(len(s)), samples: s}
}

// FromImage wraps an existing slice with an image layout without copying.
func FromImage(l Layout, s []float64) (*Buffer, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	if l.Len() != len(s) {
		return nil, fmt.Errorf("%w: layout %v needs %d samples, got %d",
			ErrLayoutMismatch, l, l.Len(), len(s))
	}
	return &Buffer{layout: l, samples: s}, nil
}

// Samples returns the underlying slice.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Layout returns the image layout of the buffer.
func (b *Buffer) Layout() Layout {
	return b.layout
}

// Len returns the current number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Cap returns the current capacity of the backing slice.
func (b *Buffer) Cap() int {
	return cap(b.samples)
}

// Index returns the flat sample index of channel c of pixel (x, y).
// It panics if the coordinates fall outside the layout.
func (b *Buffer) Index(x, y, c int) int {
	l := b.layout
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height || c < 0 || c >= l.Channels {
		panic(fmt.Sprintf("buffer: index (%d,%d,%d) outside %v", x, y, c, l))
	}
	return (y*l.Width+x)*l.Channels + c
}

// At returns channel c of pixel (x, y).
func (b *Buffer) At(x, y, c int) float64 {
	return b.samples[b.Index(x, y, c)]
}

// Set stores v into channel c of pixel (x, y).
func (b *Buffer) Set(x, y, c int, v float64) {
	b.samples[b.Index(x, y, c)] = v
}

// Resize sets the length to n and the layout to Flat(n), reusing existing
// capacity when possible. New elements beyond the previous length are zeroed.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.samples)
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
	} else {
		s := make([]float64, n)
		copy(s, b.samples)
		b.samples = s
	}
	// Zero any newly exposed elements that may have stale data from
	// previous use of the backing array.
	if n > oldLen {
		clear(b.samples[oldLen:])
	}
	b.layout = Flat(n)
}

// Zero sets all samples to 0.
func (b *Buffer) Zero() {
	clear(b.samples)
}

// ZeroRange sets samples in [start, end) to 0.
// Indices are clamped to valid bounds.
func (b *Buffer) ZeroRange(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > len(b.samples) {
		end = len(b.samples)
	}
	if start >= end {
		return
	}
	clear(b.samples[start:end])
}

// Copy returns a deep copy of the buffer, layout included.
func (b *Buffer) Copy() *Buffer {
	s := make([]float64, len(b.samples))
	copy(s, b.samples)
	return &Buffer{layout: b.layout, samples: s}
}
