package buffer

import "sync"

// Pool recycles scratch Buffers between blend calls. Plain buffers come from
// Get; buffers whose samples must start on a byte boundary come from
// GetAligned. Both draw from the same set of backing arrays.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{}
			},
		},
	}
}

// Get returns a zeroed flat Buffer of the requested length.
// Callers must return it via Put when done.
func (p *Pool) Get(length int) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.Resize(length)
	b.Zero()
	return b
}

// GetAligned returns a zeroed flat Buffer of n samples whose first sample
// sits on an align-byte boundary. A pooled backing array is reused when it
// can hold an aligned window of n samples. Callers must return the buffer
// via Put when done.
func (p *Pool) GetAligned(n, align int) (*Buffer, error) {
	if err := checkAlignment(align); err != nil {
		return nil, err
	}
	b := p.pool.Get().(*Buffer)
	if err := b.realign(n, align); err != nil {
		p.pool.Put(b)
		return nil, err
	}
	return b, nil
}

// Put returns a Buffer to the pool for reuse.
// The caller must not use the buffer after calling Put.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}

// realign points b at a zeroed aligned window of n samples, growing the
// padded backing array only when the current one is too small.
func (b *Buffer) realign(n, align int) error {
	s, ok := alignedWindow(b.raw, n, align)
	if !ok {
		raw, err := allocPadded(n, align)
		if err != nil {
			return err
		}
		b.raw = raw
		s, _ = alignedWindow(raw, n, align)
	}
	clear(s)
	b.samples = s
	b.layout = Flat(n)
	return nil
}
